package parallel

import (
	"github.com/exascience/paralg/merge"
	"github.com/exascience/paralg/ranges"
	"github.com/exascience/paralg/sequential"
)

// CountIf returns the number of elements of r that satisfy pred.
func CountIf[T any](x *Executor, r ranges.Range[T], pred func(T) bool) (int, error) {
	return countIf(resolve(x), "count_if", r, pred)
}

// Count returns the number of elements of r that are equal to v.
func Count[T comparable](x *Executor, r ranges.Range[T], v T) (int, error) {
	return countIf(resolve(x), "count", r, func(e T) bool { return e == v })
}

func countIf[T any](x *Executor, op string, r ranges.Range[T], pred func(T) bool) (count int, err error) {
	if err = checkRange("input", r); err != nil {
		return
	}
	strategy := r.Kind()
	err = x.call(op, strategy, knownLen(r), func() error {
		l, err := x.layout(strategy, knownLen(r))
		if err != nil {
			return err
		}
		p := split(r, l)
		sum := merge.NewSum[int](l.workers)
		err = x.run(op, func(i int) (int, error) {
			part, ok := p.part(i)
			if !ok {
				return 0, nil
			}
			n, visited := sequential.CountIf(part, pred)
			sum.Set(i, n)
			return visited, nil
		})
		if err != nil {
			return err
		}
		count = sum.Total()
		return nil
	})
	return
}

// ForEach invokes f for each element of r, and returns f.
//
// The elements are visited concurrently, in no particular order.
func ForEach[T any](x *Executor, r ranges.Range[T], f func(T)) (func(T), error) {
	x = resolve(x)
	if err := checkRange("input", r); err != nil {
		return f, err
	}
	strategy := r.Kind()
	err := x.call("for_each", strategy, knownLen(r), func() error {
		l, err := x.layout(strategy, knownLen(r))
		if err != nil {
			return err
		}
		p := split(r, l)
		return x.run("for_each", func(i int) (int, error) {
			part, ok := p.part(i)
			if !ok {
				return 0, nil
			}
			return sequential.ForEach(part, f), nil
		})
	})
	return f, err
}
