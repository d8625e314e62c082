package parallel

import (
	"github.com/exascience/paralg/merge"
	"github.com/exascience/paralg/ranges"
	"github.com/exascience/paralg/sequential"
)

/*
FindAnyIf returns the position of an element of r that satisfies pred, or
the end position of r if there is none.

If several elements satisfy pred, FindAnyIf returns any one of them. Workers
check for a result of another worker before testing each element of an
indexable range, and before each step through a sequential range, and stop
as soon as there is one.
*/
func FindAnyIf[T any](x *Executor, r ranges.Range[T], pred func(T) bool) (ranges.Position[T], error) {
	return findAnyIf(resolve(x), "find_any_if", r, pred)
}

// FindAny returns the position of an element of r that is equal to v, or
// the end position of r if there is none.
func FindAny[T comparable](x *Executor, r ranges.Range[T], v T) (ranges.Position[T], error) {
	return findAnyIf(resolve(x), "find_any", r, func(e T) bool { return e == v })
}

// FindAnyIfNot returns the position of an element of r that does not
// satisfy pred, or the end position of r if there is none.
func FindAnyIfNot[T any](x *Executor, r ranges.Range[T], pred func(T) bool) (ranges.Position[T], error) {
	return findAnyIf(resolve(x), "find_any_if_not", r, func(e T) bool { return !pred(e) })
}

// AllOf reports whether all elements of r satisfy pred. It returns true for
// an empty range.
func AllOf[T any](x *Executor, r ranges.Range[T], pred func(T) bool) (bool, error) {
	pos, err := findAnyIf(resolve(x), "all_of", r, func(e T) bool { return !pred(e) })
	return err == nil && pos.IsEnd(), err
}

// AnyOf reports whether at least one element of r satisfies pred.
func AnyOf[T any](x *Executor, r ranges.Range[T], pred func(T) bool) (bool, error) {
	pos, err := findAnyIf(resolve(x), "any_of", r, pred)
	return err == nil && !pos.IsEnd(), err
}

// NoneOf reports whether no element of r satisfies pred. It returns true for
// an empty range.
func NoneOf[T any](x *Executor, r ranges.Range[T], pred func(T) bool) (bool, error) {
	pos, err := findAnyIf(resolve(x), "none_of", r, pred)
	return err == nil && pos.IsEnd(), err
}

func findAnyIf[T any](x *Executor, op string, r ranges.Range[T], pred func(T) bool) (result ranges.Position[T], err error) {
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
		winner := merge.NewWinner[ranges.Position[T]](l.workers)
		err = x.run(op, func(i int) (int, error) {
			part, ok := p.part(i)
			if !ok {
				return 0, nil
			}
			pos, found, visited := sequential.FindIf(part, pred, winner.Done)
			if found {
				winner.Offer(i, p.position(i, pos))
			}
			return visited, nil
		})
		if err != nil {
			return err
		}
		if pos, ok := winner.Result(); ok {
			x.logger.Debug("match", "op", op, "worker", winner.Worker(), "offset", pos.Offset())
			result = pos
		} else {
			result = ranges.EndOf(r)
		}
		return nil
	})
	return
}
