package parallel

import (
	"github.com/exascience/paralg/merge"
	"github.com/exascience/paralg/ranges"
	"github.com/exascience/paralg/sequential"
)

/*
MismatchAnyFunc returns the positions of a pair of elements of a and b at the
same offset for which eq returns false. If there is no such pair, it returns
the end position of a and the position at the same offset in b.

b must have at least as many elements as a. If several pairs differ,
MismatchAnyFunc returns any one of them.
*/
func MismatchAnyFunc[A, B any](
	x *Executor,
	a ranges.Range[A],
	b ranges.Range[B],
	eq func(A, B) bool,
) (ranges.Position[A], ranges.Position[B], error) {
	x = resolve(x)
	if err := checkRange("first", a); err != nil {
		return ranges.Position[A]{}, ranges.Position[B]{}, err
	}
	if err := checkRange("second", b); err != nil {
		return ranges.Position[A]{}, ranges.Position[B]{}, err
	}
	n := a.Len()
	if err := checkLen("second", b, n); err != nil {
		return ranges.Position[A]{}, ranges.Position[B]{}, err
	}
	return mismatch(x, "mismatch_any", a, b, n, eq)
}

// MismatchAny is MismatchAnyFunc with == as the comparison.
func MismatchAny[T comparable](x *Executor, a, b ranges.Range[T]) (ranges.Position[T], ranges.Position[T], error) {
	return MismatchAnyFunc(x, a, b, func(u, v T) bool { return u == v })
}

// EqualFunc reports whether a and b have the same length and eq returns
// true for all pairs of elements at the same offset.
func EqualFunc[A, B any](x *Executor, a ranges.Range[A], b ranges.Range[B], eq func(A, B) bool) (bool, error) {
	x = resolve(x)
	if err := checkRange("first", a); err != nil {
		return false, err
	}
	if err := checkRange("second", b); err != nil {
		return false, err
	}
	n := a.Len()
	if b.Len() != n {
		return false, nil
	}
	pa, _, err := mismatch(x, "equal", a, b, n, eq)
	return err == nil && pa.IsEnd(), err
}

// Equal is EqualFunc with == as the comparison.
func Equal[T comparable](x *Executor, a, b ranges.Range[T]) (bool, error) {
	return EqualFunc(x, a, b, func(u, v T) bool { return u == v })
}

type mismatchPair[A, B any] struct {
	a ranges.Position[A]
	b ranges.Position[B]
}

func mismatch[A, B any](
	x *Executor,
	op string,
	a ranges.Range[A],
	b ranges.Range[B],
	n int,
	eq func(A, B) bool,
) (pa ranges.Position[A], pb ranges.Position[B], err error) {
	strategy := strategyOf(a.Kind(), b.Kind())
	err = x.call(op, strategy, n, func() error {
		l, err := x.layout(strategy, n)
		if err != nil {
			return err
		}
		parts1, parts2 := split(a, l), split(b, l)
		winner := merge.NewWinner[mismatchPair[A, B]](l.workers)
		err = x.run(op, func(i int) (int, error) {
			part1, ok := parts1.part(i)
			if !ok {
				return 0, nil
			}
			part2, _ := parts2.part(i)
			p1, p2, found, visited := sequential.Mismatch(part1, part2, eq, winner.Done)
			if found {
				winner.Offer(i, mismatchPair[A, B]{parts1.position(i, p1), parts2.position(i, p2)})
			}
			return visited, nil
		})
		if err != nil {
			return err
		}
		if pair, ok := winner.Result(); ok {
			x.logger.Debug("match", "op", op, "worker", winner.Worker(), "offset", pair.a.Offset())
			pa, pb = pair.a, pair.b
		} else {
			pa, pb = ranges.Nth(a, n), ranges.Nth(b, n)
		}
		return nil
	})
	return
}
