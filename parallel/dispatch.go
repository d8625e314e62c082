package parallel

import (
	"fmt"
	"time"

	"github.com/exascience/paralg"
	"github.com/exascience/paralg/internal"
	"github.com/exascience/paralg/partition"
	"github.com/exascience/paralg/ranges"
)

// call runs body as one invocation of op, and reports it to the logger and
// the metrics collector. A panic in body is returned as an error.
func (x *Executor) call(op string, strategy ranges.Kind, elements int, body func() error) (err error) {
	x.logger.Debug("dispatch", "op", op, "strategy", strategy.String(), "workers", x.Workers(), "elements", elements)
	start := time.Now()
	func() {
		defer func() {
			if p := recover(); p != nil {
				err = internal.WrapPanic(p)
			}
		}()
		err = body()
	}()
	x.metrics.RecordCall(op, strategy.String(), elements, time.Since(start), err)
	return err
}

// run starts the workers of x for op. Each worker reports how many elements
// it visited.
func (x *Executor) run(op string, fn func(worker int) (visited int, err error)) error {
	return x.group.Run(op, func(worker int) error {
		visited, err := fn(worker)
		x.metrics.RecordWorker(op, worker, visited)
		return err
	})
}

// strategyOf returns Indexable if all kinds are Indexable, and Sequential
// otherwise.
func strategyOf(kinds ...ranges.Kind) ranges.Kind {
	for _, k := range kinds {
		if k != ranges.Indexable {
			return ranges.Sequential
		}
	}
	return ranges.Indexable
}

// knownLen returns the length of r if it is available without traversing
// r, and -1 otherwise.
func knownLen[T any](r ranges.Range[T]) int {
	if ix := r.Indexer(); ix != nil {
		return ix.Len()
	}
	if sized, ok := r.Sequence().(ranges.Sized); ok {
		return sized.Len()
	}
	return -1
}

func checkRange[T any](name string, r ranges.Range[T]) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %s range is not set", paralg.ErrInvalidRange, name)
	}
	if n := knownLen(r); n < 0 && r.Kind() == ranges.Indexable {
		return fmt.Errorf("%w: %s range has length %d", paralg.ErrInvalidRange, name, n)
	}
	return nil
}

// checkLen verifies that r has at least n elements.
func checkLen[T any](name string, r ranges.Range[T], n int) error {
	if m := r.Len(); m < n {
		return fmt.Errorf("%w: %s range has %d elements, need %d", paralg.ErrOutputTooShort, name, m, n)
	}
	return nil
}

// checkCount verifies that r has at least n elements if that can be
// determined without traversing r.
func checkCount[T any](name string, r ranges.Range[T], n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", paralg.ErrNegativeCount, n)
	}
	if m := knownLen(r); m >= 0 && m < n {
		return fmt.Errorf("%w: %s range has %d elements, need %d", paralg.ErrOutputTooShort, name, m, n)
	}
	return nil
}

// A layout assigns the elements of one call to the workers of an executor.
type layout struct {
	strategy ranges.Kind
	workers  int
	plan     partition.Plan
}

// layout returns the layout for n elements. n is only needed for the
// indexable strategy and for counted operations; pass -1 otherwise.
func (x *Executor) layout(strategy ranges.Kind, n int) (layout, error) {
	l := layout{strategy: strategy, workers: x.Workers()}
	if n >= 0 {
		plan, err := partition.Split(n, l.workers)
		if err != nil {
			return l, err
		}
		l.plan = plan
	}
	return l, nil
}

/*
parts divides a range among the workers of a layout.

With the indexable strategy, worker i receives the sub-range given by the
plan. With the sequential strategy, worker i receives the elements at offsets
i, i+W, i+2W, ... through a bounded Stride, and workers beyond the end of the
range receive nothing.
*/
type parts[T any] struct {
	r      ranges.Range[T]
	l      layout
	begins []ranges.Cursor[T]
	end    ranges.Cursor[T]
}

func split[T any](r ranges.Range[T], l layout) parts[T] {
	p := parts[T]{r: r, l: l}
	if l.strategy == ranges.Sequential {
		p.end = r.End()
		p.begins = make([]ranges.Cursor[T], l.workers)
		c := r.Begin()
		for i := range p.begins {
			if c.Equal(p.end) {
				break
			}
			p.begins[i] = c.Clone()
			c.Next()
		}
	}
	return p
}

// part returns the part of worker i, and false if it is empty.
func (p parts[T]) part(i int) (ranges.Range[T], bool) {
	if p.begins == nil {
		low, high := p.l.plan.Span(i)
		if low == high {
			return ranges.Range[T]{}, false
		}
		sub, err := p.r.Sub(low, high)
		if err != nil {
			panic(err)
		}
		return sub, true
	}
	if p.begins[i] == nil {
		return ranges.Range[T]{}, false
	}
	stride := ranges.Bounded(p.begins[i].Clone(), p.end, p.l.workers, i)
	return ranges.Seq[T](ranges.StrideSequence[T]{Start: stride, Stop: p.end}), true
}

// position converts a position found in the part of worker i into a
// position in the whole range.
func (p parts[T]) position(i int, pos ranges.Position[T]) ranges.Position[T] {
	if p.begins != nil {
		return pos
	}
	low, _ := p.l.plan.Span(i)
	return ranges.At(ranges.IndexCursor(p.r.Indexer(), low+pos.Offset()), low+pos.Offset())
}

/*
counted divides the first n elements of a range among the workers of a
layout, for the operations that take an element count instead of a range end.

Worker i receives a start cursor and a budget of plan.Sizes[i] elements.
With the sequential strategy, the cursor is an unbounded Stride, and the
budget guarantees that it never steps beyond the n-th element.
*/
type counted[T any] struct {
	r      ranges.Range[T]
	l      layout
	begins []ranges.Cursor[T]
}

func splitN[T any](r ranges.Range[T], l layout) counted[T] {
	p := counted[T]{r: r, l: l}
	if l.strategy == ranges.Sequential {
		p.begins = make([]ranges.Cursor[T], l.workers)
		active := min(l.workers, l.plan.Len())
		c := r.Begin()
		for i := 0; i < active; i++ {
			p.begins[i] = c.Clone()
			if i+1 < active {
				c.Next()
			}
		}
	}
	return p
}

// cursor returns the start cursor and the budget of worker i.
func (p counted[T]) cursor(i int) (ranges.Cursor[T], int) {
	size := p.l.plan.Sizes[i]
	if size == 0 {
		return nil, 0
	}
	if p.begins == nil {
		low, _ := p.l.plan.Span(i)
		return ranges.IndexCursor(p.r.Indexer(), low), size
	}
	return ranges.Unbounded(p.begins[i].Clone(), p.l.plan.Workers(), i), size
}
