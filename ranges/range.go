/*
Package ranges describes the ranges that the parallel algorithms operate on.

A Range is a value together with its traversal capability. Indexable ranges
support O(1) access to any offset through an Indexer. Sequential ranges only
support stepping from one element to the next through a Cursor, and are
described by a Sequence that yields the begin and end cursors.

Every Range can be traversed through cursors, so an algorithm that involves
both kinds of ranges can fall back to cursors for all of them.
*/
package ranges

import (
	"fmt"

	"github.com/exascience/paralg"
)

// Kind is the traversal capability of a Range.
type Kind int

const (
	// Indexable ranges support O(1) access to arbitrary offsets.
	Indexable Kind = iota
	// Sequential ranges can only be traversed one element at a time.
	Sequential
)

func (k Kind) String() string {
	switch k {
	case Indexable:
		return "indexable"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// An Indexer provides random access to the elements of a range.
type Indexer[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
}

/*
A Cursor is a position in a range.

Next advances the cursor in place by one element. Clone returns an
independent copy that can be advanced without affecting the original. Equal
reports whether two cursors denote the same position; implementations compare
against Unwrap(other), so that wrapped cursors compare by their underlying
position.
*/
type Cursor[T any] interface {
	Get() T
	Set(v T)
	Next()
	Equal(other Cursor[T]) bool
	Clone() Cursor[T]
}

// A Sequence yields fresh begin and end cursors of a sequential range. The
// end cursor must be reachable from the begin cursor by repeated calls to
// Next.
type Sequence[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
}

// Sized is implemented by sequences that know their length without
// traversing their elements.
type Sized interface {
	Len() int
}

// Reversible is implemented by sequences that can be traversed backwards.
// Reverse returns a sequence that yields the same elements in reverse order.
type Reversible[T any] interface {
	Reverse() Sequence[T]
}

// Offsetter is implemented by cursors that know their offset from the
// beginning of the range they were created from.
type Offsetter interface {
	Offset() int
}

// A Range is a half-open sequence of elements of type T together with its
// traversal capability. The zero Range is not valid.
type Range[T any] struct {
	idx Indexer[T]
	seq Sequence[T]
}

// Index returns an indexable range backed by ix.
func Index[T any](ix Indexer[T]) Range[T] {
	return Range[T]{idx: ix}
}

// Seq returns a sequential range backed by s.
func Seq[T any](s Sequence[T]) Range[T] {
	return Range[T]{seq: s}
}

// Valid reports whether r is backed by an Indexer or a Sequence.
func (r Range[T]) Valid() bool {
	return r.idx != nil || r.seq != nil
}

// Kind returns the traversal capability of r.
func (r Range[T]) Kind() Kind {
	if r.idx != nil {
		return Indexable
	}
	return Sequential
}

// Indexer returns the Indexer of an indexable range, or nil.
func (r Range[T]) Indexer() Indexer[T] {
	return r.idx
}

// Sequence returns a Sequence over r. For indexable ranges, the sequence
// yields index-based cursors.
func (r Range[T]) Sequence() Sequence[T] {
	if r.idx != nil {
		return indexSequence[T]{r.idx}
	}
	return r.seq
}

// Begin returns a cursor at the first element of r.
func (r Range[T]) Begin() Cursor[T] {
	return r.Sequence().Begin()
}

// End returns the cursor one past the last element of r.
func (r Range[T]) End() Cursor[T] {
	return r.Sequence().End()
}

/*
Len returns the number of elements in r.

This is O(1) for indexable ranges and for sequences that implement Sized, and
O(n) otherwise.
*/
func (r Range[T]) Len() int {
	if r.idx != nil {
		return r.idx.Len()
	}
	if sized, ok := r.seq.(Sized); ok {
		return sized.Len()
	}
	n := 0
	for c, end := r.seq.Begin(), r.seq.End(); !c.Equal(end); c.Next() {
		n++
	}
	return n
}

/*
Sub returns the sub-range of r from offset low up to but excluding offset
high. Sub returns an error wrapping paralg.ErrInvalidRange unless
0 <= low <= high <= r.Len().

Sub is O(1) for indexable ranges and O(high) for sequential ranges.
*/
func (r Range[T]) Sub(low, high int) (Range[T], error) {
	if low < 0 || high < low {
		return Range[T]{}, fmt.Errorf("%w: sub-range %d:%d", paralg.ErrInvalidRange, low, high)
	}
	if r.idx != nil {
		if n := r.idx.Len(); high > n {
			return Range[T]{}, fmt.Errorf("%w: sub-range %d:%d of length %d", paralg.ErrInvalidRange, low, high, n)
		}
		return Index[T](subIndexer[T]{r.idx, low, high - low}), nil
	}
	begin, end := r.seq.Begin(), r.seq.End()
	for i := 0; i < low; i++ {
		if begin.Equal(end) {
			return Range[T]{}, fmt.Errorf("%w: sub-range %d:%d exceeds sequence", paralg.ErrInvalidRange, low, high)
		}
		begin.Next()
	}
	last := begin.Clone()
	for i := low; i < high; i++ {
		if last.Equal(end) {
			return Range[T]{}, fmt.Errorf("%w: sub-range %d:%d exceeds sequence", paralg.ErrInvalidRange, low, high)
		}
		last.Next()
	}
	return Seq[T](subSequence[T]{begin, last, high - low}), nil
}

// Unwrap returns the innermost cursor of c, removing any wrappers such as
// Stride.
func Unwrap[T any](c Cursor[T]) Cursor[T] {
	for {
		w, ok := c.(interface{ Unwrap() Cursor[T] })
		if !ok {
			return c
		}
		c = w.Unwrap()
	}
}

type subIndexer[T any] struct {
	ix        Indexer[T]
	low, size int
}

func (s subIndexer[T]) Len() int       { return s.size }
func (s subIndexer[T]) At(i int) T     { return s.ix.At(s.low + i) }
func (s subIndexer[T]) Set(i int, v T) { s.ix.Set(s.low+i, v) }

type subSequence[T any] struct {
	begin, end Cursor[T]
	size       int
}

func (s subSequence[T]) Begin() Cursor[T] { return s.begin.Clone() }
func (s subSequence[T]) End() Cursor[T]   { return s.end.Clone() }
func (s subSequence[T]) Len() int         { return s.size }

type indexSequence[T any] struct {
	ix Indexer[T]
}

func (s indexSequence[T]) Begin() Cursor[T] { return &indexCursor[T]{s.ix, 0} }
func (s indexSequence[T]) End() Cursor[T]   { return &indexCursor[T]{s.ix, s.ix.Len()} }
func (s indexSequence[T]) Len() int         { return s.ix.Len() }

// indexCursor traverses an Indexer. Cursors compare by offset only, since
// Indexer values need not be comparable.
type indexCursor[T any] struct {
	ix Indexer[T]
	i  int
}

func (c *indexCursor[T]) Get() T           { return c.ix.At(c.i) }
func (c *indexCursor[T]) Set(v T)          { c.ix.Set(c.i, v) }
func (c *indexCursor[T]) Next()            { c.i++ }
func (c *indexCursor[T]) Offset() int      { return c.i }
func (c *indexCursor[T]) Clone() Cursor[T] { return &indexCursor[T]{c.ix, c.i} }

func (c *indexCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := Unwrap(other).(*indexCursor[T])
	return ok && o.i == c.i
}

// IndexCursor returns a cursor at offset i of the indexable range ix.
func IndexCursor[T any](ix Indexer[T], i int) Cursor[T] {
	return &indexCursor[T]{ix, i}
}
