// Package sequential provides the single-goroutine algorithm bodies that the
// parallel package runs inside each of its workers.
//
// The functions in this package traverse one range, or a few ranges in
// lockstep, from beginning to end. Indexable ranges are traversed by offset,
// all other ranges by cursor. They can also be used on their own, for
// example as a reference for testing the parallel implementations.
package sequential

import "github.com/exascience/paralg/ranges"

// FindIf returns the position of the first element of r that satisfies
// pred. Before testing an element, or before each cursor step for
// sequential ranges, FindIf calls stop, if non-nil, and gives up as soon as
// stop returns true. FindIf also returns the number of elements tested.
func FindIf[T any](
	r ranges.Range[T],
	pred func(T) bool,
	stop func() bool,
) (pos ranges.Position[T], found bool, visited int) {
	if ix := r.Indexer(); ix != nil {
		for i, n := 0, ix.Len(); i < n; i++ {
			if stop != nil && stop() {
				return
			}
			visited++
			if pred(ix.At(i)) {
				return ranges.At(ranges.IndexCursor(ix, i), i), true, visited
			}
		}
		return
	}
	for c, end := r.Begin(), r.End(); !c.Equal(end); c.Next() {
		if stop != nil && stop() {
			return
		}
		visited++
		if pred(c.Get()) {
			return ranges.At(c, visited-1), true, visited
		}
	}
	return
}

// CountIf returns the number of elements of r that satisfy pred, and the
// number of elements tested.
func CountIf[T any](r ranges.Range[T], pred func(T) bool) (count, visited int) {
	if ix := r.Indexer(); ix != nil {
		n := ix.Len()
		for i := 0; i < n; i++ {
			if pred(ix.At(i)) {
				count++
			}
		}
		return count, n
	}
	for c, end := r.Begin(), r.End(); !c.Equal(end); c.Next() {
		visited++
		if pred(c.Get()) {
			count++
		}
	}
	return
}

// ForEach invokes f for each element of r, in order, and returns the number
// of elements visited.
func ForEach[T any](r ranges.Range[T], f func(T)) (visited int) {
	if ix := r.Indexer(); ix != nil {
		n := ix.Len()
		for i := 0; i < n; i++ {
			f(ix.At(i))
		}
		return n
	}
	for c, end := r.Begin(), r.End(); !c.Equal(end); c.Next() {
		f(c.Get())
		visited++
	}
	return
}

// Modify invokes f for each element of r, in order, and replaces the element
// with the first result of f whenever the second result is true. It returns
// the number of elements visited.
func Modify[T any](r ranges.Range[T], f func(T) (T, bool)) (visited int) {
	if ix := r.Indexer(); ix != nil {
		n := ix.Len()
		for i := 0; i < n; i++ {
			if v, ok := f(ix.At(i)); ok {
				ix.Set(i, v)
			}
		}
		return n
	}
	for c, end := r.Begin(), r.End(); !c.Equal(end); c.Next() {
		if v, ok := f(c.Get()); ok {
			c.Set(v)
		}
		visited++
	}
	return
}

// ModifyN is like Modify, but visits exactly n elements starting at c. It
// never advances c beyond the last of these elements.
func ModifyN[T any](c ranges.Cursor[T], n int, f func(T) (T, bool)) {
	for i := 0; i < n; i++ {
		if v, ok := f(c.Get()); ok {
			c.Set(v)
		}
		if i+1 < n {
			c.Next()
		}
	}
}

/*
Mismatch returns the positions of the first pair of elements of a and b, at
the same offset, for which eq returns false. b must have at least as many
elements as a.

Before comparing a pair of elements, or before each cursor step when not
both ranges are indexable, Mismatch calls stop, if non-nil, and gives up as
soon as stop returns true. Mismatch also returns the number of pairs
compared.
*/
func Mismatch[A, B any](
	a ranges.Range[A],
	b ranges.Range[B],
	eq func(A, B) bool,
	stop func() bool,
) (pa ranges.Position[A], pb ranges.Position[B], found bool, visited int) {
	ia, ib := a.Indexer(), b.Indexer()
	if ia != nil && ib != nil {
		for i, n := 0, ia.Len(); i < n; i++ {
			if stop != nil && stop() {
				return
			}
			visited++
			if !eq(ia.At(i), ib.At(i)) {
				return ranges.At(ranges.IndexCursor(ia, i), i), ranges.At(ranges.IndexCursor(ib, i), i), true, visited
			}
		}
		return
	}
	ca, cb := a.Begin(), b.Begin()
	for end := a.End(); !ca.Equal(end); ca.Next() {
		if stop != nil && stop() {
			return
		}
		visited++
		if !eq(ca.Get(), cb.Get()) {
			return ranges.At(ca, visited-1), ranges.At(cb, visited-1), true, visited
		}
		cb.Next()
	}
	return
}

// Move stores each element of in into out at the same offset, and resets the
// element of in to the zero value of T. It returns the number of elements
// moved. out must have at least as many elements as in.
func Move[T any](in, out ranges.Range[T]) (visited int) {
	var zero T
	ii, io := in.Indexer(), out.Indexer()
	if ii != nil && io != nil {
		n := ii.Len()
		for i := 0; i < n; i++ {
			io.Set(i, ii.At(i))
			ii.Set(i, zero)
		}
		return n
	}
	co := out.Begin()
	for c, end := in.Begin(), in.End(); !c.Equal(end); c.Next() {
		co.Set(c.Get())
		c.Set(zero)
		co.Next()
		visited++
	}
	return
}

// Transform stores f(x) in out for each element x of in, at the same
// offset, and returns the number of elements transformed. out must have at
// least as many elements as in.
func Transform[A, B any](in ranges.Range[A], out ranges.Range[B], f func(A) B) (visited int) {
	ii, io := in.Indexer(), out.Indexer()
	if ii != nil && io != nil {
		n := ii.Len()
		for i := 0; i < n; i++ {
			io.Set(i, f(ii.At(i)))
		}
		return n
	}
	co := out.Begin()
	for c, end := in.Begin(), in.End(); !c.Equal(end); c.Next() {
		co.Set(f(c.Get()))
		co.Next()
		visited++
	}
	return
}

// Transform2 stores f(x, y) in out for each pair of elements x of in1 and y
// of in2 at the same offset, and returns the number of pairs transformed. in2
// and out must have at least as many elements as in1.
func Transform2[A, B, C any](
	in1 ranges.Range[A],
	in2 ranges.Range[B],
	out ranges.Range[C],
	f func(A, B) C,
) (visited int) {
	i1, i2, io := in1.Indexer(), in2.Indexer(), out.Indexer()
	if i1 != nil && i2 != nil && io != nil {
		n := i1.Len()
		for i := 0; i < n; i++ {
			io.Set(i, f(i1.At(i), i2.At(i)))
		}
		return n
	}
	c2, co := in2.Begin(), out.Begin()
	for c1, end := in1.Begin(), in1.End(); !c1.Equal(end); c1.Next() {
		co.Set(f(c1.Get(), c2.Get()))
		c2.Next()
		co.Next()
		visited++
	}
	return
}

// TransformN stores f(x) at out for each of the n elements x starting at
// in. It never advances in or out beyond the last of these elements.
func TransformN[A, B any](in ranges.Cursor[A], n int, out ranges.Cursor[B], f func(A) B) {
	for i := 0; i < n; i++ {
		out.Set(f(in.Get()))
		if i+1 < n {
			in.Next()
			out.Next()
		}
	}
}

// Transform2N stores f(x, y) at out for each of the n pairs of elements x
// and y starting at in1 and in2. It never advances any of the cursors beyond
// the last of these elements.
func Transform2N[A, B, C any](
	in1 ranges.Cursor[A],
	n int,
	in2 ranges.Cursor[B],
	out ranges.Cursor[C],
	f func(A, B) C,
) {
	for i := 0; i < n; i++ {
		out.Set(f(in1.Get(), in2.Get()))
		if i+1 < n {
			in1.Next()
			in2.Next()
			out.Next()
		}
	}
}

// ZipForEach invokes f for each pair of elements of a and b at the same
// offset, and returns the number of pairs visited. b must have at least as
// many elements as a.
func ZipForEach[A, B any](a ranges.Range[A], b ranges.Range[B], f func(A, B)) (visited int) {
	ia, ib := a.Indexer(), b.Indexer()
	if ia != nil && ib != nil {
		n := ia.Len()
		for i := 0; i < n; i++ {
			f(ia.At(i), ib.At(i))
		}
		return n
	}
	cb := b.Begin()
	for c, end := a.Begin(), a.End(); !c.Equal(end); c.Next() {
		f(c.Get(), cb.Get())
		cb.Next()
		visited++
	}
	return
}
