package ranges

/*
A Position identifies an element of a range, or the end of a range.

Positions returned by the parallel search algorithms carry a cursor at the
found element, which can be used to read or modify it, and its offset from
the beginning of the range.
*/
type Position[T any] struct {
	cursor Cursor[T]
	offset int
	end    bool
}

// At returns the position of the element under c. If c does not implement
// Offsetter, offset is used instead.
func At[T any](c Cursor[T], offset int) Position[T] {
	if o, ok := c.(Offsetter); ok {
		offset = o.Offset()
	}
	return Position[T]{cursor: Unwrap(c).Clone(), offset: offset}
}

// EndOf returns the end position of r. Its offset is the length of r if
// that is known without traversing r, that is for indexable ranges and Sized
// sequences, and -1 otherwise.
func EndOf[T any](r Range[T]) Position[T] {
	offset := -1
	if r.idx != nil {
		offset = r.idx.Len()
	} else if sized, ok := r.seq.(Sized); ok {
		offset = sized.Len()
	}
	return Position[T]{cursor: r.End(), offset: offset, end: true}
}

// IsEnd reports whether p is the end position of its range.
func (p Position[T]) IsEnd() bool { return p.end }

// Offset returns the offset of p from the beginning of its range.
func (p Position[T]) Offset() int { return p.offset }

// Cursor returns a cursor at p.
func (p Position[T]) Cursor() Cursor[T] { return p.cursor }

// Get returns the element at p. It must not be called on an end position.
func (p Position[T]) Get() T { return p.cursor.Get() }

/*
Nth returns the position at offset k of r, which is the end position of r if
r has exactly k elements. k must not exceed the length of r.

Nth is O(1) for indexable ranges and O(k) for sequential ranges.
*/
func Nth[T any](r Range[T], k int) Position[T] {
	if r.idx != nil {
		return Position[T]{cursor: IndexCursor(r.idx, k), offset: k, end: k == r.idx.Len()}
	}
	c, end := r.seq.Begin(), r.seq.End()
	for i := 0; i < k; i++ {
		c.Next()
	}
	return Position[T]{cursor: c, offset: k, end: c.Equal(end)}
}
