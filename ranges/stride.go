package ranges

/*
A Stride is a cursor that advances its underlying cursor by up to step
elements on each call of Next. It lets W workers traverse a sequential range
in round-robin fashion: the worker starting at offset i visits the offsets
i, i+W, i+2W, and so on, and together the workers visit every element exactly
once.

A bounded Stride carries a captured copy of the end cursor and never steps
past it. An unbounded Stride steps unconditionally, and is only safe when the
caller limits the number of steps.

Equality delegates to the underlying cursors; the captured end is not part of
the comparison.
*/
type Stride[T any] struct {
	cur    Cursor[T]
	end    Cursor[T]
	step   int
	offset int
}

// Bounded returns a Stride starting at c that advances by step elements per
// call of Next, but stops at end. The offset of c from the beginning of its
// range is tracked for reporting positions.
func Bounded[T any](c, end Cursor[T], step, offset int) *Stride[T] {
	return &Stride[T]{cur: c, end: end, step: step, offset: offset}
}

// Unbounded returns a Stride starting at c that advances by step elements
// per call of Next, without checking for the end of the range.
func Unbounded[T any](c Cursor[T], step, offset int) *Stride[T] {
	return &Stride[T]{cur: c, step: step, offset: offset}
}

func (s *Stride[T]) Get() T  { return s.cur.Get() }
func (s *Stride[T]) Set(v T) { s.cur.Set(v) }

// Next advances the underlying cursor by up to step elements.
func (s *Stride[T]) Next() {
	for i := 0; i < s.step; i++ {
		if s.end != nil && s.cur.Equal(s.end) {
			return
		}
		s.cur.Next()
		s.offset++
	}
}

func (s *Stride[T]) Equal(other Cursor[T]) bool {
	return s.cur.Equal(Unwrap(other))
}

// Clone returns an independent copy of s. The captured end is shared, since
// it is never advanced.
func (s *Stride[T]) Clone() Cursor[T] {
	return &Stride[T]{cur: s.cur.Clone(), end: s.end, step: s.step, offset: s.offset}
}

// Offset returns the offset of the current element from the beginning of
// the range.
func (s *Stride[T]) Offset() int { return s.offset }

// Unwrap returns the underlying cursor.
func (s *Stride[T]) Unwrap() Cursor[T] { return s.cur }


// StrideSequence is the sequence of elements visited by a Stride, up to the
// given end cursor.
type StrideSequence[T any] struct {
	Start *Stride[T]
	Stop  Cursor[T]
}

func (s StrideSequence[T]) Begin() Cursor[T] { return s.Start.Clone() }
func (s StrideSequence[T]) End() Cursor[T]   { return s.Stop.Clone() }
