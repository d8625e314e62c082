package ranges

import "container/list"

/*
List returns a sequential range over the elements of l, whose values must all
be of type T. Writes through the range replace the Value of the list elements.

The range knows its length and can be reversed.
*/
func List[T any](l *list.List) Range[T] {
	return Seq[T](listSequence[T]{l})
}

// NewList returns a new list holding the given values, in order.
func NewList[T any](values ...T) *list.List {
	l := list.New()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// ListValues returns the values of l, in order.
func ListValues[T any](l *list.List) []T {
	values := make([]T, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.(T))
	}
	return values
}

type listSequence[T any] struct {
	l *list.List
}

func (s listSequence[T]) Begin() Cursor[T] { return &listCursor[T]{s.l.Front()} }
func (s listSequence[T]) End() Cursor[T]   { return &listCursor[T]{nil} }
func (s listSequence[T]) Len() int         { return s.l.Len() }

func (s listSequence[T]) Reverse() Sequence[T] {
	return reverseListSequence[T](s)
}

type listCursor[T any] struct {
	e *list.Element
}

func (c *listCursor[T]) Get() T  { return c.e.Value.(T) }
func (c *listCursor[T]) Set(v T) { c.e.Value = v }

func (c *listCursor[T]) Next() {
	if c.e == nil {
		panic("ranges: cursor advanced past the end of the list")
	}
	c.e = c.e.Next()
}

func (c *listCursor[T]) Clone() Cursor[T] { return &listCursor[T]{c.e} }

func (c *listCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := Unwrap(other).(*listCursor[T])
	return ok && o.e == c.e
}

type reverseListSequence[T any] struct {
	l *list.List
}

func (s reverseListSequence[T]) Begin() Cursor[T] { return &reverseListCursor[T]{s.l.Back()} }
func (s reverseListSequence[T]) End() Cursor[T]   { return &reverseListCursor[T]{nil} }
func (s reverseListSequence[T]) Len() int         { return s.l.Len() }

func (s reverseListSequence[T]) Reverse() Sequence[T] {
	return listSequence[T](s)
}

type reverseListCursor[T any] struct {
	e *list.Element
}

func (c *reverseListCursor[T]) Get() T  { return c.e.Value.(T) }
func (c *reverseListCursor[T]) Set(v T) { c.e.Value = v }

func (c *reverseListCursor[T]) Next() {
	if c.e == nil {
		panic("ranges: cursor advanced past the end of the list")
	}
	c.e = c.e.Prev()
}

func (c *reverseListCursor[T]) Clone() Cursor[T] { return &reverseListCursor[T]{c.e} }

func (c *reverseListCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := Unwrap(other).(*reverseListCursor[T])
	return ok && o.e == c.e
}
