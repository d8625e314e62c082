package ranges

// Slice returns an indexable range over the elements of s. Writes through the
// range modify s.
func Slice[T any](s []T) Range[T] {
	return Index[T](sliceIndexer[T](s))
}

type sliceIndexer[T any] []T

func (s sliceIndexer[T]) Len() int       { return len(s) }
func (s sliceIndexer[T]) At(i int) T     { return s[i] }
func (s sliceIndexer[T]) Set(i int, v T) { s[i] = v }

/*
Forward returns a sequential range over the elements of s that only supports
forward traversal. It neither knows its length nor can be reversed, like a
singly linked list, and is mainly useful for testing the sequential strategy
of the algorithms with slice-backed data.
*/
func Forward[T any](s []T) Range[T] {
	return Seq[T](forwardSequence[T]{&s})
}

type forwardSequence[T any] struct {
	s *[]T
}

func (f forwardSequence[T]) Begin() Cursor[T] { return &forwardCursor[T]{f.s, 0} }
func (f forwardSequence[T]) End() Cursor[T]   { return &forwardCursor[T]{f.s, len(*f.s)} }

type forwardCursor[T any] struct {
	s *[]T
	i int
}

func (c *forwardCursor[T]) Get() T  { return (*c.s)[c.i] }
func (c *forwardCursor[T]) Set(v T) { (*c.s)[c.i] = v }

func (c *forwardCursor[T]) Next() {
	if c.i >= len(*c.s) {
		panic("ranges: cursor advanced past the end of the range")
	}
	c.i++
}

func (c *forwardCursor[T]) Clone() Cursor[T] { return &forwardCursor[T]{c.s, c.i} }

func (c *forwardCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := Unwrap(other).(*forwardCursor[T])
	return ok && o.s == c.s && o.i == c.i
}
