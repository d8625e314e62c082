package ranges

import (
	"fmt"

	"github.com/exascience/paralg"
)

/*
Reverse returns a view of r that yields its elements in reverse order. Writes
through the view modify r.

Indexable ranges can always be reversed. Sequential ranges can be reversed if
their Sequence implements Reversible; otherwise Reverse returns an error
wrapping paralg.ErrNotReversible.
*/
func Reverse[T any](r Range[T]) (Range[T], error) {
	if r.idx != nil {
		if rev, ok := r.idx.(reverseIndexer[T]); ok {
			return Index(rev.ix), nil
		}
		return Index[T](reverseIndexer[T]{r.idx}), nil
	}
	if rev, ok := r.seq.(Reversible[T]); ok {
		return Seq(rev.Reverse()), nil
	}
	return Range[T]{}, fmt.Errorf("%w: %T", paralg.ErrNotReversible, r.seq)
}

type reverseIndexer[T any] struct {
	ix Indexer[T]
}

func (r reverseIndexer[T]) Len() int       { return r.ix.Len() }
func (r reverseIndexer[T]) At(i int) T     { return r.ix.At(r.ix.Len() - 1 - i) }
func (r reverseIndexer[T]) Set(i int, v T) { r.ix.Set(r.ix.Len()-1-i, v) }
