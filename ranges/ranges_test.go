package ranges

import (
	"container/list"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/paralg"
)

func collect[T any](r Range[T]) []T {
	var result []T
	for c, end := r.Begin(), r.End(); !c.Equal(end); c.Next() {
		result = append(result, c.Get())
	}
	return result
}

func TestKinds(t *testing.T) {
	require.Equal(t, Indexable, Slice([]int{1}).Kind())
	require.Equal(t, Sequential, Forward([]int{1}).Kind())
	require.Equal(t, Sequential, List[int](NewList(1)).Kind())
	require.Equal(t, "indexable", Indexable.String())
	require.Equal(t, "sequential", Sequential.String())
	require.False(t, Range[int]{}.Valid())
	require.True(t, Slice[int](nil).Valid())
}

func TestLen(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	require.Equal(t, 5, Slice(values).Len())
	require.Equal(t, 5, Forward(values).Len())
	require.Equal(t, 5, List[int](NewList(values...)).Len())
	require.Equal(t, 0, Forward([]int{}).Len())
}

func TestCursorTraversal(t *testing.T) {
	values := []string{"a", "b", "c"}
	require.Equal(t, values, collect(Slice(values)))
	require.Equal(t, values, collect(Forward(values)))
	require.Equal(t, values, collect(List[string](NewList(values...))))
}

func TestCursorSet(t *testing.T) {
	l := NewList(1, 2, 3)
	r := List[int](l)
	for c, end := r.Begin(), r.End(); !c.Equal(end); c.Next() {
		c.Set(c.Get() * 10)
	}
	require.Equal(t, []int{10, 20, 30}, ListValues[int](l))

	values := []int{1, 2, 3}
	f := Forward(values)
	for c, end := f.Begin(), f.End(); !c.Equal(end); c.Next() {
		c.Set(-c.Get())
	}
	require.Equal(t, []int{-1, -2, -3}, values)
}

func TestCursorPastEndPanics(t *testing.T) {
	require.Panics(t, func() { List[int](list.New()).Begin().Next() })
	require.Panics(t, func() { Forward([]int{}).Begin().Next() })
}

func TestSub(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5}
	for _, r := range []Range[int]{Slice(values), Forward(values), List[int](NewList(values...))} {
		t.Run(r.Kind().String(), func(t *testing.T) {
			sub, err := r.Sub(2, 5)
			require.NoError(t, err)
			require.Equal(t, 3, sub.Len())
			require.Equal(t, []int{2, 3, 4}, collect(sub))

			empty, err := r.Sub(6, 6)
			require.NoError(t, err)
			require.Equal(t, 0, empty.Len())

			_, err = r.Sub(4, 7)
			require.ErrorIs(t, err, paralg.ErrInvalidRange)
			_, err = r.Sub(3, 2)
			require.ErrorIs(t, err, paralg.ErrInvalidRange)
			_, err = r.Sub(-1, 2)
			require.ErrorIs(t, err, paralg.ErrInvalidRange)
		})
	}
}

func TestReverse(t *testing.T) {
	values := []int{1, 2, 3, 4}
	rev, err := Reverse(Slice(values))
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2, 1}, collect(rev))
	rev.Indexer().Set(0, 40)
	require.Equal(t, []int{1, 2, 3, 40}, values)

	back, err := Reverse(rev)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 40}, collect(back))

	l := NewList(1, 2, 3)
	lrev, err := Reverse(List[int](l))
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, collect(lrev))
	require.Equal(t, 3, lrev.Len())
	lback, err := Reverse(lrev)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, collect(lback))

	_, err = Reverse(Forward(values))
	require.ErrorIs(t, err, paralg.ErrNotReversible)
}

func TestGonum(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, 2, 3})
	r := Vector(v)
	require.Equal(t, 3, r.Len())
	r.Indexer().Set(1, 20)
	require.Equal(t, 20.0, v.AtVec(1))

	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	rows := Rows(m)
	require.Equal(t, 2, rows.Len())
	require.Equal(t, []float64{4, 5, 6}, rows.Indexer().At(1))
	rows.Indexer().At(0)[2] = 30
	require.Equal(t, 30.0, m.At(0, 2))
	rows.Indexer().Set(1, []float64{7, 8, 9})
	require.Equal(t, 8.0, m.At(1, 1))
}

func TestStrideRoundRobin(t *testing.T) {
	for n := 0; n <= 17; n++ {
		for w := 1; w <= 6; w++ {
			t.Run(fmt.Sprintf("n=%d/w=%d", n, w), func(t *testing.T) {
				values := make([]int, n)
				for i := range values {
					values[i] = i
				}
				for _, r := range []Range[int]{Forward(values), List[int](NewList(values...)), Slice(values)} {
					seen := make([]int, n)
					start, end := r.Begin(), r.End()
					for i := 0; i < w && !start.Equal(end); i++ {
						s := Bounded(start.Clone(), end, w, i)
						expected := i
						for c := Cursor[int](s); !c.Equal(end); c.Next() {
							require.Equal(t, expected, c.Get())
							require.Equal(t, expected, c.(Offsetter).Offset())
							seen[c.Get()]++
							expected += w
						}
						start.Next()
					}
					for i, count := range seen {
						require.Equal(t, 1, count, "element %d", i)
					}
				}
			})
		}
	}
}

func TestStrideBoundedStopsAtEnd(t *testing.T) {
	r := List[int](NewList(1, 2, 3))
	s := Bounded(r.Begin(), r.End(), 5, 0)
	s.Next()
	require.True(t, s.Equal(r.End()))
	s.Next()
	require.True(t, s.Equal(r.End()))
	require.Equal(t, 3, s.Offset())
}

func TestStrideUnbounded(t *testing.T) {
	r := Forward([]int{0, 1, 2, 3, 4, 5, 6})
	s := Unbounded(r.Begin(), 3, 0)
	s.Next()
	require.Equal(t, 3, s.Get())
	clone := s.Clone()
	s.Next()
	require.Equal(t, 6, s.Get())
	require.Equal(t, 3, clone.Get())
	require.True(t, Unwrap[int](s).Equal(s))
}

func TestStrideSequence(t *testing.T) {
	r := Forward([]int{0, 1, 2, 3, 4, 5, 6})
	seq := Seq[int](StrideSequence[int]{Start: Bounded(r.Begin(), r.End(), 2, 0), Stop: r.End()})
	require.Equal(t, []int{0, 2, 4, 6}, collect(seq))
	require.Equal(t, 4, seq.Len())
}

func TestPosition(t *testing.T) {
	r := Slice([]int{5, 6, 7})
	c := r.Begin()
	c.Next()
	p := At(c, -1)
	require.False(t, p.IsEnd())
	require.Equal(t, 1, p.Offset())
	require.Equal(t, 6, p.Get())
	c.Next()
	require.Equal(t, 6, p.Get(), "positions own a copy of the cursor")

	end := EndOf(r)
	require.True(t, end.IsEnd())
	require.Equal(t, 3, end.Offset())
	require.True(t, end.Cursor().Equal(r.End()))

	l := List[int](NewList(1, 2))
	require.Equal(t, 2, EndOf(l).Offset())
	require.Equal(t, -1, EndOf(Forward([]int{1, 2})).Offset())
	lp := At(l.Begin(), 0)
	require.Equal(t, 0, lp.Offset())
	require.Equal(t, 1, lp.Get())
}

func TestNth(t *testing.T) {
	for _, r := range []Range[int]{Slice([]int{5, 6, 7}), Forward([]int{5, 6, 7}), List[int](NewList(5, 6, 7))} {
		p := Nth(r, 1)
		require.False(t, p.IsEnd())
		require.Equal(t, 1, p.Offset())
		require.Equal(t, 6, p.Get())

		end := Nth(r, 3)
		require.True(t, end.IsEnd())
		require.Equal(t, 3, end.Offset())
		require.True(t, end.Cursor().Equal(r.End()))
	}
}
