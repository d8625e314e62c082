package sequential_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/paralg/ranges"
	"github.com/exascience/paralg/sequential"
)

func inputs(values ...int) map[string]ranges.Range[int] {
	return map[string]ranges.Range[int]{
		"slice":   ranges.Slice(append([]int(nil), values...)),
		"forward": ranges.Forward(append([]int(nil), values...)),
		"list":    ranges.List[int](ranges.NewList(values...)),
	}
}

func TestFindIf(t *testing.T) {
	for name, r := range inputs(1, 3, 5, 6, 7, 8) {
		t.Run(name, func(t *testing.T) {
			pos, found, visited := sequential.FindIf(r, func(x int) bool { return x%2 == 0 }, nil)
			require.True(t, found)
			require.Equal(t, 3, pos.Offset())
			require.Equal(t, 6, pos.Get())
			require.Equal(t, 4, visited)

			_, found, visited = sequential.FindIf(r, func(x int) bool { return x > 100 }, nil)
			require.False(t, found)
			require.Equal(t, 6, visited)
		})
	}
}

func TestFindIfStops(t *testing.T) {
	for name, r := range inputs(1, 2, 3, 4, 5) {
		t.Run(name, func(t *testing.T) {
			polls := 0
			stop := func() bool {
				polls++
				return polls > 2
			}
			_, found, visited := sequential.FindIf(r, func(int) bool { return false }, stop)
			require.False(t, found)
			require.Equal(t, 2, visited)
			require.Equal(t, 3, polls)
		})
	}
}

func TestFindIfPollsPerStep(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	never := func(int) bool { return false }

	// With three round-robin workers over a sequential range, each stride
	// step skips three underlying elements but costs a single poll.
	r := ranges.List[int](ranges.NewList(values...))
	for worker, want := range []int{4, 3, 3} {
		begin := r.Begin()
		for i := 0; i < worker; i++ {
			begin.Next()
		}
		part := ranges.Seq[int](ranges.StrideSequence[int]{
			Start: ranges.Bounded(begin, r.End(), 3, worker),
			Stop:  r.End(),
		})
		polls := 0
		_, found, visited := sequential.FindIf(part, never, func() bool {
			polls++
			return false
		})
		require.False(t, found)
		require.Equal(t, want, visited)
		require.Equal(t, want, polls)

		if worker == 0 {
			polls = 0
			pos, found, _ := sequential.FindIf(part, func(v int) bool { return v == 6 }, func() bool {
				polls++
				return false
			})
			require.True(t, found)
			require.Equal(t, 6, pos.Offset())
			require.Equal(t, 3, polls)
		}
	}

	// An indexable part polls before every one of its elements.
	sub, err := ranges.Slice(values).Sub(2, 8)
	require.NoError(t, err)
	polls := 0
	_, found, visited := sequential.FindIf(sub, never, func() bool {
		polls++
		return false
	})
	require.False(t, found)
	require.Equal(t, 6, visited)
	require.Equal(t, 6, polls)
}

func TestCountIf(t *testing.T) {
	for name, r := range inputs(1, 2, 3, 4, 5, 6, 7) {
		t.Run(name, func(t *testing.T) {
			count, visited := sequential.CountIf(r, func(x int) bool { return x%2 == 1 })
			require.Equal(t, 4, count)
			require.Equal(t, 7, visited)
		})
	}
}

func TestForEachAndModify(t *testing.T) {
	for name, r := range inputs(1, 2, 3, 4) {
		t.Run(name, func(t *testing.T) {
			sum := 0
			require.Equal(t, 4, sequential.ForEach(r, func(x int) { sum += x }))
			require.Equal(t, 10, sum)

			visited := sequential.Modify(r, func(x int) (int, bool) { return -x, x%2 == 0 })
			require.Equal(t, 4, visited)
			var got []int
			sequential.ForEach(r, func(x int) { got = append(got, x) })
			require.Equal(t, []int{1, -2, 3, -4}, got)
		})
	}
}

func TestModifyNStaysInBounds(t *testing.T) {
	s := []int{1, 2, 3}
	r := ranges.Forward(s)
	// Forward cursors panic when advanced past the end.
	require.NotPanics(t, func() {
		sequential.ModifyN(r.Begin(), 3, func(int) (int, bool) { return 9, true })
	})
	require.Equal(t, []int{9, 9, 9}, s)
}

func TestMismatch(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{1, 2, 0, 4, 0, 6}
	eq := func(x, y int) bool { return x == y }
	for _, tc := range []struct {
		name string
		a, b ranges.Range[int]
	}{
		{"indexable", ranges.Slice(a), ranges.Slice(b)},
		{"mixed", ranges.Slice(a), ranges.Forward(b)},
		{"sequential", ranges.List[int](ranges.NewList(a...)), ranges.Forward(b)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pa, pb, found, visited := sequential.Mismatch(tc.a, tc.b, eq, nil)
			require.True(t, found)
			require.Equal(t, 2, pa.Offset())
			require.Equal(t, 2, pb.Offset())
			require.Equal(t, 3, pa.Get())
			require.Equal(t, 0, pb.Get())
			require.Equal(t, 3, visited)
		})
	}

	_, _, found, visited := sequential.Mismatch(ranges.Forward(a), ranges.Slice(a), eq, nil)
	require.False(t, found)
	require.Equal(t, 5, visited)
}

func TestTransform(t *testing.T) {
	in := []int{1, 2, 3}
	out := make([]string, 4)
	visited := sequential.Transform(ranges.Forward(in), ranges.Slice(out), func(x int) string {
		return string(rune('a' + x))
	})
	require.Equal(t, 3, visited)
	require.Equal(t, []string{"b", "c", "d", ""}, out)

	sum := make([]int, 3)
	visited = sequential.Transform2(ranges.Slice(in), ranges.Slice([]int{10, 20, 30}), ranges.Slice(sum),
		func(x, y int) int { return x + y })
	require.Equal(t, 3, visited)
	require.Equal(t, []int{11, 22, 33}, sum)
}

func TestTransformN(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := make([]int, 3)
	require.NotPanics(t, func() {
		sequential.TransformN(ranges.Forward(in).Begin(), 3, ranges.Forward(out).Begin(),
			func(x int) int { return x * x })
	})
	require.Equal(t, []int{1, 4, 9}, out)

	require.NotPanics(t, func() {
		sequential.Transform2N(ranges.Forward(in).Begin(), 3, ranges.Forward([]int{1, 1, 1}).Begin(),
			ranges.Forward(out).Begin(), func(x, y int) int { return x - y })
	})
	require.Equal(t, []int{0, 1, 2}, out)

	sequential.TransformN(ranges.Forward(in).Begin(), 0, ranges.Forward(out).Begin(),
		func(int) int { panic("unreachable") })
}

func TestZipForEach(t *testing.T) {
	var got []string
	visited := sequential.ZipForEach(ranges.List[int](ranges.NewList(1, 2)), ranges.Slice([]string{"x", "y", "z"}),
		func(n int, s string) {
			for i := 0; i < n; i++ {
				got = append(got, s)
			}
		})
	require.Equal(t, 2, visited)
	require.Equal(t, []string{"x", "y", "y"}, got)
}

func TestMove(t *testing.T) {
	type item struct{ name string }
	in := []*item{{"a"}, {"b"}}
	out := make([]*item, 2)
	require.Equal(t, 2, sequential.Move(ranges.Forward(in), ranges.Slice(out)))
	require.Equal(t, []*item{nil, nil}, in)
	require.Equal(t, "a", out[0].name)
	require.Equal(t, "b", out[1].name)
}
