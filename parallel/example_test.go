package parallel_test

import (
	"fmt"
	"strings"

	"github.com/exascience/paralg/parallel"
	"github.com/exascience/paralg/ranges"
)

func ExampleCountIf() {
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	n, err := parallel.CountIf(nil, ranges.Slice(numbers), func(x int) bool { return x%2 == 0 })
	if err != nil {
		panic(err)
	}
	fmt.Println(n)

	// Output:
	// 5
}

func ExampleTransform() {
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8}
	doubled := make([]int, len(numbers))
	if err := parallel.Transform(nil, ranges.Slice(numbers), ranges.Slice(doubled), func(x int) int {
		return 2 * x
	}); err != nil {
		panic(err)
	}
	fmt.Println(doubled)

	// Output:
	// [2 4 6 8 10 12 14 16]
}

func ExampleFindAnyIf() {
	words := ranges.List[string](ranges.NewList("alpha", "beta", "gamma", "delta"))
	pos, err := parallel.FindAnyIf(nil, words, func(w string) bool { return strings.HasPrefix(w, "g") })
	if err != nil {
		panic(err)
	}
	fmt.Println(pos.Offset(), pos.Get())

	pos, err = parallel.FindAny(nil, words, "omega")
	if err != nil {
		panic(err)
	}
	fmt.Println(pos.IsEnd())

	// Output:
	// 2 gamma
	// true
}

func ExampleMismatchAny() {
	a := []int{1, 2, 3, 4, 5}
	b := []int{1, 2, 0, 4, 5}
	pa, pb, err := parallel.MismatchAny(nil, ranges.Slice(a), ranges.Slice(b))
	if err != nil {
		panic(err)
	}
	fmt.Println(pa.Offset(), pa.Get(), pb.Get())

	// Output:
	// 2 3 0
}

func ExampleNew() {
	x, err := parallel.New(parallel.WithWorkers(3))
	if err != nil {
		panic(err)
	}
	r := ranges.Forward([]string{"a", "b", "c", "d", "e"})
	if err := parallel.Transform(x, r, r, strings.ToUpper); err != nil {
		panic(err)
	}
	ok, err := parallel.AllOf(x, r, func(s string) bool { return s == strings.ToUpper(s) })
	if err != nil {
		panic(err)
	}
	fmt.Println(x.Workers(), ok)

	// Output:
	// 3 true
}
