/*
Package partition divides a range of known length into near-equal chunks, one
per worker.
*/
package partition

import (
	"fmt"

	"github.com/exascience/paralg"
)

/*
A Plan describes how a range of N elements is divided among W workers.

Sizes has W entries. Each size is either floor(N/W) or ceiling(N/W), and the
first N mod W sizes are the larger ones. Bounds has W+1 entries and holds the
running sum of Sizes, with Bounds[0] == 0 and Bounds[W] == N.
*/
type Plan struct {
	Sizes  []int
	Bounds []int
}

/*
Split computes the Plan for n elements and w workers.

If n < w, the trailing workers receive a size of 0. Split returns an error if
n is negative or w is smaller than 1.
*/
func Split(n, w int) (Plan, error) {
	if n < 0 {
		return Plan{}, fmt.Errorf("%w: length %d", paralg.ErrInvalidRange, n)
	}
	if w < 1 {
		return Plan{}, fmt.Errorf("%w: %d", paralg.ErrInvalidWorkers, w)
	}
	sizes := make([]int, w)
	bounds := make([]int, w+1)
	div, mod := n/w, n%w
	for i := range sizes {
		sizes[i] = div
		if i < mod {
			sizes[i]++
		}
		bounds[i+1] = bounds[i] + sizes[i]
	}
	return Plan{Sizes: sizes, Bounds: bounds}, nil
}

// Workers returns the number of partitions in the plan.
func (p Plan) Workers() int {
	return len(p.Sizes)
}

// Len returns the total number of elements covered by the plan.
func (p Plan) Len() int {
	if len(p.Bounds) == 0 {
		return 0
	}
	return p.Bounds[len(p.Bounds)-1]
}

// Span returns the half-open offsets [low, high) of partition i.
func (p Plan) Span(i int) (low, high int) {
	return p.Bounds[i], p.Bounds[i+1]
}
