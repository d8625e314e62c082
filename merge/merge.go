/*
Package merge provides the shared result slots that combine the partial
results of the workers of one parallel algorithm call.
*/
package merge

import "sync/atomic"

/*
A Winner holds the result of the first worker that reports one.

Each worker owns one slot of a fixed-size results table. Offer stores the
worker's result in its own slot and then tries to publish the slot's index
with a compare-and-swap. Only the first successful Offer is kept: once a
winner is published it never changes, and there is no way to return to the
empty state.

Workers poll Done to stop early once another worker has published a result.
*/
type Winner[P any] struct {
	results []P
	winner  atomic.Int32
}

// NewWinner returns an empty Winner for the given number of workers.
func NewWinner[P any](workers int) *Winner[P] {
	w := &Winner[P]{results: make([]P, workers)}
	w.winner.Store(-1)
	return w
}

// Offer publishes p as the result of worker, unless another worker has
// already published a result. It reports whether p was published.
func (w *Winner[P]) Offer(worker int, p P) bool {
	if w.winner.Load() >= 0 {
		return false
	}
	w.results[worker] = p
	return w.winner.CompareAndSwap(-1, int32(worker))
}

// Done reports whether a result has been published.
func (w *Winner[P]) Done() bool {
	return w.winner.Load() >= 0
}

// Worker returns the index of the worker whose result was published, or -1.
func (w *Winner[P]) Worker() int {
	return int(w.winner.Load())
}

// Result returns the published result, and whether there is one. It must
// only be called after all workers have terminated.
func (w *Winner[P]) Result() (p P, ok bool) {
	i := w.winner.Load()
	if i < 0 {
		return p, false
	}
	return w.results[i], true
}

// Number is the constraint for values that can be summed.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// A Sum holds one partial result per worker, and adds them up after all
// workers have terminated.
type Sum[N Number] struct {
	parts []N
}

// NewSum returns a Sum for the given number of workers.
func NewSum[N Number](workers int) *Sum[N] {
	return &Sum[N]{parts: make([]N, workers)}
}

// Set stores the partial result of worker.
func (s *Sum[N]) Set(worker int, n N) {
	s.parts[worker] = n
}

// Total returns the sum of all partial results. It must only be called
// after all workers have terminated.
func (s *Sum[N]) Total() (total N) {
	for _, n := range s.parts {
		total += n
	}
	return
}
