// Package paralg provides data-parallel implementations of the classic
// sequence algorithms: searching, counting, comparing, transforming, copying,
// filling, and replacing elements of a range. Each operation divides its range
// into one partition per worker, runs the partitions concurrently, waits for
// all of them, and merges the partial results.
//
// Paralg provides the following subpackages:
//
// paralg/parallel provides the operation set and the Executor that carries
// the degree of parallelism, logging, and metrics used by each call.
//
// paralg/ranges provides the range model. Ranges are either indexable
// (slices, gonum vectors and matrix rows) or sequential (linked lists and
// other ranges that can only be traversed one element at a time).
//
// paralg/partition computes near-equal partition sizes for a range.
//
// paralg/workers provides the per-call fan-out and join barrier.
//
// paralg/merge provides the shared result slots that combine the partial
// results of the workers.
//
// paralg/sequential provides the single-goroutine algorithm bodies that run
// inside one worker.
//
// paralg/metrics provides collectors for per-call and per-worker statistics.
//
// The degree of parallelism defaults to runtime.GOMAXPROCS(0). It can be set
// once at process start with SetWorkers or Configure, before the first
// operation reads it.
package paralg
