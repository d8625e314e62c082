/*
Package metrics provides collectors for statistics about parallel algorithm
calls and their workers.

NewNop discards everything, NewPrometheus exports to a Prometheus registry,
and NewStats keeps in-memory counters that can be inspected directly.
*/
package metrics

import "time"

// A Collector receives statistics from parallel algorithm calls. Its methods
// are called concurrently from worker goroutines.
type Collector interface {
	// RecordCall records a completed call of operation op that used the given
	// traversal strategy over a range of the given number of elements. The
	// number of elements is -1 if it was not computed. err is the error
	// returned by the call, or nil.
	RecordCall(op, strategy string, elements int, duration time.Duration, err error)

	// RecordWorker records that a worker of op finished after visiting the
	// given number of elements.
	RecordWorker(op string, worker, visited int)

	// RecordFailure records that a worker of op failed.
	RecordFailure(op string, worker int, err error)
}

// NopMetrics is a Collector that discards all statistics.
type NopMetrics struct{}

var _ Collector = (*NopMetrics)(nil)

// NewNop returns a Collector that discards all statistics.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (*NopMetrics) RecordCall(_, _ string, _ int, _ time.Duration, _ error) {}

func (*NopMetrics) RecordWorker(_ string, _, _ int) {}

func (*NopMetrics) RecordFailure(_ string, _ int, _ error) {}
