package metrics

import (
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// Stats is a Collector that keeps in-memory counters per operation.
type Stats struct {
	calls    *xsync.Map[string, *xsync.Counter]
	errors   *xsync.Map[string, *xsync.Counter]
	workers  *xsync.Map[string, *xsync.Counter]
	visited  *xsync.Map[string, *xsync.Counter]
	failures *xsync.Map[string, *xsync.Counter]
}

var _ Collector = (*Stats)(nil)

// NewStats returns an empty Stats collector.
func NewStats() *Stats {
	return &Stats{
		calls:    xsync.NewMap[string, *xsync.Counter](),
		errors:   xsync.NewMap[string, *xsync.Counter](),
		workers:  xsync.NewMap[string, *xsync.Counter](),
		visited:  xsync.NewMap[string, *xsync.Counter](),
		failures: xsync.NewMap[string, *xsync.Counter](),
	}
}

func counter(m *xsync.Map[string, *xsync.Counter], op string) *xsync.Counter {
	if c, ok := m.Load(op); ok {
		return c
	}
	c, _ := m.LoadOrStore(op, xsync.NewCounter())
	return c
}

func value(m *xsync.Map[string, *xsync.Counter], op string) int64 {
	if c, ok := m.Load(op); ok {
		return c.Value()
	}
	return 0
}

func (s *Stats) RecordCall(op, _ string, _ int, _ time.Duration, err error) {
	counter(s.calls, op).Inc()
	if err != nil {
		counter(s.errors, op).Inc()
	}
}

func (s *Stats) RecordWorker(op string, _, visited int) {
	counter(s.workers, op).Inc()
	counter(s.visited, op).Add(int64(visited))
}

func (s *Stats) RecordFailure(op string, _ int, _ error) {
	counter(s.failures, op).Inc()
}

// Calls returns the number of completed calls of op.
func (s *Stats) Calls(op string) int64 { return value(s.calls, op) }

// Errors returns the number of calls of op that returned an error.
func (s *Stats) Errors(op string) int64 { return value(s.errors, op) }

// Workers returns the number of workers of op that finished.
func (s *Stats) Workers(op string) int64 { return value(s.workers, op) }

// Visited returns the total number of elements visited by the workers of op.
func (s *Stats) Visited(op string) int64 { return value(s.visited, op) }

// Failures returns the number of failed workers of op.
func (s *Stats) Failures(op string) int64 { return value(s.failures, op) }
