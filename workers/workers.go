/*
Package workers provides the fan-out and join barrier used by every parallel
algorithm call.

A Group is created once with a fixed number of workers and can be reused for
any number of calls. Each call of Run starts exactly that many goroutines and
returns only when all of them have terminated.
*/
package workers

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/exascience/paralg"
	"github.com/exascience/paralg/internal"
	"github.com/exascience/paralg/internal/logging"
	"github.com/exascience/paralg/metrics"
)

// A Group runs a fixed number of workers per call.
type Group struct {
	size    int
	logger  paralg.Logger
	metrics metrics.Collector
}

// An Option configures a Group.
type Option func(*Group)

// WithLogger sets the logger that receives worker failures.
func WithLogger(logger paralg.Logger) Option {
	return func(g *Group) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics sets the collector that receives worker failures.
func WithMetrics(collector metrics.Collector) Option {
	return func(g *Group) {
		if collector != nil {
			g.metrics = collector
		}
	}
}

// New returns a Group that runs size workers per call. It returns an error
// wrapping paralg.ErrInvalidWorkers if size is smaller than 1.
func New(size int, opts ...Option) (*Group, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", paralg.ErrInvalidWorkers, size)
	}
	g := &Group{size: size, logger: logging.NewNop(), metrics: metrics.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Size returns the number of workers started by each call of Run.
func (g *Group) Size() int {
	return g.size
}

/*
Run invokes fn(i) for each worker index i in [0, Size()), each in its own
goroutine, and returns only when all of them have terminated.

If one or more invocations return an error or panic, Run still waits for all
workers, and then returns the first of these failures. A recovered panic is
returned as a *paralg.PanicError that carries the stack trace of the
panicking goroutine. Later failures are discarded.
*/
func (g *Group) Run(op string, fn func(worker int) error) error {
	var eg errgroup.Group
	for i := 0; i < g.size; i++ {
		eg.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = internal.WrapPanic(p)
				}
				if err != nil {
					g.logger.Warn("worker failed", "op", op, "worker", i, "error", err)
					g.metrics.RecordFailure(op, i, err)
				}
			}()
			return fn(i)
		})
	}
	return eg.Wait()
}
