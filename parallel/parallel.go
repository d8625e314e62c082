/*
Package parallel provides data-parallel versions of common sequence
algorithms.

Each call divides its ranges among the workers of an Executor, runs the
sequential version of the algorithm on each part in its own goroutine, waits
for all workers, and then combines their partial results.

Indexable ranges are divided into contiguous chunks of near-equal size.
Sequential ranges are traversed in round-robin fashion: with W workers,
worker i visits the elements at offsets i, i+W, i+2W, and so on. An
algorithm that involves several ranges only uses the indexable strategy if
all of them are indexable.

The searches FindAnyIf, FindAny, FindAnyIfNot and MismatchAny return the
position of some matching element, not necessarily the first one. Workers
stop searching as soon as any worker reports a match.

All functions take an *Executor as their first argument. A nil Executor
stands for Default().

Functions passed to the algorithms are called concurrently from several
goroutines, and must be safe for concurrent use.
*/
package parallel

import (
	"sync"

	"github.com/exascience/paralg"
	"github.com/exascience/paralg/internal/logging"
	"github.com/exascience/paralg/metrics"
	"github.com/exascience/paralg/workers"
)

// An Executor runs parallel algorithms with a fixed number of workers.
//
// An Executor is safe for concurrent use, and can be reused for any number
// of calls.
type Executor struct {
	group   *workers.Group
	logger  paralg.Logger
	metrics metrics.Collector
}

type options struct {
	workers int
	logger  paralg.Logger
	metrics metrics.Collector
}

// An Option configures an Executor.
type Option func(*options)

// WithWorkers sets the number of workers. 0 stands for paralg.Workers().
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger for dispatch decisions and worker failures.
func WithLogger(logger paralg.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets the collector for call and worker metrics.
func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// New returns an Executor configured by opts. It returns an error wrapping
// paralg.ErrInvalidWorkers if the number of workers is negative.
func New(opts ...Option) (*Executor, error) {
	o := options{logger: logging.NewNop(), metrics: metrics.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == 0 {
		o.workers = paralg.Workers()
	}
	group, err := workers.New(o.workers, workers.WithLogger(o.logger), workers.WithMetrics(o.metrics))
	if err != nil {
		return nil, err
	}
	return &Executor{group: group, logger: o.logger, metrics: o.metrics}, nil
}

var (
	defaultOnce     sync.Once
	defaultExecutor *Executor
)

// Default returns the shared Executor with paralg.Workers() workers, no
// logging, and no metrics. The first call fixes the degree of parallelism
// for the rest of the program.
func Default() *Executor {
	defaultOnce.Do(func() {
		x, err := New()
		if err != nil {
			panic(err)
		}
		defaultExecutor = x
	})
	return defaultExecutor
}

// Workers returns the number of workers of x.
func (x *Executor) Workers() int {
	return x.group.Size()
}

func resolve(x *Executor) *Executor {
	if x == nil {
		return Default()
	}
	return x
}
