package paralg

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/exascience/paralg/internal"
)

// A Logger receives structured log messages with optional key-value pairs.
//
// *slog.Logger satisfies this interface.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// A PanicError is returned by an operation when one of its workers panicked.
// It carries the recovered value and the stack of the panicking goroutine.
type PanicError = internal.PanicError

var workers struct {
	sync.Mutex
	n      int
	frozen bool
}

/*
Workers returns the process-wide degree of parallelism.

On first use it is determined from runtime.GOMAXPROCS(0), unless SetWorkers or
Configure was called before. The returned value is at least 1, and does not
change anymore once Workers has been called.
*/
func Workers() int {
	workers.Lock()
	defer workers.Unlock()
	if !workers.frozen {
		if workers.n == 0 {
			workers.n = DefaultWorkers()
		}
		workers.frozen = true
	}
	return workers.n
}

// DefaultWorkers returns the number of logical CPUs usable by the current
// process, as reported by runtime.GOMAXPROCS(0), with a minimum of 1.
func DefaultWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 1 {
		return n
	}
	return 1
}

/*
SetWorkers overrides the process-wide degree of parallelism.

It succeeds at most once, and only before the first call of Workers. A value
of 0 selects DefaultWorkers. SetWorkers returns ErrWorkersFrozen if the value
was already set or read, and ErrInvalidWorkers if n is negative.
*/
func SetWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
	}
	workers.Lock()
	defer workers.Unlock()
	if workers.frozen {
		return ErrWorkersFrozen
	}
	if n == 0 {
		n = DefaultWorkers()
	}
	workers.n = n
	workers.frozen = true
	return nil
}
