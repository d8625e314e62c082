package paralg

import "errors"

// Sentinel errors returned by the operations of this module.
var (
	// ErrInvalidRange is returned when a range, or a sub-range of it, does not
	// describe a valid half-open sequence of elements.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOutputTooShort is returned when an output range, or a second input
	// range, has fewer elements than the operation needs to read or write.
	ErrOutputTooShort = errors.New("output range too short")

	// ErrNegativeCount is returned when a size-bounded operation receives a
	// negative element count.
	ErrNegativeCount = errors.New("negative element count")

	// ErrNotReversible is returned when a reversed view is requested for a
	// sequential range that cannot step backwards.
	ErrNotReversible = errors.New("range is not reversible")

	// ErrInvalidWorkers is returned for a degree of parallelism below 1.
	ErrInvalidWorkers = errors.New("invalid number of workers")

	// ErrWorkersFrozen is returned when the process-wide degree of parallelism
	// is changed after it was already set or read.
	ErrWorkersFrozen = errors.New("number of workers already fixed")
)
