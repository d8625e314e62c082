package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// A PanicError is a panic recovered in a worker goroutine, together with the
// stack trace of that goroutine.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("worker panic: %v\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, isError := e.Value.(error); isError {
		return err
	}
	return nil
}

// IsRuntimeError reports whether the recovered value was a runtime.Error,
// such as an index out of range or a nil dereference.
func (e *PanicError) IsRuntimeError() bool {
	var rerr runtime.Error
	return errors.As(e.Unwrap(), &rerr)
}

// WrapPanic adds stack trace information to a recovered panic. It returns nil
// if p is nil.
func WrapPanic(p any) error {
	if p == nil {
		return nil
	}
	return &PanicError{Value: p, Stack: debug.Stack()}
}
