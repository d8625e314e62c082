package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapPanic(t *testing.T) {
	if WrapPanic(nil) != nil {
		t.Error("expected nil for nil panic value")
	}

	sentinel := errors.New("boom")
	err := WrapPanic(sentinel)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected panic value in message, got %q", err.Error())
	}

	var perr *PanicError
	if !errors.As(WrapPanic("text"), &perr) || perr.Value != "text" || perr.Unwrap() != nil {
		t.Errorf("unexpected panic error %#v", perr)
	}
}

func TestWrapPanicRuntimeError(t *testing.T) {
	var err error
	func() {
		defer func() { err = WrapPanic(recover()) }()
		var s []int
		_ = s[3]
	}()
	var perr *PanicError
	if !errors.As(err, &perr) || !perr.IsRuntimeError() {
		t.Errorf("expected runtime error, got %v", err)
	}
}
