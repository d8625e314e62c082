// Package logging provides paralg.Logger implementations.
package logging

import (
	"log/slog"

	"github.com/exascience/paralg"
)

// NopLogger discards all log messages.
type NopLogger struct{}

var _ paralg.Logger = NopLogger{}

// NewNop returns a logger that discards all messages.
func NewNop() NopLogger { return NopLogger{} }

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// NewSlog returns a logger that writes to logger, tagging every record with
// the paralg component. If logger is nil, slog.Default() is used.
func NewSlog(logger *slog.Logger) paralg.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", "paralg")
}
