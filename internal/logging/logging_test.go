package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	logger.Debug("dispatch", "op", "count_if", "workers", 4)

	out := buf.String()
	require.Contains(t, out, "component=paralg")
	require.Contains(t, out, "op=count_if")
	require.Contains(t, out, "workers=4")
}

func TestNop(t *testing.T) {
	logger := NewNop()
	logger.Debug("ignored")
	logger.Error("ignored", "key", "value")
}
