package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" trace ": LevelTrace,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewLoggerFiltersAndLabelsTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)
	logger.Debug("hidden")
	logger.Info("shown", "model_id", "m1")
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "model_id=m1")

	buf.Reset()
	logger = NewLogger("trace", &buf)
	logger.Log(context.Background(), LevelTrace, "step detail")
	require.True(t, strings.Contains(buf.String(), "level=TRACE"), buf.String())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
