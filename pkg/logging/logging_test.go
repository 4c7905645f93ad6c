package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewHandler_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelWarn))

	logger.Info("Bill committed", "bill_id", "bill_1")
	assert.Empty(t, buf.String())

	logger.Warn("Bill recorded but stock decrement failed", "bill_id", "bill_1")
	assert.Contains(t, buf.String(), "Bill recorded but stock decrement failed")
	assert.Contains(t, buf.String(), "bill_id=bill_1")
	// Not a terminal, so no ANSI escapes.
	assert.NotContains(t, buf.String(), "\x1b[")
}
