package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedSlog(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := newBufferedSlog(slog.LevelDebug)

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlog_NilFallsBackToDefault(t *testing.T) {
	logger := NewSlog(nil)

	require.NotNil(t, logger.logger)
	require.NotPanics(t, func() { logger.Debug("partition complete") })
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		msg   string
		field string
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug("partition complete", "items", 5) }, "partition complete", "items=5", "level=DEBUG"},
		{"info", func(l *SlogLogger) { l.Info("assignment computed", "worker", "w-1") }, "assignment computed", "worker=w-1", "level=INFO"},
		{"warn", func(l *SlogLogger) { l.Warn("btree degree too low", "provided", 1) }, "btree degree too low", "provided=1", "level=WARN"},
		{"error", func(l *SlogLogger) { l.Error("assignment failed", "error", "no workers") }, "assignment failed", `error="no workers"`, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedSlog(slog.LevelDebug)

			tt.log(logger)

			output := buf.String()
			assert.Contains(t, output, tt.msg)
			assert.Contains(t, output, tt.field)
			assert.Contains(t, output, tt.level)
		})
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedSlog(slog.LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")

	logger.Warn("warn message")
	logger.Error("error message")

	output = buf.String()
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSlogLogger_MultipleKeyValues(t *testing.T) {
	logger, buf := newBufferedSlog(slog.LevelInfo)

	logger.Info("partition complete",
		"items", 8,
		"difference", 0,
		"merges", 7,
		"queue", "heap")

	output := buf.String()
	assert.Contains(t, output, "partition complete")
	assert.Contains(t, output, "items=8")
	assert.Contains(t, output, "difference=0")
	assert.Contains(t, output, "merges=7")
	assert.Contains(t, output, "queue=heap")
}
