package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_StructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZap(zap.New(core).Sugar())

	logger.Debug("partition complete", "items", 5, "difference", uint64(2))
	logger.Info("assignment computed", "partitions", 3)
	logger.Warn("default weight must be positive", "provided", int64(0))
	logger.Error("assignment failed", "workers", 3)

	entries := logs.All()
	require.Len(t, entries, 4)

	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "partition complete", entries[0].Message)
	require.Equal(t, map[string]any{"items": int64(5), "difference": uint64(2)}, entries[0].ContextMap())

	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	require.Equal(t, int64(3), entries[3].ContextMap()["workers"])
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := NewZap(zap.New(core).Sugar())

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "shown", logs.All()[0].Message)
}

func TestNewZap_NilUsesNop(t *testing.T) {
	logger := NewZap(nil)

	require.NotNil(t, logger.logger)
	require.NotPanics(t, func() {
		logger.Debug("discarded", "k", "v")
		logger.Error("discarded")
	})
}
