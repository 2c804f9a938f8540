package logging

import (
	"go.uber.org/zap"

	"github.com/connest/LDM/types"
)

// ZapLogger implements types.Logger on top of a zap.SugaredLogger.
//
// The key-value calling convention maps onto the sugared "w" methods, so
// fields stay structured instead of being concatenated into the message.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

var _ types.Logger = (*ZapLogger)(nil)

// NewZap wraps a sugared zap logger.
//
// Parameters:
//   - logger: The sugared logger to write to (a no-op logger if nil)
//
// Returns:
//   - *ZapLogger: Logger adapter
//
// Example:
//
//	base, _ := zap.NewProduction()
//	p := ldm.NewPartitioner[int](ldm.WithLogger(logging.NewZap(base.Sugar())))
func NewZap(logger *zap.SugaredLogger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &ZapLogger{logger: logger}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits through zap.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Fatalw(msg, keysAndValues...)
}
