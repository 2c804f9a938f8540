package ldm

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/connest/LDM/internal/logging"
	"github.com/connest/LDM/internal/metrics"
)

// NewSlogLogger returns a Logger writing through logger (slog.Default() if nil).
func NewSlogLogger(logger *slog.Logger) Logger {
	return logging.NewSlog(logger)
}

// NewZapLogger returns a Logger writing through the sugared logger's
// key-value methods (Debugw, Infow, ...).
func NewZapLogger(logger *zap.SugaredLogger) Logger {
	return logging.NewZap(logger)
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return logging.NewNop()
}

// NewPrometheusMetrics returns a MetricsCollector that registers its
// collectors with reg on first use.
//
// Parameters:
//   - reg: Registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("ldm" if empty)
//
// Returns:
//   - MetricsCollector: Prometheus-backed collector
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewNopMetrics returns a MetricsCollector that discards everything.
func NewNopMetrics() MetricsCollector {
	return metrics.NewNop()
}
