package ldm

import (
	"github.com/connest/LDM/internal/logging"
	"github.com/connest/LDM/internal/metrics"
	"github.com/connest/LDM/internal/pqueue"
)

// Option configures a Partitioner.
type Option func(*options)

type options struct {
	queue       QueueKind
	btreeDegree int
	logger      Logger
	metrics     MetricsCollector
}

func defaultOptions() options {
	return options{
		queue:       QueueHeap,
		btreeDegree: pqueue.DefaultBTreeDegree,
		logger:      logging.NewNop(),
		metrics:     metrics.NewNop(),
	}
}

// WithQueue selects the priority queue backend.
//
// Both backends produce identical results; QueueBTree trades a slightly
// higher constant factor for node-sized allocations on very large inputs.
//
// Parameters:
//   - kind: QueueHeap (default) or QueueBTree
//
// Returns:
//   - Option: Functional option for NewPartitioner
func WithQueue(kind QueueKind) Option {
	return func(o *options) {
		o.queue = kind
	}
}

// WithBTreeDegree sets the node degree of the QueueBTree backend.
//
// Parameters:
//   - degree: Node degree (values below 2 are replaced by the default of 32)
//
// Returns:
//   - Option: Functional option for NewPartitioner
func WithBTreeDegree(degree int) Option {
	return func(o *options) {
		o.btreeDegree = degree
	}
}

// WithLogger sets a logger.
//
// Each run logs one Debug line with the item count, difference, merge count
// and queue backend.
//
// Parameters:
//   - logger: Logger implementation (nil disables logging)
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	p := ldm.NewPartitioner[int](ldm.WithLogger(ldm.NewSlogLogger(slog.Default())))
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation (nil disables metrics)
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	p := ldm.NewPartitioner[int](ldm.WithMetrics(ldm.NewPrometheusMetrics(reg, "")))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithConfig applies the partitioner section of cfg.
//
// An unknown queue name is reported through the logger and replaced by
// QueueHeap; call Config.Validate first to reject it instead.
//
// Parameters:
//   - cfg: Configuration, typically from ParseConfig
//
// Returns:
//   - Option: Functional option for NewPartitioner
func WithConfig(cfg Config) Option {
	return func(o *options) {
		kind, err := pqueue.ParseKind(cfg.Queue)
		if err != nil {
			kind = QueueKind(cfg.Queue) // rejected by normalize
		}
		o.queue = kind
		if cfg.BTreeDegree != 0 {
			o.btreeDegree = cfg.BTreeDegree
		}
	}
}

func (o *options) normalize() {
	if o.logger == nil {
		o.logger = logging.NewNop()
	}

	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	if !o.queue.Valid() {
		o.logger.Warn("unknown queue kind; falling back to heap", "provided", o.queue.String(), "using", QueueHeap.String())
		o.queue = QueueHeap
	}

	if o.btreeDegree < 2 {
		o.logger.Warn("btree degree must be at least 2; using default", "provided", o.btreeDegree, "using", pqueue.DefaultBTreeDegree)
		o.btreeDegree = pqueue.DefaultBTreeDegree
	}
}
