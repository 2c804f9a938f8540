package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/connest/LDM/types"
)

const defaultNamespace = "ldm"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Partitioner metrics
	runs       prometheus.Counter
	items      prometheus.Histogram
	difference prometheus.Gauge
	runLatency prometheus.Histogram

	// Assignment metrics
	assignments   prometheus.Counter
	partitions    prometheus.Histogram
	imbalance     prometheus.Gauge
	assignLatency prometheus.Histogram
	cacheLookups  *prometheus.CounterVec
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "ldm" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runs = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "runs_total",
			Help:      "Total largest differencing runs.",
		})
		p.items = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "items",
			Help:      "Number of input items per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~262k
		})
		p.difference = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "difference",
			Help:      "Size difference between the two groups of the latest run.",
		})
		p.runLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "duration_seconds",
			Help:      "Latency of largest differencing runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		})

		p.assignments = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "total",
			Help:      "Total two-worker assignments computed.",
		})
		p.partitions = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "partitions",
			Help:      "Number of partitions per assignment.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		})
		p.imbalance = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "imbalance",
			Help:      "Weight difference between the two workers of the latest assignment.",
		})
		p.assignLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "duration_seconds",
			Help:      "Latency of assignment calculations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		})
		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "cache_lookups_total",
			Help:      "Assignment cache lookups by result (hit,miss).",
		}, []string{"result"})

		p.reg.MustRegister(p.runs)
		p.reg.MustRegister(p.items)
		p.reg.MustRegister(p.difference)
		p.reg.MustRegister(p.runLatency)
		p.reg.MustRegister(p.assignments)
		p.reg.MustRegister(p.partitions)
		p.reg.MustRegister(p.imbalance)
		p.reg.MustRegister(p.assignLatency)
		p.reg.MustRegister(p.cacheLookups)
	})
}

// PartitionerMetrics implementation

// RecordPartition counts a run and observes its size, result and latency.
func (p *PrometheusCollector) RecordPartition(items int, difference uint64, duration float64) {
	p.ensureRegistered()
	p.runs.Inc()
	p.items.Observe(float64(items))
	p.difference.Set(float64(difference))
	p.runLatency.Observe(duration)
}

// AssignmentMetrics implementation

// RecordAssignment counts an assignment and records its size, imbalance and latency.
func (p *PrometheusCollector) RecordAssignment(partitions int, imbalance uint64, duration float64) {
	p.ensureRegistered()
	p.assignments.Inc()
	p.partitions.Observe(float64(partitions))
	p.imbalance.Set(float64(imbalance))
	p.assignLatency.Observe(duration)
}

// RecordAssignmentCache counts a cache lookup under result="hit" or "miss".
func (p *PrometheusCollector) RecordAssignmentCache(hit bool) {
	p.ensureRegistered()
	if hit {
		p.cacheLookups.WithLabelValues("hit").Inc()
	} else {
		p.cacheLookups.WithLabelValues("miss").Inc()
	}
}
