// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/connest/LDM/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default collector of partitioners and
// strategies when none is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	p := ldm.NewPartitioner[string](ldm.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PartitionerMetrics implementation

// RecordPartition discards the partition run metric.
func (n *NopMetrics) RecordPartition(_ /* items */ int, _ /* difference */ uint64, _ /* duration */ float64) {
	// No-op
}

// AssignmentMetrics implementation

// RecordAssignment discards the assignment metric.
func (n *NopMetrics) RecordAssignment(_ /* partitions */ int, _ /* imbalance */ uint64, _ /* duration */ float64) {
	// No-op
}

// RecordAssignmentCache discards the cache lookup metric.
func (n *NopMetrics) RecordAssignmentCache(_ /* hit */ bool) {
	// No-op
}
