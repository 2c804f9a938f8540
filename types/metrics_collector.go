package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Partitioners and strategies may be shared between goroutines, so all
// methods must be thread-safe.
type MetricsCollector interface {
	PartitionerMetrics
	AssignmentMetrics
}

// PartitionerMetrics defines metrics for largest differencing runs.
type PartitionerMetrics interface {
	// RecordPartition records one completed partition run.
	//
	// Parameters:
	//   - items: Number of input items
	//   - difference: Final size difference between the two groups
	//   - duration: Time taken in seconds
	RecordPartition(items int, difference uint64, duration float64)
}

// AssignmentMetrics defines metrics for partition assignment operations.
type AssignmentMetrics interface {
	// RecordAssignment records a computed two-worker assignment.
	//
	// Parameters:
	//   - partitions: Number of partitions assigned
	//   - imbalance: Weight difference between the two workers
	//   - duration: Time taken in seconds
	RecordAssignment(partitions int, imbalance uint64, duration float64)

	// RecordAssignmentCache records an assignment cache lookup.
	//
	// Parameters:
	//   - hit: true if a cached assignment was reused
	RecordAssignmentCache(hit bool)
}
