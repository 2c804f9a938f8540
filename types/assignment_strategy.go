package types

// AssignmentStrategy calculates partition assignments for a set of workers.
//
// Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Handle edge cases (no workers, no partitions, zero weights)
//   - Be safe for concurrent use
type AssignmentStrategy interface {
	// Assign calculates partition assignments for the given workers.
	//
	// Parameters:
	//   - workers: List of worker IDs to assign partitions to
	//   - partitions: List of partitions to assign
	//
	// Returns:
	//   - map[string][]Partition: Map from workerID to assigned partitions
	//   - error: Assignment error (e.g., ErrNoWorkersAvailable)
	Assign(workers []string, partitions []Partition) (map[string][]Partition, error)
}
