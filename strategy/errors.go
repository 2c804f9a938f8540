package strategy

import "github.com/connest/LDM/types"

var (
	// ErrNoWorkers indicates that no workers were provided for assignment.
	ErrNoWorkers = types.ErrNoWorkersAvailable

	// ErrUnsupportedWorkerCount indicates that more than two distinct workers
	// were given to a strategy that splits partitions in two.
	ErrUnsupportedWorkerCount = types.ErrUnsupportedWorkerCount
)
