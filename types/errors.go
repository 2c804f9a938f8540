package types

import "errors"

// Sentinel errors shared across ldm packages.
//
// Callers match them with errors.Is. Components wrap them with context using
// fmt.Errorf("%s: %w", msg, err).
var (
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoWorkersAvailable is returned when trying to assign partitions with no workers.
	ErrNoWorkersAvailable = errors.New("no workers available")

	// ErrUnsupportedWorkerCount is returned when a strategy that splits work in
	// two is given more than two workers.
	ErrUnsupportedWorkerCount = errors.New("unsupported worker count")
)
