package ldm

import (
	"github.com/connest/LDM/internal/pqueue"
	"github.com/connest/LDM/types"
)

// Sentinel errors returned by configuration helpers.
//
// Partition itself never fails.
var (
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownQueue is returned when a queue backend name is not recognized.
	ErrUnknownQueue = pqueue.ErrUnknownKind
)
