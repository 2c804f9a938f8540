package ldm

import (
	"github.com/connest/LDM/internal/pqueue"
	"github.com/connest/LDM/types"
)

// Re-export types from the types package so callers of the root package can
// configure a Partitioner without importing it directly.
type (
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// QueueKind names the priority queue backend of a Partitioner.
type QueueKind = pqueue.Kind

// Queue backends.
const (
	QueueHeap  = pqueue.KindHeap
	QueueBTree = pqueue.KindBTree
)

// ParseQueueKind converts a backend name ("heap", "btree") into a QueueKind.
// The empty string selects QueueHeap.
func ParseQueueKind(s string) (QueueKind, error) {
	return pqueue.ParseKind(s)
}
