// Package pqueue provides the priority queues that drive the largest
// differencing reduction.
//
// Two backends share one contract: a binary heap built on container/heap and
// an ordered B-tree built on github.com/google/btree. Given the same strict
// ordering both pop elements in exactly the same sequence.
package pqueue

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a queue backend.
type Kind string

const (
	// KindHeap is a binary heap (container/heap). It is the default.
	KindHeap Kind = "heap"

	// KindBTree is an in-memory B-tree (github.com/google/btree).
	KindBTree Kind = "btree"
)

// DefaultBTreeDegree is the degree used when one below 2 is supplied.
const DefaultBTreeDegree = 32

// ErrUnknownKind is returned by ParseKind for unrecognized backend names.
var ErrUnknownKind = errors.New("unknown queue kind")

// Queue is a priority queue over elements of type E.
//
// Pop always returns the element that is least under the queue's less
// function. Implementations are not safe for concurrent use.
type Queue[E any] interface {
	// Push adds an element.
	Push(e E)

	// Pop removes and returns the least element. ok is false when the queue is empty.
	Pop() (e E, ok bool)

	// Len returns the number of queued elements.
	Len() int
}

// Valid reports whether k names a known backend.
func (k Kind) Valid() bool {
	return k == KindHeap || k == KindBTree
}

// String returns the backend name.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a backend name into a Kind.
//
// Matching is case-insensitive and ignores surrounding spaces. The empty
// string selects KindHeap.
//
// Returns:
//   - Kind: Parsed backend
//   - error: ErrUnknownKind wrapped with the offending name
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return KindHeap, nil
	}

	k := Kind(name)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}

	return k, nil
}

// New builds a queue of the given kind seeded with items.
//
// The queue takes ownership of the items slice. Unknown kinds fall back to
// the heap backend. degree only applies to KindBTree.
//
// Parameters:
//   - kind: Backend to use
//   - less: Strict ordering; Pop returns the least element first
//   - items: Initial elements (may be nil)
//   - degree: B-tree degree (DefaultBTreeDegree if < 2)
//
// Returns:
//   - Queue[E]: Seeded queue
func New[E any](kind Kind, less func(a, b E) bool, items []E, degree int) Queue[E] {
	if kind == KindBTree {
		return NewBTree(less, items, degree)
	}

	return NewHeap(less, items)
}
