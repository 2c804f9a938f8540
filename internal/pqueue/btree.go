package pqueue

import "github.com/google/btree"

// BTree is a priority queue backed by an ordered B-tree.
//
// The tree stores each distinct element once, so less must be a strict total
// order over the pushed elements: two elements that compare equal in both
// directions would replace each other.
type BTree[E any] struct {
	tree *btree.BTreeG[E]
}

var _ Queue[int] = (*BTree[int])(nil)

// NewBTree creates a B-tree queue seeded with items.
//
// Parameters:
//   - less: Strict total order
//   - items: Initial elements (may be nil)
//   - degree: Node degree (DefaultBTreeDegree if < 2)
//
// Returns:
//   - *BTree[E]: Seeded queue
func NewBTree[E any](less func(a, b E) bool, items []E, degree int) *BTree[E] {
	if degree < 2 {
		degree = DefaultBTreeDegree
	}

	tree := btree.NewG[E](degree, less)
	for _, e := range items {
		tree.ReplaceOrInsert(e)
	}

	return &BTree[E]{tree: tree}
}

// Push adds an element in O(log n).
func (b *BTree[E]) Push(e E) {
	b.tree.ReplaceOrInsert(e)
}

// Pop removes the least element in O(log n).
func (b *BTree[E]) Pop() (E, bool) {
	return b.tree.DeleteMin()
}

// Len returns the number of queued elements.
func (b *BTree[E]) Len() int {
	return b.tree.Len()
}
