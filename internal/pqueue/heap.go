package pqueue

import "container/heap"

// Heap is a binary heap ordered by a less function.
type Heap[E any] struct {
	store heapStore[E]
}

var _ Queue[int] = (*Heap[int])(nil)

// NewHeap creates a heap that takes ownership of items and heapifies them in O(n).
func NewHeap[E any](less func(a, b E) bool, items []E) *Heap[E] {
	h := &Heap[E]{store: heapStore[E]{items: items, less: less}}
	heap.Init(&h.store)

	return h
}

// Push adds an element in O(log n).
func (h *Heap[E]) Push(e E) {
	heap.Push(&h.store, e)
}

// Pop removes the least element in O(log n).
func (h *Heap[E]) Pop() (E, bool) {
	if h.store.Len() == 0 {
		var zero E
		return zero, false
	}

	return heap.Pop(&h.store).(E), true //nolint:forcetypeassert // store only holds E
}

// Len returns the number of queued elements.
func (h *Heap[E]) Len() int {
	return h.store.Len()
}

// heapStore adapts a slice to heap.Interface.
type heapStore[E any] struct {
	items []E
	less  func(a, b E) bool
}

func (s *heapStore[E]) Len() int           { return len(s.items) }
func (s *heapStore[E]) Less(i, j int) bool { return s.less(s.items[i], s.items[j]) }
func (s *heapStore[E]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *heapStore[E]) Push(x any) {
	s.items = append(s.items, x.(E)) //nolint:forcetypeassert // only Heap.Push calls this
}

func (s *heapStore[E]) Pop() any {
	n := len(s.items) - 1
	e := s.items[n]

	// release the reference held by the backing array
	var zero E
	s.items[n] = zero
	s.items = s.items[:n]

	return e
}
