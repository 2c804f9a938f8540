package ldm

// Item pairs a caller value with its size.
type Item[T any] struct {
	// Value is returned in one of the result groups, unchanged.
	Value T

	// Size is the item's weight.
	Size uint64
}

// Result is the outcome of a largest differencing run.
type Result[T any] struct {
	// Group1 is the heavier-or-equal side. Never nil.
	Group1 []T

	// Group2 is the lighter-or-equal side. Never nil.
	Group2 []T

	// Difference is sum(Group1) - sum(Group2).
	Difference uint64
}

// Swap returns the result with its groups exchanged.
//
// Difference is unchanged, but Group1 is then the lighter-or-equal side.
func (r Result[T]) Swap() Result[T] {
	return Result[T]{
		Group1:     r.Group2,
		Group2:     r.Group1,
		Difference: r.Difference,
	}
}

// Len returns the number of items across both groups.
func (r Result[T]) Len() int {
	return len(r.Group1) + len(r.Group2)
}

// NewItems pairs every value with the size reported by sizeOf.
//
// Parameters:
//   - values: Caller values in any order
//   - sizeOf: Size of a single value
//
// Returns:
//   - []Item[T]: One item per value, in input order
//
// Example:
//
//	items := ldm.NewItems(files, func(f *File) uint64 { return uint64(f.Bytes) })
func NewItems[T any](values []T, sizeOf func(T) uint64) []Item[T] {
	items := make([]Item[T], len(values))
	for i, v := range values {
		items[i] = Item[T]{Value: v, Size: sizeOf(v)}
	}

	return items
}

// IndexItems returns one item per size whose Value is the index into sizes.
//
// Use it when the caller's data lives in a slice: the result groups then hold
// indices into that slice.
func IndexItems(sizes []uint64) []Item[int] {
	items := make([]Item[int], len(sizes))
	for i, size := range sizes {
		items[i] = Item[int]{Value: i, Size: size}
	}

	return items
}
