// Package ldm splits a weighted multiset into two groups with the
// Karmarkar–Karp largest differencing method (LDM).
//
// The partitioner seeds a max-priority queue with one partial result per item
// and repeatedly merges the two partials that carry the largest size
// difference, placing the smaller one's groups on opposite sides of the
// larger one's. The last partial left is the answer. The method is a
// heuristic: it runs in O(n log n) and usually lands close to the optimum,
// but it does not guarantee the minimum difference.
//
// # Quick Start
//
//	items := []ldm.Item[string]{
//	    {Value: "a", Size: 8},
//	    {Value: "b", Size: 7},
//	    {Value: "c", Size: 6},
//	    {Value: "d", Size: 5},
//	    {Value: "e", Size: 4},
//	}
//
//	res := ldm.Partition(items)
//	// res.Group1 = [e b d], res.Group2 = [a c], res.Difference = 2
//
// # Values and sizes
//
// Item values are opaque: indices, pointers, strings or structs. The
// partitioner only regroups them and never inspects or copies what a pointer
// refers to. Equal values are distinct items. IndexItems builds index handles
// for callers that keep their data in a slice.
//
// # Ordering
//
// Partials are ordered by remaining difference, largest first. Ties go to the
// partial created first, so the output is fully deterministic and both queue
// backends (QueueHeap and QueueBTree) return identical results. Group1 is
// always the heavier-or-equal side: sum(Group1) - sum(Group2) == Difference.
//
// # Configuration
//
//	p := ldm.NewPartitioner[string](
//	    ldm.WithQueue(ldm.QueueBTree),
//	    ldm.WithLogger(ldm.NewSlogLogger(slog.Default())),
//	    ldm.WithMetrics(ldm.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")),
//	)
//	res := p.Partition(items)
//
// The strategy subpackage adapts the partitioner to split weighted work
// partitions between two workers.
package ldm
