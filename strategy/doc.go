// Package strategy provides assignment strategies built on the largest
// differencing partitioner.
//
// LargestDifferencing implements types.AssignmentStrategy for one or two
// workers:
//
//   - One worker receives every partition
//   - Two workers receive the two groups produced by ldm.Partition over the
//     partition weights, so their total weights differ as little as the
//     heuristic allows
//   - More than two workers is rejected with ErrUnsupportedWorkerCount
//
// The result depends only on the set of workers and partitions, not on the
// order they are passed in. Recent results are kept in a small concurrent
// cache keyed by an xxh3 digest of the input.
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy
