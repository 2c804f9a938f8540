// Package types provides core type definitions and interfaces shared by the
// ldm packages.
//
// Keeping these types in a separate package lets the root ldm package, the
// strategy package and the internal implementations depend on the same
// contracts without import cycles.
//
// Key types:
//   - Partition: Weighted unit of work handed to an AssignmentStrategy
//   - AssignmentStrategy: Splits partitions across workers
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
