// Package testutil provides shared assertion helpers and data generators for
// tests of the partitioner and the assignment strategy.
//
// Helpers work on plain slices and maps so that any package, including the
// root ldm package, can use them without an import cycle.
package testutil
