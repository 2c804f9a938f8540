package testutil

import (
	"math/big"
	"testing"

	"github.com/connest/LDM/types"
)

// SumSizes returns the exact total size of the indexed items.
//
// The sum is a big.Int so inputs near math.MaxUint64 cannot overflow.
func SumSizes(sizes []uint64, indices []int) *big.Int {
	sum := new(big.Int)
	for _, idx := range indices {
		sum.Add(sum, new(big.Int).SetUint64(sizes[idx]))
	}

	return sum
}

// AssertIndexSplit verifies that group1 and group2 hold every index of sizes
// exactly once and that difference equals |sum(group1) - sum(group2)|.
//
// Parameters:
//   - t: testing handle
//   - sizes: item sizes, addressed by index
//   - group1, group2: index groups returned by the partitioner
//   - difference: reported difference
//
// Returns:
//   - *big.Int: signed sum(group1) - sum(group2)
func AssertIndexSplit(t testing.TB, sizes []uint64, group1, group2 []int, difference uint64) *big.Int {
	t.Helper()

	seen := make([]int, len(sizes))
	for _, group := range [][]int{group1, group2} {
		for _, idx := range group {
			if idx < 0 || idx >= len(sizes) {
				t.Fatalf("index %d out of range [0, %d)", idx, len(sizes))
			}
			seen[idx]++
		}
	}

	for idx, count := range seen {
		if count != 1 {
			t.Fatalf("item %d appears %d times across both groups", idx, count)
		}
	}

	signed := new(big.Int).Sub(SumSizes(sizes, group1), SumSizes(sizes, group2))
	abs := new(big.Int).Abs(signed)
	if !abs.IsUint64() || abs.Uint64() != difference {
		t.Fatalf("difference %d does not match |sum(group1) - sum(group2)| = %s", difference, abs)
	}

	return signed
}

// AssertAssignmentsConsistent verifies that the sum of assigned partitions across
// all workers equals the expected total and that no partition is assigned to more than one worker.
//
// Parameters:
//   - t: testing handle
//   - assignments: map of workerID -> slice of assigned partitions
//   - expectedTotal: expected total number of unique partitions across all workers
func AssertAssignmentsConsistent(t testing.TB, assignments map[string][]types.Partition, expectedTotal int) {
	t.Helper()

	seen := make(map[string]struct{}, expectedTotal)
	sum := 0
	for _, parts := range assignments {
		sum += len(parts)
		for _, p := range parts {
			key := p.SubjectKey()
			if _, ok := seen[key]; ok {
				t.Fatalf("duplicate partition detected: %s", key)
			}
			seen[key] = struct{}{}
		}
	}

	if sum != expectedTotal {
		t.Fatalf("sum of assignments (%d) does not equal expected total (%d)", sum, expectedTotal)
	}
	if len(seen) != expectedTotal {
		t.Fatalf("unique partition count (%d) does not equal expected total (%d)", len(seen), expectedTotal)
	}
}

// WorkerLoad sums partition weights, counting non-positive weights as defaultWeight.
func WorkerLoad(partitions []types.Partition, defaultWeight int64) int64 {
	var load int64
	for _, p := range partitions {
		if p.Weight > 0 {
			load += p.Weight
		} else {
			load += defaultWeight
		}
	}

	return load
}
