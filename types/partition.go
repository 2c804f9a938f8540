package types

import (
	"strings"

	"github.com/zeebo/xxh3"
)

// Partition represents a logical work partition.
//
// A partition is the unit of work assignment. Each partition can contain
// multiple keys and has an associated weight used as its size when the
// largest differencing strategy balances workers.
type Partition struct {
	// Keys uniquely identify this partition.
	// For Kafka: ["topic", "partition_id"]
	Keys []string `json:"keys" yaml:"keys"`

	// Weight represents the relative processing cost.
	// Non-positive weights are replaced by the strategy's default weight.
	Weight int64 `json:"weight" yaml:"weight"`
}

// SubjectKey returns the canonical subject identifier for the partition formed by
// joining the Keys with a dot (".").
//
// Returns:
//   - string: Dot-joined key sequence ("" if no keys)
func (p Partition) SubjectKey() string {
	if len(p.Keys) == 0 {
		return ""
	}

	return strings.Join(p.Keys, ".")
}

// ID returns the canonical identifier for the partition by joining the Keys
// with a dash ("-").
//
// Returns:
//   - string: Dash-joined key sequence ("" if no keys)
func (p Partition) ID() string {
	if len(p.Keys) == 0 {
		return ""
	}

	return strings.Join(p.Keys, "-")
}

// HashID returns the unseeded 64-bit identity hash of the partition keys.
//
// Returns:
//   - uint64: Hash of the key sequence (0 if no keys)
func (p Partition) HashID() uint64 {
	return p.HashIDSeed(0)
}

// HashIDSeed folds every key into a single xxh3 hash, using the running hash
// as the seed of the next key. No joined string is built, and key boundaries
// stay significant: ["ab","c"] and ["a","bc"] hash differently.
//
// Parameters:
//   - seed: Initial seed (0 gives the same value as HashID)
//
// Returns:
//   - uint64: Hash of the key sequence (0 if no keys)
func (p Partition) HashIDSeed(seed uint64) uint64 {
	if len(p.Keys) == 0 {
		return 0
	}

	h := seed
	for _, key := range p.Keys {
		h = xxh3.HashStringSeed(key, h)
	}

	return h
}

// Compare performs a lexicographic comparison of partition key sequences.
//
// Ordering rules:
//   - Compare Keys element-wise using string order
//   - If all shared elements are equal, the shorter Keys slice sorts first
//   - Returns 0 when both key sequences are identical (weight is not considered)
//
// Returns:
//   - int: -1 if p < q, 0 if equal, +1 if p > q
func (p Partition) Compare(q Partition) int {
	al, bl := len(p.Keys), len(q.Keys)
	n := min(bl, al)

	for i := range n {
		if p.Keys[i] == q.Keys[i] {
			continue
		}
		if p.Keys[i] < q.Keys[i] {
			return -1
		}

		return 1
	}
	if al == bl {
		return 0
	}
	if al < bl {
		return -1
	}

	return 1
}
