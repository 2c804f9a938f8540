// Package hash provides xxh3-based fingerprints used to key assignment caches.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Digest folds a sequence of strings and integers into a single 64-bit hash.
//
// Each value is hashed with the running digest as its seed, so the order of
// values and the boundaries between them both change the result.
type Digest struct {
	h uint64
}

// NewDigest creates a digest starting from seed.
//
// Parameters:
//   - seed: Initial seed (0 for the unseeded digest)
//
// Returns:
//   - *Digest: Empty digest
//
// Example:
//
//	d := hash.NewDigest(0)
//	d.AddString("worker-0")
//	d.AddUint64(42)
//	key := d.Sum64()
func NewDigest(seed uint64) *Digest {
	return &Digest{h: seed}
}

// AddString folds s into the digest.
func (d *Digest) AddString(s string) {
	d.h = xxh3.HashStringSeed(s, d.h)
}

// AddUint64 folds v into the digest as 8 little-endian bytes.
func (d *Digest) AddUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	d.h = xxh3.HashSeed(b[:], d.h)
}

// Sum64 returns the current digest value. Adding more values afterwards
// continues from it.
func (d *Digest) Sum64() uint64 {
	return d.h
}
