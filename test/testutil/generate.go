package testutil

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/connest/LDM/types"
)

// RandomSizes returns n sizes drawn uniformly from [0, maxSize].
func RandomSizes(rng *rand.Rand, n int, maxSize uint64) []uint64 {
	sizes := make([]uint64, n)
	for i := range sizes {
		if maxSize == math.MaxUint64 {
			sizes[i] = rng.Uint64()
		} else {
			sizes[i] = rng.Uint64() % (maxSize + 1)
		}
	}

	return sizes
}

// GeneratePartitions creates n partitions with deterministic keys.
//
// weightPattern selects the weights:
//   - "equal": every partition weighs 100
//   - "skew-10": every tenth partition weighs 500, the rest 100
//   - "random": weights drawn from [50, 200] using rng
func GeneratePartitions(rng *rand.Rand, n int, weightPattern string) []types.Partition {
	parts := make([]types.Partition, n)
	for i := range n {
		w := int64(100)
		switch weightPattern {
		case "skew-10":
			if i%10 == 0 {
				w = 500
			}
		case "random":
			w = int64(50 + rng.Intn(151))
		default:
			// equal weights
		}
		parts[i] = types.Partition{
			Keys:   []string{"topic", "p", strconv.Itoa(i)},
			Weight: w,
		}
	}

	return parts
}
