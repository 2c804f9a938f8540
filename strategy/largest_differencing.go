package strategy

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	ldm "github.com/connest/LDM"
	"github.com/connest/LDM/internal/hash"
	"github.com/connest/LDM/internal/logging"
	"github.com/connest/LDM/internal/metrics"
	"github.com/connest/LDM/types"
)

const (
	defaultWeight    = int64(1)
	defaultCacheSize = 128
	maxWorkers       = 2
)

// LargestDifferencing splits partitions between two workers so that their
// total weights are as close as the largest differencing method gets them.
type LargestDifferencing struct {
	defaultWeight   int64
	cacheSize       int
	hashSeed        uint64
	logger          types.Logger
	metrics         types.MetricsCollector
	partitionerOpts []ldm.Option

	partitioner *ldm.Partitioner[int]
	cache       *xsync.Map[uint64, *cachedAssignment]
}

var _ types.AssignmentStrategy = (*LargestDifferencing)(nil)

// LargestDifferencingOption configures a LargestDifferencing strategy.
type LargestDifferencingOption func(*LargestDifferencing)

// cachedAssignment is a cache entry. It keeps its own copy of the input so a
// digest collision is detected instead of served.
type cachedAssignment struct {
	workers     []string
	partitions  []types.Partition
	assignments map[string][]types.Partition
	imbalance   uint64
}

// NewLargestDifferencing creates a new largest differencing strategy.
//
// Parameters:
//   - opts: Optional configuration (WithLDMDefaultWeight, WithLDMCacheSize, WithLDMHashSeed, WithLDMLogger, WithLDMMetrics, WithLDMPartitionerOptions)
//
// Returns:
//   - *LargestDifferencing: Initialized strategy, safe for concurrent use
//
// Example:
//
//	s := strategy.NewLargestDifferencing(strategy.WithLDMDefaultWeight(10))
//	assignments, err := s.Assign([]string{"worker-0", "worker-1"}, partitions)
func NewLargestDifferencing(opts ...LargestDifferencingOption) *LargestDifferencing {
	ld := &LargestDifferencing{
		defaultWeight: defaultWeight,
		cacheSize:     defaultCacheSize,
		hashSeed:      0,
		logger:        logging.NewNop(),
		metrics:       metrics.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(ld)
		}
	}

	ld.normalizeConfig()

	partitionerOpts := append([]ldm.Option{ldm.WithLogger(ld.logger), ldm.WithMetrics(ld.metrics)}, ld.partitionerOpts...)
	ld.partitioner = ldm.NewPartitioner[int](partitionerOpts...)
	ld.cache = xsync.NewMap[uint64, *cachedAssignment]()

	return ld
}

// NewLargestDifferencingFromConfig creates a strategy from the assignment
// section of cfg. Zero-valued fields take their defaults; opts are applied
// after the configuration and override it.
//
// Parameters:
//   - cfg: Configuration, typically from ldm.ParseConfig
//   - opts: Additional options
//
// Returns:
//   - *LargestDifferencing: Initialized strategy
func NewLargestDifferencingFromConfig(cfg ldm.Config, opts ...LargestDifferencingOption) *LargestDifferencing {
	ldm.SetDefaults(&cfg)

	cacheSize := cfg.Assignment.CacheSize
	if cfg.Assignment.DisableCache {
		cacheSize = 0
	}

	base := []LargestDifferencingOption{
		WithLDMDefaultWeight(cfg.Assignment.DefaultWeight),
		WithLDMCacheSize(cacheSize),
		WithLDMHashSeed(cfg.Assignment.HashSeed),
		WithLDMPartitionerOptions(ldm.WithConfig(cfg)),
	}

	return NewLargestDifferencing(append(base, opts...)...)
}

// WithLDMDefaultWeight sets the weight used for partitions reporting a zero
// or negative weight.
func WithLDMDefaultWeight(weight int64) LargestDifferencingOption {
	return func(ld *LargestDifferencing) {
		ld.defaultWeight = weight
	}
}

// WithLDMCacheSize sets how many recent assignments are kept. 0 disables the cache.
func WithLDMCacheSize(size int) LargestDifferencingOption {
	return func(ld *LargestDifferencing) {
		ld.cacheSize = size
	}
}

// WithLDMHashSeed sets the seed of the digest that keys the cache.
func WithLDMHashSeed(seed uint64) LargestDifferencingOption {
	return func(ld *LargestDifferencing) {
		ld.hashSeed = seed
	}
}

// WithLDMLogger sets the logger used for configuration warnings and debug diagnostics.
func WithLDMLogger(logger types.Logger) LargestDifferencingOption {
	return func(ld *LargestDifferencing) {
		ld.logger = logger
	}
}

// WithLDMMetrics sets the collector receiving assignment and partition metrics.
func WithLDMMetrics(collector types.MetricsCollector) LargestDifferencingOption {
	return func(ld *LargestDifferencing) {
		ld.metrics = collector
	}
}

// WithLDMPartitionerOptions passes options to the underlying ldm.Partitioner.
// They are applied after the strategy's logger and metrics.
func WithLDMPartitionerOptions(opts ...ldm.Option) LargestDifferencingOption {
	return func(ld *LargestDifferencing) {
		ld.partitionerOpts = append(ld.partitionerOpts, opts...)
	}
}

// Assign calculates partition assignments with the largest differencing method.
//
// The algorithm:
//  1. Deduplicate and sort workers; reject more than two
//  2. Sort partitions by key so discovery order does not matter
//  3. Return a cached result for the same input if one exists
//  4. One worker: assign everything to it
//  5. Two workers: split the partitions by effective weight; the first worker
//     gets the heavier-or-equal group
//
// Parameters:
//   - workers: One or two worker IDs (duplicates are ignored)
//   - partitions: Partitions to distribute
//
// Returns:
//   - map[string][]types.Partition: Worker ID → assigned partitions (never nil per worker)
//   - error: ErrNoWorkers or ErrUnsupportedWorkerCount, nil otherwise
//
// Example:
//
//	assignments, err := s.Assign([]string{"worker-0", "worker-1"}, []types.Partition{
//	    {Keys: []string{"orders", "0"}, Weight: 80},
//	    {Keys: []string{"orders", "1"}, Weight: 50},
//	    {Keys: []string{"orders", "2"}, Weight: 30},
//	})
//	// worker-0: orders.1 and orders.2, worker-1: orders.0
func (ld *LargestDifferencing) Assign(workers []string, partitions []types.Partition) (map[string][]types.Partition, error) {
	start := time.Now()

	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}

	sortedWorkers := uniqueSorted(workers)
	if len(sortedWorkers) > maxWorkers {
		return nil, fmt.Errorf("%w: largest differencing assigns to at most %d workers, got %d",
			ErrUnsupportedWorkerCount, maxWorkers, len(sortedWorkers))
	}

	sorted := slices.Clone(partitions)
	slices.SortStableFunc(sorted, types.Partition.Compare)

	var key uint64
	if ld.cacheSize > 0 {
		key = ld.digest(sortedWorkers, sorted)
		if cached, ok := ld.cache.Load(key); ok && cached.matches(sortedWorkers, sorted) {
			ld.metrics.RecordAssignmentCache(true)
			ld.metrics.RecordAssignment(len(partitions), cached.imbalance, time.Since(start).Seconds())

			return cloneAssignments(cached.assignments), nil
		}
		ld.metrics.RecordAssignmentCache(false)
	}

	assignments, imbalance := ld.split(sortedWorkers, sorted)

	if ld.cacheSize > 0 {
		ld.store(key, sortedWorkers, sorted, assignments, imbalance)
	}

	ld.metrics.RecordAssignment(len(partitions), imbalance, time.Since(start).Seconds())
	ld.logger.Debug(
		"largest differencing assignment complete",
		"workers", len(sortedWorkers),
		"partitions", len(partitions),
		"imbalance", imbalance,
	)

	return assignments, nil
}

func (ld *LargestDifferencing) split(workers []string, sorted []types.Partition) (map[string][]types.Partition, uint64) {
	assignments := make(map[string][]types.Partition, len(workers))
	for _, worker := range workers {
		assignments[worker] = []types.Partition{}
	}

	weights := make([]uint64, len(sorted))
	for i, partition := range sorted {
		weights[i] = uint64(ld.effectiveWeight(partition.Weight)) //nolint:gosec // G115: effective weight is >= 1
	}

	if len(workers) == 1 {
		assignments[workers[0]] = append(assignments[workers[0]], sorted...)

		return assignments, saturatingSum(weights)
	}

	res := ld.partitioner.Partition(ldm.IndexItems(weights))
	slices.Sort(res.Group1)
	slices.Sort(res.Group2)

	for i, group := range [][]int{res.Group1, res.Group2} {
		worker := workers[i]
		for _, idx := range group {
			assignments[worker] = append(assignments[worker], sorted[idx])
		}
	}

	return assignments, res.Difference
}

func (ld *LargestDifferencing) effectiveWeight(weight int64) int64 {
	if weight <= 0 {
		return ld.defaultWeight
	}

	return weight
}

func (ld *LargestDifferencing) digest(workers []string, sorted []types.Partition) uint64 {
	d := hash.NewDigest(ld.hashSeed)

	d.AddUint64(uint64(len(workers)))
	for _, worker := range workers {
		d.AddString(worker)
	}

	d.AddUint64(uint64(len(sorted)))
	for _, partition := range sorted {
		d.AddUint64(uint64(len(partition.Keys)))
		d.AddUint64(partition.HashIDSeed(ld.hashSeed))
		d.AddUint64(uint64(partition.Weight)) //nolint:gosec // G115: bit pattern only
	}

	return d.Sum64()
}

func (ld *LargestDifferencing) store(key uint64, workers []string, sorted []types.Partition, assignments map[string][]types.Partition, imbalance uint64) {
	if ld.cache.Size() >= ld.cacheSize {
		ld.cache.Clear()
		ld.logger.Debug("largest differencing cache full; cleared", "cache_size", ld.cacheSize)
	}

	ld.cache.Store(key, &cachedAssignment{
		workers:     workers,
		partitions:  clonePartitions(sorted),
		assignments: cloneAssignments(assignments),
		imbalance:   imbalance,
	})
}

func (ld *LargestDifferencing) normalizeConfig() {
	if ld.logger == nil {
		ld.logger = logging.NewNop()
	}

	if ld.metrics == nil {
		ld.metrics = metrics.NewNop()
	}

	if ld.defaultWeight < 1 {
		ld.logger.Warn("default weight must be positive; clamping to 1", "provided", ld.defaultWeight, "using", 1)
		ld.defaultWeight = 1
	}

	if ld.cacheSize < 0 {
		ld.logger.Warn("cache size must not be negative; disabling cache", "provided", ld.cacheSize, "using", 0)
		ld.cacheSize = 0
	}
}

func (c *cachedAssignment) matches(workers []string, sorted []types.Partition) bool {
	return slices.Equal(c.workers, workers) &&
		slices.EqualFunc(c.partitions, sorted, func(a, b types.Partition) bool {
			return a.Weight == b.Weight && slices.Equal(a.Keys, b.Keys)
		})
}

func uniqueSorted(workers []string) []string {
	sorted := slices.Clone(workers)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}

func clonePartitions(partitions []types.Partition) []types.Partition {
	out := make([]types.Partition, len(partitions))
	for i, partition := range partitions {
		out[i] = types.Partition{Keys: slices.Clone(partition.Keys), Weight: partition.Weight}
	}

	return out
}

func cloneAssignments(assignments map[string][]types.Partition) map[string][]types.Partition {
	out := make(map[string][]types.Partition, len(assignments))
	for worker, partitions := range assignments {
		out[worker] = clonePartitions(partitions)
	}

	return out
}

func saturatingSum(values []uint64) uint64 {
	var sum uint64
	for _, v := range values {
		if sum > math.MaxUint64-v {
			return math.MaxUint64
		}
		sum += v
	}

	return sum
}
