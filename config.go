package ldm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/connest/LDM/internal/pqueue"
)

// AssignmentConfig configures the two-worker assignment strategy.
type AssignmentConfig struct {
	// DefaultWeight replaces partition weights that are zero or negative.
	// Default: 1
	DefaultWeight int64 `yaml:"defaultWeight"`

	// CacheSize is the number of recent assignments kept for reuse.
	// The cache is cleared when it fills up.
	// Default: 128
	CacheSize int `yaml:"cacheSize"`

	// DisableCache turns the assignment cache off regardless of CacheSize.
	DisableCache bool `yaml:"disableCache"`

	// HashSeed seeds the xxh3 digest that keys the assignment cache.
	// Default: 0
	HashSeed uint64 `yaml:"hashSeed"`
}

// Config is the configuration for a Partitioner and the assignment strategy.
//
// Example YAML:
//
//	queue: btree
//	btreeDegree: 16
//	assignment:
//	  defaultWeight: 100
//	  cacheSize: 64
type Config struct {
	// Queue selects the priority queue backend: "heap" or "btree".
	// Default: "heap"
	Queue string `yaml:"queue"`

	// BTreeDegree is the node degree of the "btree" backend. Must be >= 2.
	// Default: 32
	BTreeDegree int `yaml:"btreeDegree"`

	// Assignment configures strategy.LargestDifferencing.
	Assignment AssignmentConfig `yaml:"assignment"`
}

const (
	defaultAssignmentWeight    = int64(1)
	defaultAssignmentCacheSize = 128
)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Queue:       QueueHeap.String(),
		BTreeDegree: pqueue.DefaultBTreeDegree,
		Assignment: AssignmentConfig{
			DefaultWeight: defaultAssignmentWeight,
			CacheSize:     defaultAssignmentCacheSize,
			HashSeed:      0,
		},
	}
}

// SetDefaults fills zero-valued fields of cfg with DefaultConfig values.
//
// Parameters:
//   - cfg: Configuration to update in place
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Queue == "" {
		cfg.Queue = defaults.Queue
	}
	if cfg.BTreeDegree == 0 {
		cfg.BTreeDegree = defaults.BTreeDegree
	}
	if cfg.Assignment.DefaultWeight == 0 {
		cfg.Assignment.DefaultWeight = defaults.Assignment.DefaultWeight
	}
	if cfg.Assignment.CacheSize == 0 {
		cfg.Assignment.CacheSize = defaults.Assignment.CacheSize
	}
}

// Validate checks that every field is within range.
//
// Call SetDefaults first; zero values are otherwise rejected.
//
// Returns:
//   - error: ErrUnknownQueue or ErrInvalidConfig wrapped with the offending field, nil if valid
func (cfg *Config) Validate() error {
	if _, err := pqueue.ParseKind(cfg.Queue); err != nil {
		return fmt.Errorf("queue: %w", err)
	}

	if cfg.BTreeDegree < 2 {
		return fmt.Errorf("%w: btreeDegree must be >= 2, got %d", ErrInvalidConfig, cfg.BTreeDegree)
	}

	if cfg.Assignment.DefaultWeight < 1 {
		return fmt.Errorf("%w: assignment.defaultWeight must be >= 1, got %d", ErrInvalidConfig, cfg.Assignment.DefaultWeight)
	}

	if cfg.Assignment.CacheSize < 0 {
		return fmt.Errorf("%w: assignment.cacheSize must be >= 0, got %d", ErrInvalidConfig, cfg.Assignment.CacheSize)
	}

	return nil
}

// ParseConfig decodes a YAML document, applies defaults and validates it.
//
// Unknown keys are rejected. Empty input yields DefaultConfig().
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Decoded configuration with defaults applied
//   - error: Decode or validation error wrapping ErrInvalidConfig or ErrUnknownQueue
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
