package ldm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "heap", cfg.Queue)
	require.Equal(t, 32, cfg.BTreeDegree)
	require.Equal(t, int64(1), cfg.Assignment.DefaultWeight)
	require.Equal(t, 128, cfg.Assignment.CacheSize)
	require.False(t, cfg.Assignment.DisableCache)
	require.Zero(t, cfg.Assignment.HashSeed)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Queue:       "btree",
			BTreeDegree: 8,
			Assignment: AssignmentConfig{
				DefaultWeight: 50,
				CacheSize:     16,
				DisableCache:  true,
				HashSeed:      7,
			},
		}
		want := cfg

		SetDefaults(&cfg)

		require.Equal(t, want, cfg)
	})

	t.Run("applies partial defaults", func(t *testing.T) {
		cfg := Config{Queue: "btree"}
		SetDefaults(&cfg)

		require.Equal(t, "btree", cfg.Queue)
		require.Equal(t, 32, cfg.BTreeDegree)
		require.Equal(t, int64(1), cfg.Assignment.DefaultWeight)
		require.Equal(t, 128, cfg.Assignment.CacheSize)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid defaults", func(*Config) {}, nil},
		{"btree mixed case", func(c *Config) { c.Queue = " BTree " }, nil},
		{"unknown queue", func(c *Config) { c.Queue = "skiplist" }, ErrUnknownQueue},
		{"degree too small", func(c *Config) { c.BTreeDegree = 1 }, ErrInvalidConfig},
		{"zero weight", func(c *Config) { c.Assignment.DefaultWeight = 0 }, ErrInvalidConfig},
		{"negative weight", func(c *Config) { c.Assignment.DefaultWeight = -3 }, ErrInvalidConfig},
		{"negative cache size", func(c *Config) { c.Assignment.CacheSize = -1 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		doc := `
queue: btree
btreeDegree: 16
assignment:
  defaultWeight: 100
  cacheSize: 64
  disableCache: true
  hashSeed: 42
`
		cfg, err := ParseConfig([]byte(doc))
		require.NoError(t, err)

		require.Equal(t, Config{
			Queue:       "btree",
			BTreeDegree: 16,
			Assignment: AssignmentConfig{
				DefaultWeight: 100,
				CacheSize:     64,
				DisableCache:  true,
				HashSeed:      42,
			},
		}, cfg)
	})

	t.Run("partial document gets defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("assignment:\n  cacheSize: 4\n"))
		require.NoError(t, err)

		require.Equal(t, "heap", cfg.Queue)
		require.Equal(t, 32, cfg.BTreeDegree)
		require.Equal(t, int64(1), cfg.Assignment.DefaultWeight)
		require.Equal(t, 4, cfg.Assignment.CacheSize)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseConfig([]byte("queue: heap\nworkers: 3\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("queue: [heap"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown queue", func(t *testing.T) {
		_, err := ParseConfig([]byte("queue: fibonacci\n"))
		require.ErrorIs(t, err, ErrUnknownQueue)
	})

	t.Run("out of range value", func(t *testing.T) {
		_, err := ParseConfig([]byte("btreeDegree: 1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Queue = "btree"
	cfg.Assignment.HashSeed = 9

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.Contains(t, string(data), "btreeDegree: 32")
	require.Contains(t, string(data), "hashSeed: 9")

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	require.Equal(t, cfg, parsed)
}
