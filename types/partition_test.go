package types

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"
)

func TestPartitionSubjectKey(t *testing.T) {
	t.Parallel()

	// single-case direct test
	p := Partition{Keys: []string{"topic", "p", "42"}}
	require.Equal(t, "topic.p.42", p.SubjectKey())

	// empty keys
	p2 := Partition{}
	require.Equal(t, "", p2.SubjectKey())
}

func TestPartitionID(t *testing.T) {
	t.Parallel()

	p := Partition{Keys: []string{"topic", "p", "42"}}
	require.Equal(t, "topic-p-42", p.ID())

	p2 := Partition{}
	require.Equal(t, "", p2.ID())
}

func TestPartitionCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a    Partition
		b    Partition
		want int
	}{
		{Partition{Keys: []string{"a"}}, Partition{Keys: []string{"a"}}, 0},
		{Partition{Keys: []string{"a"}}, Partition{Keys: []string{"b"}}, -1},
		{Partition{Keys: []string{"b"}}, Partition{Keys: []string{"a"}}, 1},
		{Partition{Keys: []string{"a"}}, Partition{Keys: []string{"a", "x"}}, -1},
		{Partition{Keys: []string{"a", "x"}}, Partition{Keys: []string{"a"}}, 1},
		{Partition{Keys: []string{"a", "b"}}, Partition{Keys: []string{"a", "c"}}, -1},
		{Partition{Keys: []string{"a", "d"}}, Partition{Keys: []string{"a", "c"}}, 1},
	}

	for _, tt := range tests {
		got := tt.a.Compare(tt.b)
		require.Equal(t, -got, tt.b.Compare(tt.a), "compare must be antisymmetric")
		switch tt.want {
		case 0:
			require.Equal(t, 0, got)
		case -1:
			require.Less(t, got, 0)
		case 1:
			require.Greater(t, got, 0)
		default:
			t.Fatalf("invalid test case want: %d", tt.want)
		}
	}
}

func TestPartitionCompare_IgnoresWeight(t *testing.T) {
	t.Parallel()

	a := Partition{Keys: []string{"orders", "1"}, Weight: 5}
	b := Partition{Keys: []string{"orders", "1"}, Weight: 500}
	require.Equal(t, 0, a.Compare(b))

	parts := []Partition{
		{Keys: []string{"orders", "2"}},
		{Keys: []string{"audit"}},
		{Keys: []string{"orders", "10"}},
		{Keys: []string{"orders"}},
	}
	slices.SortFunc(parts, Partition.Compare)

	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = p.ID()
	}
	require.Equal(t, []string{"audit", "orders", "orders-10", "orders-2"}, ids)
}

func TestPartitionHashID(t *testing.T) {
	t.Parallel()

	p1 := Partition{Keys: []string{"topic", "p", "42"}}
	p2 := Partition{Keys: []string{"topic", "p", "42"}, Weight: 7}
	require.Equal(t, p1.HashID(), p2.HashID(), "weight is not part of the identity")

	t.Run("key boundaries are significant", func(t *testing.T) {
		p3 := Partition{Keys: []string{"ab", "c"}}
		p4 := Partition{Keys: []string{"a", "bc"}}
		require.NotEqual(t, p3.HashID(), p4.HashID())
	})

	t.Run("empty keys hash to zero", func(t *testing.T) {
		require.Zero(t, Partition{}.HashID())
		require.Zero(t, Partition{Keys: []string{}}.HashIDSeed(99))
	})

	t.Run("chained xxh3", func(t *testing.T) {
		want := xxh3.HashStringSeed("42", xxh3.HashStringSeed("p", xxh3.HashStringSeed("topic", 0)))
		require.Equal(t, want, p1.HashID())
	})

	t.Run("seed", func(t *testing.T) {
		require.Equal(t, p1.HashID(), p1.HashIDSeed(0))
		require.NotEqual(t, p1.HashID(), p1.HashIDSeed(12345))
	})
}

func TestPartitionYAML(t *testing.T) {
	t.Parallel()

	doc := `
- keys: [orders, "0"]
  weight: 80
- keys: [orders, "1"]
`
	var parts []Partition
	require.NoError(t, yaml.Unmarshal([]byte(doc), &parts))

	require.Equal(t, []Partition{
		{Keys: []string{"orders", "0"}, Weight: 80},
		{Keys: []string{"orders", "1"}, Weight: 0},
	}, parts)
}

func BenchmarkPartitionHashID(b *testing.B) {
	parts := []Partition{
		{Keys: []string{"topic", "p", "0"}},
		{Keys: []string{"topic", "p", "1"}},
		{Keys: []string{"topic", "p", "2"}},
		{Keys: []string{"topic", "p", "3"}},
		{Keys: []string{"topic", "p", "4"}},
	}

	var sink uint64
	for b.Loop() {
		for _, p := range parts {
			sink ^= p.HashID()
		}
	}

	_ = sink
}
