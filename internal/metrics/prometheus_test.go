package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheus_Defaults(t *testing.T) {
	p := NewPrometheus(nil, "")

	require.Equal(t, prometheus.DefaultRegisterer, p.reg)
	require.Equal(t, "ldm", p.namespace)
}

func TestPrometheusCollector_LazyRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewPrometheus(reg, "test")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)
}

func TestPrometheusCollector_RecordPartition(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordPartition(5, 2, 0.001)
	p.RecordPartition(8, 0, 0.002)

	require.InDelta(t, 2, testutil.ToFloat64(p.runs), 0)
	require.InDelta(t, 0, testutil.ToFloat64(p.difference), 0)
	require.Equal(t, 1, testutil.CollectAndCount(p.items))
	require.Equal(t, 1, testutil.CollectAndCount(p.runLatency))
}

func TestPrometheusCollector_RecordAssignment(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordAssignment(4, 3, 0.01)
	p.RecordAssignmentCache(false)
	p.RecordAssignmentCache(true)
	p.RecordAssignmentCache(true)

	require.InDelta(t, 1, testutil.ToFloat64(p.assignments), 0)
	require.InDelta(t, 3, testutil.ToFloat64(p.imbalance), 0)
	require.InDelta(t, 2, testutil.ToFloat64(p.cacheLookups.WithLabelValues("hit")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.cacheLookups.WithLabelValues("miss")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	require.Contains(t, names, "test_partitioner_runs_total")
	require.Contains(t, names, "test_assignment_cache_lookups_total")
	require.Contains(t, names, "test_assignment_imbalance")
}
