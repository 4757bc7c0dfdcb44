package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/ucs"
)

// detour forces one stale pop on the way from S to T.
func detour(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(map[string][]core.Arc{
		"S": {{To: "X", Weight: 10}, {To: "A", Weight: 1}},
		"A": {{To: "X", Weight: 1}},
		"X": {{To: "T", Weight: 20}},
		"T": nil,
		"Z": nil,
	})
	require.NoError(t, err)
	return g
}

func run(t *testing.T, rec *metrics.Recorder, goal string, extra ...search.Option) (search.Result[string], error) {
	t.Helper()
	opts := append([]search.Option{search.WithObserver(rec.Observer("ucs"))}, extra...)
	return ucs.Search(detour(t), "S", goal, ucs.WithSearchOptions(opts...))
}

func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	res, err := run(t, rec, "T")
	require.NoError(t, err)
	require.Equal(t, search.Stats{Expanded: 3, Pushed: 5, Relaxed: 4, StalePops: 1}, res.Stats)

	expected := `
# HELP lvsearch_frontier_pushes_total Total number of entries pushed onto a search frontier.
# TYPE lvsearch_frontier_pushes_total counter
lvsearch_frontier_pushes_total{algorithm="ucs"} 5
# HELP lvsearch_nodes_expanded_total Total number of nodes closed and expanded.
# TYPE lvsearch_nodes_expanded_total counter
lvsearch_nodes_expanded_total{algorithm="ucs"} 3
# HELP lvsearch_stale_pops_total Total number of superseded frontier entries discarded on pop.
# TYPE lvsearch_stale_pops_total counter
lvsearch_stale_pops_total{algorithm="ucs"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"lvsearch_frontier_pushes_total", "lvsearch_nodes_expanded_total", "lvsearch_stale_pops_total"))
}

func TestRecorder_Outcomes(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = run(t, rec, "T")
	require.NoError(t, err)
	_, err = run(t, rec, "Z")
	require.NoError(t, err)
	_, err = run(t, rec, "T", search.WithMaxExpansions(1))
	require.ErrorIs(t, err, search.ErrBudgetExceeded)
	// Rejected before the first step; still counted.
	_, err = run(t, rec, "nowhere")
	require.ErrorIs(t, err, search.ErrInvalidNode)

	expected := `
# HELP lvsearch_searches_total Total number of completed searches by outcome.
# TYPE lvsearch_searches_total counter
lvsearch_searches_total{algorithm="ucs",outcome="error"} 2
lvsearch_searches_total{algorithm="ucs",outcome="exhausted"} 1
lvsearch_searches_total{algorithm="ucs",outcome="found"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lvsearch_searches_total"))

	families, err := reg.Gather()
	require.NoError(t, err)
	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "lvsearch_search_duration_seconds" {
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(4), samples)
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
