package ucs_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/ucs"
)

// roads is the seven-vertex, eight-edge road map.
func roads(t *testing.T, dg float64) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "D", Weight: 1}, {To: "E", Weight: 3}},
		"C": {{To: "F", Weight: 5}},
		"D": {{To: "G", Weight: dg}},
		"E": {{To: "G", Weight: 1}},
		"F": {{To: "G", Weight: 2}},
		"G": nil,
	})
	require.NoError(t, err)
	return g
}

func TestSearch_Roads(t *testing.T) {
	res, err := ucs.Search(roads(t, 2), "A", "G")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "D", "G"}, res.Path)
	assert.Equal(t, 4.0, res.Cost)

	res, err = ucs.Search(roads(t, 4), "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E", "G"}, res.Path)
	assert.Equal(t, 5.0, res.Cost)
}

// TestSearch_RepeatedNeighborsAndLoops picks the cheaper of two listed
// A→B arcs and ignores a self-loop.
func TestSearch_RepeatedNeighborsAndLoops(t *testing.T) {
	g, err := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: 5}, {To: "B", Weight: 1}},
	})
	require.NoError(t, err)
	res, err := ucs.Search(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Path)
	assert.Equal(t, 1.0, res.Cost)

	g, err = core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "A", Weight: 1}, {To: "B", Weight: 2}},
	})
	require.NoError(t, err)
	res, err = ucs.Search(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)

	dist, _, err := ucs.Distances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 2}, dist)
}

func TestSearch_Validation(t *testing.T) {
	_, err := ucs.Search(nil, "A", "G")
	assert.ErrorIs(t, err, ucs.ErrNilGraph)

	_, err = ucs.Search(roads(t, 2), "Z", "G")
	assert.ErrorIs(t, err, search.ErrInvalidNode)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = ucs.Search(roads(t, 2), "A", "")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = ucs.Search(roads(t, 2), "A", "G", ucs.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, _, err = ucs.Distances(roads(t, 2), "A", ucs.WithMaxDistance(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestSearch_InfEdgeThreshold(t *testing.T) {
	// Every edge of weight ≥ 2 becomes a wall, cutting G off.
	res, err := ucs.Search(roads(t, 2), "A", "G", ucs.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.True(t, math.IsInf(res.Cost, 1))

	res, err = ucs.Search(roads(t, 2), "A", "G", ucs.WithInfEdgeThreshold(2.5))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "G"}, res.Path)
}

func TestSearch_ForwardsEngineOptions(t *testing.T) {
	_, err := ucs.Search(roads(t, 2), "A", "G", ucs.WithSearchOptions(search.WithMaxExpansions(1)))
	assert.ErrorIs(t, err, search.ErrBudgetExceeded)
}

func TestSearchWithHeuristic(t *testing.T) {
	// Exact remaining cost is both admissible and consistent.
	exact := map[string]float64{"A": 4, "B": 3, "C": 7, "D": 2, "E": 1, "F": 2, "G": 0}
	h := func(id, _ string) float64 { return exact[id] }

	res, err := ucs.SearchWithHeuristic(roads(t, 2), "A", "G", h)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost)

	plain, err := ucs.Search(roads(t, 2), "A", "G")
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Stats.Expanded, plain.Stats.Expanded)
}

func TestDistances(t *testing.T) {
	dist, prev, err := ucs.Distances(roads(t, 2), "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 4, "D": 2, "E": 4, "F": 9, "G": 4}, dist)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B", "E": "B", "F": "C", "G": "D"}, prev)

	dist, _, err = ucs.Distances(roads(t, 2), "A", ucs.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "D": 2}, dist)

	_, _, err = ucs.Distances(roads(t, 2), "nope")
	assert.ErrorIs(t, err, search.ErrInvalidNode)
}

// TestDistancesAgreeWithSearch checks the goal-directed and all-targets
// variants against each other on random graphs.
func TestDistancesAgreeWithSearch(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		g := core.NewGraph(core.WithMultiEdges())
		const n = 10
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(fmt.Sprintf("n%d", i)))
		}
		for i := 0; i < 25; i++ {
			from, to := r.Intn(n), r.Intn(n)
			if from == to {
				continue
			}
			require.NoError(t, g.AddEdge(fmt.Sprintf("n%d", from), fmt.Sprintf("n%d", to), float64(r.Intn(10))))
		}

		dist, _, err := ucs.Distances(g, "n0")
		require.NoError(t, err)
		for _, v := range g.Vertices() {
			res, err := ucs.Search(g, "n0", v)
			require.NoError(t, err)
			want, ok := dist[v]
			assert.Equal(t, ok, res.Found, "reachability of %s", v)
			if ok {
				assert.InDelta(t, want, res.Cost, 1e-9, "cost to %s", v)
			}
		}
	}
}
