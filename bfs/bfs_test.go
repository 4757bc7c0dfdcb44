package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/ucs"
)

func chain(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], 1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = bfs.BFS(chain(t, "A", "B"), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_WeightsIgnored counts hops, not weights.
func TestBFS_WeightsIgnored(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "C", 100))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, 1, res.Depth["C"])
	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, path)
}

// TestBFS_Directed follows edges only in their stated direction.
func TestBFS_Directed(t *testing.T) {
	g := chain(t, "A", "B", "C")
	res, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, res.Order)

	_, err = res.PathTo("A")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cycle checks depths on a directed 4-cycle with a shortcut.
func TestBFS_Cycle(t *testing.T) {
	g := chain(t, "A", "B", "C", "D", "A")
	require.NoError(t, g.AddEdge("A", "D", 1))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "D": "A", "C": "B"}, res.Parent)
}

// TestBFS_MaxDepth covers positive, zero and oversized limits.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, "A", "B", "C")
	for _, tc := range []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	} {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestBFS_Goal stops as soon as the goal is dequeued.
func TestBFS_Goal(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")
	res, err := bfs.BFS(g, "A", bfs.WithGoal("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	// C is discovered from B only after B is expanded, which never happens.
	_, seen := res.Depth["C"]
	assert.False(t, seen)
}

// TestBFS_FilterNeighbor prunes a single edge.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, "A", "B", "C")
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_SelfLoopAndParallel ensures loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallel(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, g.AddEdge("A", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 2))
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_OnVisitAbort propagates the hook error with the partial result.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	res, err := bfs.BFS(chain(t, "A", "B", "C"), "A", bfs.WithOnVisit(func(id string, d int) error {
		seen = append(seen, fmt.Sprintf("%s@%d", id, d))
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A@0", "B@1"}, seen)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Cancellation halts on a cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(t, ids...), "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_Concurrent runs several traversals on one graph.
func TestBFS_Concurrent(t *testing.T) {
	g := chain(t, "A", "B", "C")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.BFS(g, "A")
			assert.NoError(t, err)
			assert.Len(t, res.Order, 3)
		}()
	}
	wg.Wait()
}

// TestBFS_MatchesUnitWeightUCS compares hop counts with uniform-cost search
// on graphs whose edges all weigh 1.
func TestBFS_MatchesUnitWeightUCS(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 10; trial++ {
		g := core.NewGraph()
		const n = 15
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(fmt.Sprintf("n%d", i)))
		}
		for i := 0; i < 30; i++ {
			from, to := fmt.Sprintf("n%d", r.Intn(n)), fmt.Sprintf("n%d", r.Intn(n))
			if from == to || g.HasEdge(from, to) {
				continue
			}
			require.NoError(t, g.AddEdge(from, to, 1))
		}

		res, err := bfs.BFS(g, "n0")
		require.NoError(t, err)
		for _, v := range g.Vertices() {
			u, err := ucs.Search(g, "n0", v)
			require.NoError(t, err)
			depth, ok := res.Depth[v]
			require.Equal(t, ok, u.Found, "reachability of %s", v)
			if ok {
				assert.Equal(t, float64(depth), u.Cost, "hops to %s", v)
				assert.Len(t, u.Path, depth+1)
			}
		}
	}
}
