package search_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvsearch/search"
)

var errUnknown = errors.New("unknown node")

// mapSpace is a minimal Space over an explicit adjacency map.
type mapSpace map[string][]search.Arc[string]

func (m mapSpace) Validate(id string) error {
	if _, ok := m[id]; !ok {
		return fmt.Errorf("%w: %q", errUnknown, id)
	}
	return nil
}

func (m mapSpace) Neighbors(id string) ([]search.Arc[string], error) {
	arcs, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknown, id)
	}
	return arcs, nil
}

// sevenNodes is the A..G fixture with 8 weighted one-way roads.
func sevenNodes() mapSpace {
	return mapSpace{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 4}},
		"B": {{To: "D", Cost: 1}, {To: "E", Cost: 3}},
		"C": {{To: "F", Cost: 5}},
		"D": {{To: "G", Cost: 2}},
		"E": {{To: "G", Cost: 1}},
		"F": {{To: "G", Cost: 2}},
		"G": nil,
	}
}

// randomSpace builds a reproducible directed graph with n vertices.
func randomSpace(r *rand.Rand, n int, density float64) mapSpace {
	m := make(mapSpace, n)
	for i := 0; i < n; i++ {
		m[name(i)] = nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || r.Float64() > density {
				continue
			}
			m[name(i)] = append(m[name(i)], search.Arc[string]{To: name(j), Cost: float64(r.Intn(9) + 1)})
		}
	}
	return m
}

func name(i int) string { return fmt.Sprintf("v%02d", i) }

// floydWarshall returns all-pairs shortest distances; +Inf when unreachable.
func floydWarshall(m mapSpace, n int) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for i := 0; i < n; i++ {
		for _, a := range m[name(i)] {
			var j int
			fmt.Sscanf(a.To, "v%d", &j)
			d[i][j] = math.Min(d[i][j], a.Cost)
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	return d
}

// pathCost sums the cheapest arc between each consecutive pair, failing if
// a pair is not connected.
func pathCost(m mapSpace, path []string) (float64, error) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		best := math.Inf(1)
		for _, a := range m[path[i-1]] {
			if a.To == path[i] && a.Cost < best {
				best = a.Cost
			}
		}
		if math.IsInf(best, 1) {
			return 0, fmt.Errorf("no arc %s→%s", path[i-1], path[i])
		}
		total += best
	}
	return total, nil
}

// countingObserver records every callback.
type countingObserver struct {
	pushes, expands, stales, finishes int
	lastState                         search.State
	lastErr                           error
}

func (o *countingObserver) OnPush()   { o.pushes++ }
func (o *countingObserver) OnExpand() { o.expands++ }
func (o *countingObserver) OnStale()  { o.stales++ }

func (o *countingObserver) OnFinish(state search.State, _ search.Stats, _ time.Duration, err error) {
	o.finishes++
	o.lastState = state
	o.lastErr = err
}
