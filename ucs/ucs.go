package ucs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Search finds a minimum-cost path from start to goal in g.
//
// Validation (in order):
//  1. Options must be valid (search.ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and goal must be vertices of g (search.ErrInvalidNode).
//
// An unreachable goal is not an error: Result.Found is false and
// Result.Cost is +Inf.
func Search(g *core.Graph, start, goal string, opts ...Option) (search.Result[string], error) {
	return SearchWithHeuristic(g, start, goal, nil, opts...)
}

// SearchWithHeuristic is Search ordered by g+h. With an admissible,
// consistent h the returned path is still optimal. A nil h is Search.
func SearchWithHeuristic(g *core.Graph, start, goal string, h search.Heuristic[string], opts ...Option) (search.Result[string], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return search.Result[string]{Cost: math.Inf(1)}, err
	}
	if g == nil {
		return search.Result[string]{Cost: math.Inf(1)}, ErrNilGraph
	}
	return search.Search[string](graphSpace{g: g, inf: cfg.InfEdgeThreshold}, start, goal, h, cfg.Search...)
}

// Distances computes the minimum cost from source to every vertex reachable
// within MaxDistance. prev[v] is the predecessor of v on its cheapest path;
// the source has no entry.
func Distances(g *core.Graph, source string, opts ...Option) (dist map[string]float64, prev map[string]string, err error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	space := graphSpace{g: g, inf: cfg.InfEdgeThreshold}
	if err = space.Validate(source); err != nil {
		return nil, nil, fmt.Errorf("%w: source %q: %w", search.ErrInvalidNode, source, err)
	}

	r := &runner{
		space:   space,
		maxDist: cfg.MaxDistance,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
		closed:  make(map[string]bool),
		pq:      search.NewFrontier[string](),
	}
	r.pq.Push(0, source)
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	// Drop tentative entries that were never settled.
	for v := range r.dist {
		if !r.closed[v] {
			delete(r.dist, v)
			delete(r.prev, v)
		}
	}
	return r.dist, r.prev, nil
}

// runner holds the mutable state of one Distances call.
type runner struct {
	space   graphSpace
	maxDist float64
	dist    map[string]float64
	prev    map[string]string
	closed  map[string]bool
	pq      *search.Frontier[string]
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		d, u, err := r.pq.PopMin()
		if err != nil {
			return err
		}
		if r.closed[u] || d > r.dist[u] {
			continue
		}
		if d > r.maxDist {
			break
		}
		r.closed[u] = true
		if err = r.relax(u, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) relax(u string, d float64) error {
	arcs, err := r.space.Neighbors(u)
	if err != nil {
		return fmt.Errorf("ucs: neighbors of %q: %w", u, err)
	}
	for _, a := range arcs {
		if r.closed[a.To] {
			continue
		}
		nd := d + a.Cost
		if nd > r.maxDist {
			continue
		}
		if old, ok := r.dist[a.To]; ok && nd >= old {
			continue
		}
		r.dist[a.To] = nd
		r.prev[a.To] = u
		r.pq.Push(nd, a.To)
	}
	return nil
}
