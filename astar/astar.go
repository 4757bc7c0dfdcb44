package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrNilGrid indicates a nil *gridgraph.Grid.
var ErrNilGrid = errors.New("astar: grid is nil")

// Result is the outcome of FindPath.
type Result struct {
	// Path lists cells from start to goal inclusive; nil when not found.
	Path []gridgraph.Cell

	// Cost is the total step cost of Path, +Inf when not found.
	Cost float64

	// Found distinguishes NotFound from a one-cell path.
	Found bool

	// Stats carries the engine counters.
	Stats search.Stats

	// Visited holds the row-major index of every expanded cell when
	// WithVisited is set; nil otherwise.
	Visited *roaring.Bitmap
}

// Options configures FindPath.
type Options struct {
	// Heuristic defaults to Euclidean.
	Heuristic search.Heuristic[gridgraph.Cell]

	// Search holds options forwarded to the engine.
	Search []search.Option

	// CollectVisited records expanded cells in Result.Visited.
	CollectVisited bool

	// Precheck answers NotFound without searching when start and goal lie
	// in different components of the grid.
	Precheck bool
}

// Option is a functional option for FindPath.
type Option func(*Options)

// WithHeuristic replaces the Euclidean default. A nil h means search.Zero,
// which turns A* into uniform-cost search.
func WithHeuristic(h search.Heuristic[gridgraph.Cell]) Option {
	return func(o *Options) {
		if h == nil {
			h = search.Zero[gridgraph.Cell]
		}
		o.Heuristic = h
	}
}

// WithSearchOptions forwards engine options (logger, budget, context, observer).
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithVisited collects the expanded cells into Result.Visited.
func WithVisited() Option {
	return func(o *Options) { o.CollectVisited = true }
}

// WithPrecheck enables the connected-component shortcut.
func WithPrecheck() Option {
	return func(o *Options) { o.Precheck = true }
}

// FindPath returns a minimum-cost path from start to goal on grid.
//
// Errors: ErrNilGrid; search.ErrInvalidNode wrapping gridgraph.ErrOutOfBounds
// for an out-of-range endpoint; any engine error. An unreachable goal is not
// an error: Result.Found is false.
func FindPath(grid *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	cfg := Options{Heuristic: Euclidean}
	for _, opt := range opts {
		opt(&cfg)
	}
	if grid == nil {
		return notFound(), ErrNilGrid
	}

	space := gridSpace{grid}
	if cfg.Precheck && start != goal && space.Validate(start) == nil && space.Validate(goal) == nil {
		if grid.Blocked(goal) || (grid.Free(start) && !grid.SameComponent(start, goal)) {
			return notFound(), nil
		}
	}

	s, err := search.New[gridgraph.Cell](space, start, goal, cfg.Heuristic, cfg.Search...)
	if err != nil {
		return notFound(), err
	}

	var visited *roaring.Bitmap
	if cfg.CollectVisited {
		visited = roaring.New()
		s.OnExpand(func(c gridgraph.Cell, _ float64) {
			if idx, ok := grid.Index(c); ok {
				visited.Add(idx)
			}
		})
	}

	res, err := s.Run()
	if err != nil {
		return Result{Cost: math.Inf(1), Stats: res.Stats, Visited: visited}, err
	}
	return Result{
		Path:    res.Path,
		Cost:    res.Cost,
		Found:   res.Found,
		Stats:   res.Stats,
		Visited: visited,
	}, nil
}

func notFound() Result {
	return Result{Cost: math.Inf(1)}
}

// gridSpace adapts a Grid to search.Space.
type gridSpace struct {
	g *gridgraph.Grid
}

func (s gridSpace) Validate(c gridgraph.Cell) error {
	return s.g.Validate(c)
}

func (s gridSpace) Neighbors(c gridgraph.Cell) ([]search.Arc[gridgraph.Cell], error) {
	steps, err := s.g.Neighbors(c)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	arcs := make([]search.Arc[gridgraph.Cell], len(steps))
	for i, st := range steps {
		arcs[i] = search.Arc[gridgraph.Cell]{To: st.To, Cost: st.Cost}
	}
	return arcs, nil
}
