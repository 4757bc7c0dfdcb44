package ucs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("ucs: graph is nil")

// Options configures a uniform-cost run.
type Options struct {
	// InfEdgeThreshold marks edges with weight ≥ threshold as impassable.
	// Default +Inf (no walls).
	InfEdgeThreshold float64

	// MaxDistance bounds Distances: vertices farther than this are left
	// unexplored. Default +Inf.
	MaxDistance float64

	// Search holds options forwarded to the engine.
	Search []search.Option

	err error
}

// Option is a functional option for Search, SearchWithHeuristic and Distances.
type Option func(*Options)

// DefaultOptions returns options with no walls and no distance cap.
func DefaultOptions() Options {
	return Options{
		InfEdgeThreshold: math.Inf(1),
		MaxDistance:      math.Inf(1),
	}
}

// WithInfEdgeThreshold treats any edge with weight ≥ t as a wall.
// t must be positive.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", search.ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithMaxDistance caps the exploration radius of Distances. d must be ≥ 0.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", search.ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithSearchOptions forwards engine options.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}

// graphSpace adapts a core.Graph to search.Space.
type graphSpace struct {
	g   *core.Graph
	inf float64
}

func (s graphSpace) Validate(id string) error {
	if id == "" {
		return core.ErrEmptyVertexID
	}
	if !s.g.HasVertex(id) {
		return fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
	}
	return nil
}

func (s graphSpace) Neighbors(id string) ([]search.Arc[string], error) {
	edges, err := s.g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	arcs := make([]search.Arc[string], 0, len(edges))
	for _, e := range edges {
		if e.Weight >= s.inf {
			continue
		}
		arcs = append(arcs, search.Arc[string]{To: e.To, Cost: e.Weight})
	}
	return arcs, nil
}
