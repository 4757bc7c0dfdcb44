package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	// It wraps core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start: %w", core.ErrVertexNotFound)

	// ErrNoPath is returned by Result.PathTo for a vertex never reached.
	ErrNoPath = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one traversal.
type Options struct {
	// Ctx allows cancellation. Checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts
	// the traversal and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, leaves vertices deeper than this unexplored.
	MaxDepth int

	// Goal, if non-empty, stops the traversal as soon as it is dequeued.
	Goal string

	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no goal and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithGoal stops the traversal once id is dequeued.
func WithGoal(id string) Option {
	return func(o *Options) { o.Goal = id }
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists vertices in dequeue order.
	Order []string

	// Depth maps every discovered vertex to its hop count from the start.
	Depth map[string]int

	// Parent maps every discovered vertex except the start to its BFS-tree parent.
	Parent map[string]string
}

// PathTo returns the fewest-hop path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
