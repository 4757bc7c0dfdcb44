package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from startID. Edge weights are
// ignored: every edge counts as one hop.
//
// Validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. startID must be a vertex of g (ErrStartVertexNotFound).
//
// On cancellation or an OnVisit error the partial Result is returned
// together with the error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.res.Depth[startID] = 0
	w.queue = append(w.queue, queueItem{id: startID})

	return w.res, w.loop()
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.Goal != "" && item.id == w.opts.Goal {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors discovers every unseen, unfiltered neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, e := range edges {
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		w.res.Depth[e.To] = next
		w.res.Parent[e.To] = item.id
		w.queue = append(w.queue, queueItem{id: e.To, depth: next})
	}
	return nil
}
