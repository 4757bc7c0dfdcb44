// File: methods.go
// Role: Vertex and edge lifecycle plus read-only queries.
// Determinism:
//   - Vertices() sorted lexicographically ascending.
//   - Neighbors() in insertion order; Edges() grouped by sorted source, then insertion order.
// Concurrency:
//   - Mutators take mu for writing, queries take mu for reading.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, register the vertex and an empty adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge adds the directed edge from→to with the given weight, creating
// missing endpoints.
//
// Implementation:
//   - Stage 1: Validate IDs and weight (finite, non-negative).
//   - Stage 2: Enforce loop policy.
//   - Stage 3: Under the write lock, enforce multi-edge policy, register
//     endpoints and append the edge to from's bucket.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrNegativeWeight, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed. Weight errors are wrapped with the edge.
//
// Complexity: O(1) amortized with multi-edges enabled, O(d) otherwise.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := validateWeight(from, to, weight); err != nil {
		return err
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(d) where d is the out-degree of from.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Neighbors returns a copy of the outgoing edges of id in insertion order.
// Only explicitly added edges appear; no reverse edges are implied.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound (wrapped with id) if the vertex does not exist.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	bucket := g.adjacency[id]
	out := make([]Edge, len(bucket))
	copy(out, bucket)

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge, grouped by source vertex in ascending order and
// by insertion order within a source.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	ids := g.Vertices()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, id := range ids {
		out = append(out, g.adjacency[id]...)
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = nil
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// validateWeight rejects weights a shortest-path search cannot handle.
func validateWeight(from, to string, weight float64) error {
	switch {
	case math.IsNaN(weight) || math.IsInf(weight, 0):
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, from, to, weight)
	case weight < 0:
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	return nil
}
