// Package core defines the Graph, Edge and Arc types together with the
// sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Arc is an outgoing edge seen from its source vertex: the neighbor and the
// weight to reach it. It is the element type of FromAdjacency input.
type Arc struct {
	To     string
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an in-memory weighted directed graph.
//
// mu guards vertices, adjacency and edgeCount. adjacency[from] holds the
// outgoing edges of from in insertion order; every vertex has an entry,
// possibly empty.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	vertices  map[string]struct{}
	adjacency map[string][]Edge
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default loops and parallel edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
