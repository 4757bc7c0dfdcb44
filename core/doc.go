// Package core provides the weighted directed Graph used by the search
// packages of github.com/katalvlaran/lvsearch.
//
// A Graph G = (V,E) maps string vertex IDs to an ordered list of outgoing
// edges. Each edge carries a non-negative, finite float64 weight:
//
//   - Directed only: an edge A→B never implies B→A. Add both explicitly for
//     a two-way connection.
//   - Ordered: Neighbors(id) returns outgoing edges in insertion order, so
//     any algorithm iterating them is reproducible.
//   - Validated at construction: negative weights fail with
//     ErrNegativeWeight, NaN/±Inf with ErrBadWeight. Searches therefore never
//     see an invalid cost from a core.Graph.
//   - Thread-safe: a single sync.RWMutex guards the catalog. Once built, a
//     Graph may be read by any number of concurrent searches.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()       permit self-loops (A→A); otherwise ErrLoopNotAllowed.
//	– WithMultiEdges()  permit parallel edges; otherwise ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                       // O(1), idempotent
//	HasVertex(id string) bool                        // O(1)
//	AddEdge(from, to string, weight float64) error   // O(1)†, adds missing endpoints
//	HasEdge(from, to string) bool                    // O(d)
//	Neighbors(id string) ([]Edge, error)             // O(d), insertion order
//	Vertices() []string                              // O(V log V), sorted
//	Edges() []Edge                                   // O(V log V + E)
//	VertexCount(), EdgeCount() int                   // O(1)
//
//	FromAdjacency(adj map[string][]Arc, opts...)     // build from a label → arcs mapping
//
// † HasEdge is consulted when multi-edges are disabled, making AddEdge O(d).
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrNegativeWeight      – weight < 0
//	ErrBadWeight           – weight is NaN or infinite
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
