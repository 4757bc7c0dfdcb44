package core

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a Graph from a mapping of vertex ID to its ordered
// outgoing arcs, e.g.
//
//	core.FromAdjacency(map[string][]core.Arc{
//	    "A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
//	    "B": {{To: "D", Weight: 1}},
//	})
//
// Keys are processed in ascending order so that vertex creation is
// deterministic; arcs keep their listed order. Every key becomes a vertex even
// if it has no arcs, and arc targets missing from the keys are added.
// Self-loops and repeated neighbors are valid adjacency input, so the graph is
// built with WithLoops and WithMultiEdges ahead of opts.
// The first invalid arc aborts construction and its error is returned wrapped
// with the offending source.
//
// Complexity: O(V log V + E).
func FromAdjacency(adj map[string][]Arc, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(append([]GraphOption{WithLoops(), WithMultiEdges()}, opts...)...)

	keys := make([]string, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, from := range keys {
		if err := g.AddVertex(from); err != nil {
			return nil, err
		}
		for _, a := range adj[from] {
			if err := g.AddEdge(from, a.To, a.Weight); err != nil {
				return nil, fmt.Errorf("core: adjacency of %q: %w", from, err)
			}
		}
	}

	return g, nil
}
