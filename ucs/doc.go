// Package ucs runs uniform-cost search over a core.Graph.
//
// Uniform-cost search is best-first search ordered by g, the exact cost from
// the start. It is Dijkstra's algorithm stopped at the first goal pop.
// Search delegates to the generic engine in package search, so the same
// invariants hold:
//
//   - A vertex is expanded at most once; its cost is final when closed.
//   - Superseded frontier entries are skipped (lazy deletion).
//   - Equal-priority entries pop in insertion order, so repeated runs on the
//     same graph return the same path.
//
// SearchWithHeuristic turns the same call into A* over the graph by
// supplying an admissible heuristic.
//
// Distances is the single-source, all-targets variant. It runs the same
// lazy-deletion loop without a goal and returns cost and predecessor maps.
//
// Options:
//
//	– WithInfEdgeThreshold(t)  edges with weight ≥ t are treated as walls.
//	– WithMaxDistance(d)       Distances stops once the next pop exceeds d.
//	– WithSearchOptions(...)   forwards engine options (logger, budget, context, observer).
//
// Errors:
//
//	– ErrNilGraph               graph pointer is nil.
//	– search.ErrInvalidNode     start or goal not in the graph (wraps core.ErrVertexNotFound).
//	– search.ErrOptionViolation invalid option value.
//
// Complexity:
//
//	– Time:  O((V + E) log E) with lazy deletion.
//	– Space: O(V + E).
package ucs
