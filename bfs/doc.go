// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order.
//
// BFS is the unweighted baseline for the cost-ordered searches in ucs and
// astar: on a graph whose edges all weigh the same, the path from
// Result.PathTo has the same length as the one uniform-cost search returns.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues
//	them in that order, so Order, Depth and Parent are reproducible.
//
// Options:
//
//	– WithContext(ctx)         cancellation, checked once per dequeue.
//	– WithOnVisit(fn)          hook on every dequeue; an error aborts.
//	– WithMaxDepth(d)          explore at most d hops (0 = unlimited).
//	– WithGoal(id)             stop once id is dequeued.
//	– WithFilterNeighbor(fn)   skip individual edges.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
