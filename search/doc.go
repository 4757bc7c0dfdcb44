// Package search implements a generic best-first search engine.
//
// One engine covers both A* and Uniform Cost Search: the caller supplies a
// Space (neighbor generation with step costs) and a Heuristic. With an
// admissible heuristic the engine is A*; with Zero it is UCS (Dijkstra with
// early exit on the goal).
//
// State machine:
//
//	StateInit ──Step──▶ StateRunning ──Step…──▶ StateFound | StateExhausted
//
// Each state in turn:
//   - Init: the start node is recorded with g=0, h=heuristic(start, goal) and
//     pushed on the frontier.
//   - Running: each Step pops the lowest-f entry. Stale entries are dropped,
//     the goal ends the search, any other node is closed and its neighbors
//     relaxed: a neighbor that is undiscovered, or reachable with a strictly
//     smaller g, gets new g/f/parent and a fresh frontier entry.
//   - Found: the path is rebuilt from parent links; Result.Cost is the goal's g.
//   - Exhausted: the frontier ran dry. Result.Found is false, Path is nil and
//     Cost is +Inf. This is a normal outcome, not an error.
//
// Node table and frontier:
//
//   - A single map[N]record owns every discovered node's g, h, parent and
//     closed flag. Parents are keys into that map, never pointers.
//   - The Frontier holds (priority, id) pairs only. Improvements push a new
//     entry instead of updating in place (lazy deletion). A popped entry is
//     live iff its node is still open and its priority equals the node's
//     current f; anything else is counted in Stats.StalePops and skipped.
//   - Ties on priority pop in insertion order, so results are reproducible.
//
// Guarantees:
//
//   - With non-negative step costs and an admissible heuristic the first
//     popped goal carries the minimum cost.
//   - Closed nodes are never re-expanded or relaxed.
//   - A negative or NaN step cost or heuristic value aborts the search with
//     ErrInvalidCost.
//
// Extensions beyond the plain algorithm (off by default):
//
//   - WithContext: cancellation checked before every pop.
//   - WithMaxExpansions: a step budget; exceeding it returns ErrBudgetExceeded
//     instead of running on a pathological input.
//   - WithObserver / Searcher.OnExpand: counters and per-node hooks.
//   - WithLogger: debug logs at start and finish.
//
// A Searcher is not safe for concurrent use. Independent searches over the
// same read-only Space may run in parallel.
package search
