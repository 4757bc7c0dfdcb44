// Package lvsearch is a small toolkit of informed and uninformed search
// algorithms over graphs and occupancy grids, built around one generic
// best-first engine.
//
// 🚀 What is lvsearch?
//
//	A thread-safe, deterministic search library plus a scenario runner:
//		• Engine: generic best-first search with lazy deletion (search/)
//		• A*: occupancy-grid pathfinding with Euclidean/Octile/Manhattan (astar/)
//		• UCS: weighted directed graphs, single pair and all distances (ucs/)
//		• BFS: hop-count traversal with depth limit and hooks (bfs/)
//		• Hill climbing: 1-D local search on a sampled objective (hillclimb/)
//		• Scenarios: TOML-driven batch runs with Prometheus metrics (scenario/, cmd/lvsearch)
//
// ✨ Why lvsearch?
//
//   - Reproducible: equal priorities pop in insertion order
//   - Safe: inputs validated up front, sentinel errors for every failure
//   - Observable: step-wise Searcher, hooks, slog logging and metrics
//
// Packages:
//
//	core/       thread-safe weighted directed graph with string IDs
//	gridgraph/  2-D occupancy grid with 4/8 connectivity and a builder
//	search/     Frontier, Reconstruct, Searcher state machine
//	astar/      A* on gridgraph.Grid
//	ucs/        Uniform Cost Search on core.Graph
//	bfs/        breadth-first traversal on core.Graph
//	hillclimb/  greedy local maximisation
//	metrics/    Prometheus recorder implementing search.Observer
//	scenario/   TOML scenario files, building and running them
//
// Quick ASCII example (A* on a 3×3 grid, # blocked):
//
//	S . .
//	# # .
//	G . .
//
//	lvsearch -config ./lvsearch.toml
package lvsearch
