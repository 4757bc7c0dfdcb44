// Package scenario loads search problems from TOML.
//
// A file holds logging and run settings plus any number of [[scenario]]
// tables. Each scenario is either a grid problem solved with A* or a graph
// problem solved with uniform-cost search or BFS:
//
//	[log]
//	level  = "info"   # debug | info | warn | error
//	format = "text"   # text | json
//
//	[run]
//	parallel       = 4
//	max_expansions = 0
//
//	[[scenario]]
//	name  = "roads"
//	kind  = "graph"
//	start = "A"
//	goal  = "G"
//	edges = [
//	  { from = "A", to = "B", weight = 1 },
//	  { from = "B", to = "D", weight = 1 },
//	]
//
//	[[scenario]]
//	name       = "walls"
//	kind       = "grid"
//	rows       = 20
//	cols       = 20
//	start_cell = [2, 2]
//	goal_cell  = [18, 18]
//	walls = [
//	  { axis = "col", index = 10, from = 5, to = 14 },
//	  { axis = "row", index = 5,  from = 5, to = 14 },
//	]
//
// Load applies defaults after decoding and validates the result; Run executes
// one scenario and reports an Outcome.
package scenario
