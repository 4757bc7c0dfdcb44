// Package astar finds minimum-cost paths on a gridgraph.Grid with A*.
//
// FindPath adapts the grid to search.Space and runs the generic best-first
// engine with a grid heuristic. Under the default 8-connectivity moves cost 1
// orthogonally and √2 diagonally, the Euclidean distance between cell
// centers, so both Euclidean and Octile never overestimate and the first
// goal pop is optimal.
//
// Heuristics:
//
//	– Euclidean  straight-line distance (default).
//	– Octile     exact distance on an empty 8-connected grid; tighter than Euclidean.
//	– Manhattan  exact on an empty 4-connected grid; overestimates under Conn8.
//
// Blocked endpoints: a blocked start may leave (its free neighbors are
// expanded as usual); a blocked goal can never be entered, so the result is
// NotFound unless start == goal.
//
// Example:
//
//	grid, _ := gridgraph.Parse([]string{
//	    "....",
//	    ".##.",
//	    "....",
//	})
//	res, err := astar.FindPath(grid, gridgraph.Cell{0, 0}, gridgraph.Cell{2, 3})
package astar
