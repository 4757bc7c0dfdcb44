package scenario

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

var heuristics = map[string]search.Heuristic[gridgraph.Cell]{
	"euclidean": astar.Euclidean,
	"octile":    astar.Octile,
	"manhattan": astar.Manhattan,
	"zero":      search.Zero[gridgraph.Cell],
}

func parseConnectivity(s string) (gridgraph.Connectivity, error) {
	switch strings.ToLower(s) {
	case "conn8", "8":
		return gridgraph.Conn8, nil
	case "conn4", "4":
		return gridgraph.Conn4, nil
	default:
		return 0, fmt.Errorf("connectivity must be conn4 or conn8, got %q", s)
	}
}

// Graph builds the core.Graph of a graph scenario. Edges are added in file
// order; self-loops and repeated pairs are kept.
func (s *Scenario) Graph() (*core.Graph, error) {
	if s.Kind != KindGraph {
		return nil, s.invalid("not a graph scenario")
	}
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for i, e := range s.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("scenario %q: edges[%d]: %w", s.Name, i, err)
		}
	}
	return g, nil
}

// Grid builds the gridgraph.Grid of a grid scenario.
func (s *Scenario) Grid() (*gridgraph.Grid, error) {
	if s.Kind != KindGrid {
		return nil, s.invalid("not a grid scenario")
	}
	conn, err := parseConnectivity(s.Connectivity)
	if err != nil {
		return nil, s.invalid("%v", err)
	}
	opt := gridgraph.WithConnectivity(conn)

	if len(s.Layout) > 0 {
		g, err := gridgraph.Parse(s.Layout, opt)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: layout: %w", s.Name, err)
		}
		return g, nil
	}

	b := gridgraph.NewBuilder(s.Rows, s.Cols)
	for _, w := range s.Walls {
		if w.Axis == "row" {
			b.BlockRow(w.Index, w.From, w.To)
		} else {
			b.BlockCol(w.Index, w.From, w.To)
		}
	}
	g, err := b.Build(opt)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: walls: %w", s.Name, err)
	}
	return g, nil
}

// Cells returns the start and goal cells of a grid scenario. Both must be
// given as [row, col].
func (s *Scenario) Cells() (start, goal gridgraph.Cell, err error) {
	if len(s.StartCell) != 2 || len(s.GoalCell) != 2 {
		return start, goal, s.invalid("start_cell and goal_cell must be [row, col]")
	}
	return gridgraph.Cell{Row: s.StartCell[0], Col: s.StartCell[1]},
		gridgraph.Cell{Row: s.GoalCell[0], Col: s.GoalCell[1]}, nil
}

// HeuristicFunc returns the grid heuristic named by the scenario.
func (s *Scenario) HeuristicFunc() search.Heuristic[gridgraph.Cell] {
	return heuristics[strings.ToLower(s.Heuristic)]
}
