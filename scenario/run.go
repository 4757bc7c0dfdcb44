package scenario

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/ucs"
)

// Outcome is the result of running one scenario.
type Outcome struct {
	Name      string
	Algorithm string

	// Path holds node labels: vertex IDs, or "(row,col)" for grid cells.
	Path  []string
	Cost  float64
	Found bool
	Stats search.Stats

	// Visited counts distinct expanded cells on grid scenarios.
	Visited uint64

	Elapsed time.Duration

	// Err is the error Run returned, if any. A failed run is not a
	// missing path: Found is false and Err is set.
	Err error
}

// String renders "name: A → B → C (cost 2)", "name: no path" or
// "name: error: <msg>".
func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: error: %v", o.Name, o.Err)
	}
	if !o.Found {
		return o.Name + ": no path"
	}
	return fmt.Sprintf("%s: %s (cost %s)", o.Name, strings.Join(o.Path, " → "),
		strconv.FormatFloat(o.Cost, 'f', -1, 64))
}

// Run validates the scenario, builds its model and solves it. opts are
// forwarded to the engine after the scenario's own context and expansion
// budget, so a caller may add a logger or observer. The returned error is
// also recorded in Outcome.Err.
func Run(ctx context.Context, s Scenario, opts ...search.Option) (Outcome, error) {
	began := time.Now()
	out := Outcome{Name: s.Name, Algorithm: s.Algorithm, Cost: math.Inf(1)}
	if err := s.Validate(); err != nil {
		out.Err = err
		return out, err
	}
	engine := append([]search.Option{
		search.WithContext(ctx),
		search.WithMaxExpansions(s.MaxExpansions),
	}, opts...)

	var err error
	switch s.Algorithm {
	case AlgoAStar:
		err = runGrid(&s, &out, engine)
	case AlgoUCS:
		err = runUCS(&s, &out, engine)
	case AlgoBFS:
		err = runBFS(ctx, &s, &out)
	default:
		err = s.invalid("unknown algorithm %q", s.Algorithm)
	}
	out.Elapsed = time.Since(began)
	if err != nil {
		out.Found, out.Path, out.Cost = false, nil, math.Inf(1)
		out.Err = err
	}
	return out, err
}

func runGrid(s *Scenario, out *Outcome, engine []search.Option) error {
	grid, err := s.Grid()
	if err != nil {
		return err
	}
	start, goal, err := s.Cells()
	if err != nil {
		return err
	}
	opts := []astar.Option{
		astar.WithHeuristic(s.HeuristicFunc()),
		astar.WithSearchOptions(engine...),
		astar.WithVisited(),
	}
	if s.Precheck {
		opts = append(opts, astar.WithPrecheck())
	}
	res, err := astar.FindPath(grid, start, goal, opts...)
	out.Stats = res.Stats
	if res.Visited != nil {
		out.Visited = res.Visited.GetCardinality()
	}
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	out.Found, out.Cost = res.Found, res.Cost
	for _, c := range res.Path {
		out.Path = append(out.Path, c.String())
	}
	return nil
}

func runUCS(s *Scenario, out *Outcome, engine []search.Option) error {
	g, err := s.Graph()
	if err != nil {
		return err
	}
	res, err := ucs.Search(g, s.Start, s.Goal, ucs.WithSearchOptions(engine...))
	out.Stats = res.Stats
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	out.Found, out.Cost, out.Path = res.Found, res.Cost, res.Path
	return nil
}

func runBFS(ctx context.Context, s *Scenario, out *Outcome) error {
	g, err := s.Graph()
	if err != nil {
		return err
	}
	if !g.HasVertex(s.Goal) {
		return fmt.Errorf("scenario %q: %w: goal %q", s.Name, search.ErrInvalidNode, s.Goal)
	}
	res, err := bfs.BFS(g, s.Start, bfs.WithContext(ctx), bfs.WithGoal(s.Goal))
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	out.Stats.Expanded = len(res.Order)
	path, err := res.PathTo(s.Goal)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil
	}
	if err != nil {
		return err
	}
	out.Found, out.Path, out.Cost = true, path, float64(len(path)-1)
	return nil
}
