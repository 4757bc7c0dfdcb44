package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("scenario: invalid configuration")

// Kinds.
const (
	KindGrid  = "grid"
	KindGraph = "graph"
)

// Algorithms.
const (
	AlgoAStar = "astar"
	AlgoUCS   = "ucs"
	AlgoBFS   = "bfs"
)

// File is the top-level TOML document.
type File struct {
	Log       LogConfig  `toml:"log"`
	Run       RunConfig  `toml:"run"`
	Scenarios []Scenario `toml:"scenario"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// RunConfig holds settings shared by every scenario.
type RunConfig struct {
	// Parallel bounds how many scenarios run at once.
	Parallel int `toml:"parallel"`

	// MaxExpansions is the default engine budget; 0 means unlimited.
	MaxExpansions int `toml:"max_expansions"`
}

// Scenario is one search problem.
type Scenario struct {
	Name      string `toml:"name"`
	Kind      string `toml:"kind"`
	Algorithm string `toml:"algorithm"`

	// MaxExpansions overrides RunConfig.MaxExpansions when > 0.
	MaxExpansions int `toml:"max_expansions"`

	// Graph problems.
	Start string `toml:"start"`
	Goal  string `toml:"goal"`
	Edges []Edge `toml:"edges"`

	// Grid problems. Either Layout, or Rows/Cols plus Walls.
	Rows         int      `toml:"rows"`
	Cols         int      `toml:"cols"`
	Layout       []string `toml:"layout"`
	Walls        []Wall   `toml:"walls"`
	Connectivity string   `toml:"connectivity"`
	Heuristic    string   `toml:"heuristic"`
	StartCell    []int    `toml:"start_cell"`
	GoalCell     []int    `toml:"goal_cell"`
	Precheck     bool     `toml:"precheck"`
}

// Edge is one directed weighted edge.
type Edge struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// Wall blocks a straight run of cells: on row Index from column From to To
// (axis "row"), or on column Index from row From to To (axis "col").
type Wall struct {
	Axis  string `toml:"axis"`
	Index int    `toml:"index"`
	From  int    `toml:"from"`
	To    int    `toml:"to"`
}

// Load reads, decodes, defaults and validates the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}

// Decode is Load on an in-memory document.
func Decode(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	if strings.TrimSpace(f.Log.Level) == "" {
		f.Log.Level = "info"
	}
	if strings.TrimSpace(f.Log.Format) == "" {
		f.Log.Format = "text"
	}
	if f.Run.Parallel == 0 {
		f.Run.Parallel = 1
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
		s.Algorithm = strings.ToLower(strings.TrimSpace(s.Algorithm))
		if s.Algorithm == "" {
			switch s.Kind {
			case KindGrid:
				s.Algorithm = AlgoAStar
			case KindGraph:
				s.Algorithm = AlgoUCS
			}
		}
		if s.Kind == KindGrid {
			if s.Connectivity == "" {
				s.Connectivity = "conn8"
			}
			if s.Heuristic == "" {
				s.Heuristic = "euclidean"
			}
		}
		if s.MaxExpansions == 0 {
			s.MaxExpansions = f.Run.MaxExpansions
		}
	}
}

// Validate checks the whole file and returns the first problem found,
// wrapped in ErrInvalid.
func (f *File) Validate() error {
	switch strings.ToLower(f.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be one of debug, info, warn, error; got %q", ErrInvalid, f.Log.Level)
	}
	switch strings.ToLower(f.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json; got %q", ErrInvalid, f.Log.Format)
	}
	if f.Run.Parallel < 1 {
		return fmt.Errorf("%w: run.parallel must be >= 1, got %d", ErrInvalid, f.Run.Parallel)
	}
	if f.Run.MaxExpansions < 0 {
		return fmt.Errorf("%w: run.max_expansions must be >= 0, got %d", ErrInvalid, f.Run.MaxExpansions)
	}

	seen := make(map[string]bool, len(f.Scenarios))
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		ref := fmt.Sprintf("scenario[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: %s.name must not be empty", ErrInvalid, ref)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario name %q", ErrInvalid, s.Name)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks one scenario.
func (s *Scenario) Validate() error {
	if s.MaxExpansions < 0 {
		return s.invalid("max_expansions must be >= 0, got %d", s.MaxExpansions)
	}
	switch s.Kind {
	case KindGraph:
		return s.validateGraph()
	case KindGrid:
		return s.validateGrid()
	default:
		return s.invalid("kind must be grid or graph, got %q", s.Kind)
	}
}

func (s *Scenario) validateGraph() error {
	if s.Algorithm != AlgoUCS && s.Algorithm != AlgoBFS {
		return s.invalid("graph algorithm must be ucs or bfs, got %q", s.Algorithm)
	}
	if s.Start == "" || s.Goal == "" {
		return s.invalid("start and goal must be set")
	}
	if len(s.Edges) == 0 {
		return s.invalid("edges must not be empty")
	}
	return nil
}

func (s *Scenario) validateGrid() error {
	if s.Algorithm != AlgoAStar {
		return s.invalid("grid algorithm must be astar, got %q", s.Algorithm)
	}
	if len(s.Layout) == 0 && (s.Rows <= 0 || s.Cols <= 0) {
		return s.invalid("grid needs a layout or positive rows and cols")
	}
	if len(s.Layout) > 0 && len(s.Walls) > 0 {
		return s.invalid("layout and walls are mutually exclusive")
	}
	if len(s.StartCell) != 2 || len(s.GoalCell) != 2 {
		return s.invalid("start_cell and goal_cell must be [row, col]")
	}
	if _, err := parseConnectivity(s.Connectivity); err != nil {
		return s.invalid("%v", err)
	}
	if _, ok := heuristics[strings.ToLower(s.Heuristic)]; !ok {
		return s.invalid("unknown heuristic %q", s.Heuristic)
	}
	for i, w := range s.Walls {
		if w.Axis != "row" && w.Axis != "col" {
			return s.invalid("walls[%d].axis must be row or col, got %q", i, w.Axis)
		}
	}
	return nil
}

func (s *Scenario) invalid(format string, args ...any) error {
	return fmt.Errorf("%w: scenario %q: %s", ErrInvalid, s.Name, fmt.Sprintf(format, args...))
}
