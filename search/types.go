package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilSpace indicates a nil Space.
	ErrNilSpace = errors.New("search: space is nil")

	// ErrInvalidNode indicates a start or goal the Space rejects, or a
	// neighbor query the Space could not answer. It wraps the Space's error.
	ErrInvalidNode = errors.New("search: invalid node")

	// ErrInvalidCost indicates a negative or NaN step cost or heuristic value.
	ErrInvalidCost = errors.New("search: invalid cost")

	// ErrEmptyFrontier is returned by Frontier.PopMin when no entries remain.
	ErrEmptyFrontier = errors.New("search: frontier is empty")

	// ErrBrokenChain indicates a parent chain that loops or exceeds its bound.
	ErrBrokenChain = errors.New("search: broken parent chain")

	// ErrBudgetExceeded indicates the expansion budget ran out before a
	// terminal state was reached.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Arc is one outgoing move: the neighbor and the non-negative cost to reach it.
type Arc[N comparable] struct {
	To   N
	Cost float64
}

// Space is the search domain.
//
// Validate reports whether id belongs to the domain; the engine calls it for
// start and goal before any work. Neighbors lists the moves out of id in a
// deterministic order.
type Space[N comparable] interface {
	Validate(id N) error
	Neighbors(id N) ([]Arc[N], error)
}

// Heuristic estimates the remaining cost from a node to the goal. It must be
// non-negative, and admissible for the result to be optimal.
type Heuristic[N comparable] func(from, goal N) float64

// Zero is the constant-zero heuristic. It turns the engine into Uniform Cost
// Search.
func Zero[N comparable](_, _ N) float64 { return 0 }

// State is the engine's lifecycle phase.
type State int

const (
	StateInit State = iota
	StateRunning
	StateFound
	StateExhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further Step can change the state.
func (s State) Terminal() bool {
	return s == StateFound || s == StateExhausted
}

// Stats counts engine work for one search.
type Stats struct {
	Expanded  int // nodes closed and expanded
	Pushed    int // frontier pushes, including the start
	Relaxed   int // neighbor cost improvements (first discovery included)
	StalePops int // popped entries discarded as stale
}

// Result is the outcome of a search. When Found is false, Path is nil and
// Cost is +Inf.
type Result[N comparable] struct {
	Path  []N
	Cost  float64
	Found bool
	Stats Stats
}

func notFound[N comparable](stats Stats) Result[N] {
	return Result[N]{Cost: math.Inf(1), Stats: stats}
}

// record is the authoritative per-node entry of the node table.
type record[N comparable] struct {
	g, h      float64
	parent    N
	hasParent bool
	closed    bool
}

func (r record[N]) f() float64 { return r.g + r.h }
