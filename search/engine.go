package search

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Searcher holds the mutable state of one best-first search.
//
// Drive it with Step for step-by-step inspection, or Run to completion.
// The node table, closed flags and frontier belong to this Searcher alone.
type Searcher[N comparable] struct {
	space     Space[N]
	heuristic Heuristic[N]
	start     N
	goal      N
	opts      Options

	state    State
	table    map[N]record[N]
	frontier *Frontier[N]
	stats    Stats
	result   Result[N]
	err      error // sticky: once set, every Step returns it
	onExpand func(id N, g float64)
	began    time.Time
	finished bool
}

// New validates the inputs and returns a Searcher in StateInit.
//
// Validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. space must be non-nil (ErrNilSpace).
//  3. start and goal must pass space.Validate (ErrInvalidNode, wrapping the
//     Space's own error).
//
// A nil heuristic means Zero. A rejected search is still reported to the
// configured Observer, with StateInit and the error.
func New[N comparable](space Space[N], start, goal N, h Heuristic[N], opts ...Option) (*Searcher[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, reject(cfg, cfg.err)
	}
	if space == nil {
		return nil, reject(cfg, ErrNilSpace)
	}
	if h == nil {
		h = Zero[N]
	}
	if err := space.Validate(start); err != nil {
		return nil, reject(cfg, fmt.Errorf("%w: start %v: %w", ErrInvalidNode, start, err))
	}
	if err := space.Validate(goal); err != nil {
		return nil, reject(cfg, fmt.Errorf("%w: goal %v: %w", ErrInvalidNode, goal, err))
	}

	return &Searcher[N]{
		space:     space,
		heuristic: h,
		start:     start,
		goal:      goal,
		opts:      cfg,
		state:     StateInit,
		table:     make(map[N]record[N]),
		frontier:  NewFrontier[N](),
	}, nil
}

// Search runs a complete search. It is New followed by Run.
func Search[N comparable](space Space[N], start, goal N, h Heuristic[N], opts ...Option) (Result[N], error) {
	s, err := New(space, start, goal, h, opts...)
	if err != nil {
		return notFound[N](Stats{}), err
	}
	return s.Run()
}

// OnExpand registers fn to be called each time a node is closed, with the
// node's final cost from start.
func (s *Searcher[N]) OnExpand(fn func(id N, g float64)) {
	s.onExpand = fn
}

// State returns the current lifecycle state.
func (s *Searcher[N]) State() State { return s.state }

// Stats returns the counters so far.
func (s *Searcher[N]) Stats() Stats { return s.stats }

// Result returns the outcome once the state is terminal; before that it
// returns a not-found Result with the current counters.
func (s *Searcher[N]) Result() Result[N] {
	if !s.state.Terminal() {
		return notFound[N](s.stats)
	}
	return s.result
}

// Cost returns the best known cost from start to id, and whether id has
// been discovered.
func (s *Searcher[N]) Cost(id N) (float64, bool) {
	rec, ok := s.table[id]
	if !ok {
		return math.Inf(1), false
	}
	return rec.g, true
}

// Closed reports whether id has been expanded.
func (s *Searcher[N]) Closed(id N) bool {
	return s.table[id].closed
}

// Open returns the number of frontier entries, stale ones included.
func (s *Searcher[N]) Open() int { return s.frontier.Len() }

// Step performs one transition: seeding the frontier in StateInit, or one
// pop in StateRunning. It is a no-op in a terminal state. After an error,
// every call returns the same error.
//
// The Step that reaches a terminal state or an error reports the search to
// the Observer, so Step-driven and Run-driven searches are counted alike.
func (s *Searcher[N]) Step() (State, error) {
	if s.err != nil {
		return s.state, s.err
	}
	switch s.state {
	case StateInit:
		s.began = time.Now()
		s.seed()
	case StateRunning:
		s.advance()
	}
	if s.err != nil || s.state.Terminal() {
		s.finish(time.Since(s.began))
	}
	return s.state, s.err
}

// Run steps until a terminal state or an error.
func (s *Searcher[N]) Run() (Result[N], error) {
	for !s.state.Terminal() {
		if _, err := s.Step(); err != nil {
			return notFound[N](s.stats), err
		}
	}
	return s.result, nil
}

// seed records the start node and pushes it.
func (s *Searcher[N]) seed() {
	h := s.heuristic(s.start, s.goal)
	if invalidCost(h) {
		s.fail(fmt.Errorf("%w: heuristic(%v)=%v", ErrInvalidCost, s.start, h))
		return
	}
	s.table[s.start] = record[N]{g: 0, h: h}
	s.push(h, s.start)
	s.state = StateRunning
	s.opts.Logger.Debug("search started", "start", s.start, "goal", s.goal, "h", h)
}

// advance pops one frontier entry and handles it.
func (s *Searcher[N]) advance() {
	select {
	case <-s.opts.Ctx.Done():
		s.fail(s.opts.Ctx.Err())
		return
	default:
	}

	priority, id, err := s.frontier.PopMin()
	if errors.Is(err, ErrEmptyFrontier) {
		s.state = StateExhausted
		s.result = notFound[N](s.stats)
		return
	}

	rec := s.table[id]
	// Lazy deletion: a live entry carries exactly the node's current f.
	if rec.closed || priority > rec.f() {
		s.stats.StalePops++
		s.opts.Observer.OnStale()
		return
	}

	if id == s.goal {
		path, err := Reconstruct(id, s.parentOf, len(s.table))
		if err != nil {
			s.fail(err)
			return
		}
		s.state = StateFound
		s.result = Result[N]{Path: path, Cost: rec.g, Found: true, Stats: s.stats}
		return
	}

	if s.opts.MaxExpansions > 0 && s.stats.Expanded >= s.opts.MaxExpansions {
		s.fail(fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, s.stats.Expanded))
		return
	}

	rec.closed = true
	s.table[id] = rec
	s.stats.Expanded++
	s.opts.Observer.OnExpand()
	if s.onExpand != nil {
		s.onExpand(id, rec.g)
	}

	s.relax(id, rec.g)
}

// relax examines every arc out of id and records strict improvements.
func (s *Searcher[N]) relax(id N, g float64) {
	arcs, err := s.space.Neighbors(id)
	if err != nil {
		s.fail(fmt.Errorf("%w: neighbors of %v: %w", ErrInvalidNode, id, err))
		return
	}
	for _, a := range arcs {
		if invalidCost(a.Cost) {
			s.fail(fmt.Errorf("%w: step %v→%v cost=%v", ErrInvalidCost, id, a.To, a.Cost))
			return
		}
		nrec, seen := s.table[a.To]
		if seen && nrec.closed {
			continue
		}
		tentative := g + a.Cost
		if seen && tentative >= nrec.g {
			continue
		}
		if !seen {
			h := s.heuristic(a.To, s.goal)
			if invalidCost(h) {
				s.fail(fmt.Errorf("%w: heuristic(%v)=%v", ErrInvalidCost, a.To, h))
				return
			}
			nrec.h = h
		}
		nrec.g = tentative
		nrec.parent = id
		nrec.hasParent = true
		s.table[a.To] = nrec
		s.stats.Relaxed++
		s.push(nrec.f(), a.To)
	}
}

func (s *Searcher[N]) push(priority float64, id N) {
	s.frontier.Push(priority, id)
	s.stats.Pushed++
	s.opts.Observer.OnPush()
}

func (s *Searcher[N]) parentOf(id N) (N, bool) {
	rec := s.table[id]
	return rec.parent, rec.hasParent
}

func (s *Searcher[N]) fail(err error) {
	s.err = err
}

func (s *Searcher[N]) finish(elapsed time.Duration) {
	if s.finished {
		return
	}
	s.finished = true
	s.opts.Observer.OnFinish(s.state, s.stats, elapsed, s.err)
	if s.err != nil {
		s.opts.Logger.Debug("search failed",
			"state", s.state.String(),
			"expanded", s.stats.Expanded,
			"error", s.err,
		)
		return
	}
	s.opts.Logger.Debug("search finished",
		"state", s.state.String(),
		"cost", s.result.Cost,
		"path_len", len(s.result.Path),
		"expanded", s.stats.Expanded,
		"pushed", s.stats.Pushed,
		"stale", s.stats.StalePops,
		"elapsed", elapsed,
	)
}

// reject reports a search that New refused to start.
func reject(cfg Options, err error) error {
	cfg.Observer.OnFinish(StateInit, Stats{}, 0, err)
	cfg.Logger.Debug("search rejected", "error", err)
	return err
}

func invalidCost(c float64) bool {
	return c < 0 || math.IsNaN(c)
}
