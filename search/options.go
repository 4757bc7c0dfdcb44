package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Observer receives engine events. Implementations must be cheap: the
// callbacks run inside the search loop.
type Observer interface {
	OnPush()
	OnExpand()
	OnStale()
	// OnFinish is called once per search: when New rejects its inputs
	// (state StateInit, err set), or when Step first reaches a terminal
	// state or an error.
	OnFinish(state State, stats Stats, elapsed time.Duration, err error)
}

// NoopObserver ignores every event.
type NoopObserver struct{}

func (NoopObserver) OnPush()                                     {}
func (NoopObserver) OnExpand()                                   {}
func (NoopObserver) OnStale()                                    {}
func (NoopObserver) OnFinish(State, Stats, time.Duration, error) {}

// Options holds engine configuration.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked before every pop.
	Ctx context.Context

	// MaxExpansions, if > 0, fails the search with ErrBudgetExceeded once
	// this many nodes have been expanded without reaching a terminal state.
	MaxExpansions int

	// Logger receives debug records at start and finish.
	Logger *slog.Logger

	// Observer receives counters.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// Option configures the engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// DefaultOptions returns background context, no budget, a discarding
// logger and a no-op observer.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer: NoopObserver{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer. A nil observer keeps the default.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}
