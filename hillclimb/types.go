package hillclimb

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors.
var (
	// ErrNilObjective indicates a nil objective function.
	ErrNilObjective = errors.New("hillclimb: objective is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("hillclimb: invalid option supplied")

	// ErrNonFinite indicates the objective returned NaN or ±Inf.
	ErrNonFinite = errors.New("hillclimb: objective returned a non-finite value")
)

// Objective is the function being maximized.
type Objective func(x float64) float64

// Result is the outcome of a climb.
type Result struct {
	// X is the final position, Value = objective(X).
	X, Value float64

	// Iterations counts accepted moves.
	Iterations int

	// Converged is true when the climb stopped because no neighbor improved,
	// false when it ran out of iterations.
	Converged bool
}

// Options configures a climb.
type Options struct {
	StepSize      float64
	MaxIterations int
	Logger        *slog.Logger

	err error
}

// Option is a functional option for Climb.
type Option func(*Options)

// DefaultOptions returns step 0.1, 100 iterations and a discarding logger.
func DefaultOptions() Options {
	return Options{
		StepSize:      0.1,
		MaxIterations: 100,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStepSize sets the neighbor distance. It must be positive and finite.
func WithStepSize(step float64) Option {
	return func(o *Options) {
		if !(step > 0) || math.IsInf(step, 0) {
			o.err = fmt.Errorf("%w: StepSize must be positive (%v)", ErrOptionViolation, step)
			return
		}
		o.StepSize = step
	}
}

// WithMaxIterations bounds the number of moves. It must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger receives one Debug record per accepted move.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
