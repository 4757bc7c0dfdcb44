package hillclimb

import (
	"fmt"
	"math"
)

// Climb maximizes obj starting at initial.
func Climb(obj Objective, initial float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if obj == nil {
		return Result{}, ErrNilObjective
	}

	eval := func(x float64) (float64, error) {
		v := obj(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: f(%v)=%v", ErrNonFinite, x, v)
		}
		return v, nil
	}

	cur := initial
	val, err := eval(cur)
	if err != nil {
		return Result{}, err
	}
	res := Result{X: cur, Value: val}

	for res.Iterations < cfg.MaxIterations {
		up, down := cur+cfg.StepSize, cur-cfg.StepSize
		upVal, err := eval(up)
		if err != nil {
			return res, err
		}
		downVal, err := eval(down)
		if err != nil {
			return res, err
		}

		next, nextVal := up, upVal
		if downVal > upVal {
			next, nextVal = down, downVal
		}
		if nextVal <= val {
			res.Converged = true
			break
		}

		cur, val = next, nextVal
		res.X, res.Value = cur, val
		res.Iterations++
		cfg.Logger.Debug("hill climb step", "iteration", res.Iterations, "x", cur, "value", val)
	}

	cfg.Logger.Debug("hill climb finished",
		"x", res.X,
		"value", res.Value,
		"iterations", res.Iterations,
		"converged", res.Converged,
	)
	return res, nil
}
