// Package engine orchestrates a single run: validate the configuration,
// drive the step loop, time it, and evaluate errors against an analytic
// reference when one exists. Each run owns its grid exclusively; runs
// share no mutable state, which is what makes sweeping them in parallel
// safe for the benchmarking harness.
package engine

import (
	"context"
	"math"
	"time"

	"github.com/san-kum/pdebench/internal/refsol"
)

// Run executes the configuration to completion and returns the immutable
// result. On an Unstable verdict without override it returns an
// UnstableError with zero steps executed; on a mid-run numerical failure
// the partial state is discarded.
//
// Timing wraps only the step loop: initialization and error evaluation
// are excluded from WallSeconds.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	s, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	// The loop is bounded before it starts. A horizon shorter than one
	// timestep takes zero steps and returns the initial field untouched.
	steps := 0
	if cfg.TMax >= cfg.Dt {
		steps = int(math.Ceil(cfg.TMax / cfg.Dt))
	}

	start := time.Now()
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := s.Step(); err != nil {
			return nil, err
		}
	}
	elapsed := time.Since(start)
	// Zero-step runs never enter Step, so mark completion here too.
	s.phase = Completed

	result := &Result{
		FinalField:  s.Field().Clone(),
		StepsTaken:  s.Steps(),
		WallSeconds: elapsed.Seconds(),
		Stability:   s.Verdict(),
	}

	if ref, ok := refsol.Reference(cfg.Params, cfg.Initial, cfg.Boundary, s.Grid(), s.Time()); ok {
		norms := refsol.ComputeNorms(result.FinalField, ref)
		result.Error = &norms
	}
	return result, nil
}
