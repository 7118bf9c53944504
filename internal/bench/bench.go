// Package bench is the benchmarking harness around the engine: repeated
// trials of one configuration with wall-time statistics, and parallel
// sweeps over independent configurations.
package bench

import (
	"context"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/pdebench/internal/engine"
)

// Stats aggregates step-loop wall time across repeated trials of the
// same configuration.
type Stats struct {
	Runs           int
	MeanSeconds    float64
	StdDevSeconds  float64
	MinSeconds     float64
	MaxSeconds     float64
	StepsPerSecond float64
}

// Trials runs the configuration n times and aggregates timing. The runs
// are identical by construction (the core is deterministic), so the
// spread measures machine noise, not the solver. Returns the last
// result for field/error inspection.
func Trials(ctx context.Context, cfg engine.Config, n int) (Stats, *engine.Result, error) {
	if n < 1 {
		n = 1
	}
	times := make([]float64, 0, n)
	var last *engine.Result

	for i := 0; i < n; i++ {
		result, err := engine.Run(ctx, cfg)
		if err != nil {
			return Stats{}, nil, err
		}
		times = append(times, result.WallSeconds)
		last = result
	}

	s := Stats{
		Runs:        n,
		MeanSeconds: stat.Mean(times, nil),
		MinSeconds:  floats.Min(times),
		MaxSeconds:  floats.Max(times),
	}
	if n > 1 {
		s.StdDevSeconds = stat.StdDev(times, nil)
	}
	if s.MeanSeconds > 0 {
		s.StepsPerSecond = float64(last.StepsTaken) / s.MeanSeconds
	}
	return s, last, nil
}

// Point is one entry in a parameter sweep.
type Point struct {
	Label  string
	Config engine.Config
}

// Outcome pairs a sweep point with its result or failure. A failed point
// does not stop the sweep; callers decide what to do with partial grids.
type Outcome struct {
	Point  Point
	Result *engine.Result
	Err    error
}

// Sweep runs independent configurations on a bounded worker pool. Safe to
// parallelize because each run owns its grid exclusively. Outcomes keep
// the input order regardless of completion order.
func Sweep(ctx context.Context, points []Point, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(points))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				result, err := engine.Run(ctx, points[idx].Config)
				outcomes[idx] = Outcome{Point: points[idx], Result: result, Err: err}
			}
		}()
	}

	for idx := range points {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
