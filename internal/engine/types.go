package engine

import (
	"fmt"

	"github.com/san-kum/pdebench/internal/pde"
	"github.com/san-kum/pdebench/internal/refsol"
	"github.com/san-kum/pdebench/internal/stability"
)

// Config is a fully-parsed run description. The engine re-validates only
// domain invariants (grid size, equation parameters, scheme pairing);
// turning raw flags or files into a Config is the boundary layers' job.
type Config struct {
	Params   pde.Params
	Scheme   pde.Scheme
	NX       int
	LX       float64
	Dt       float64
	TMax     float64
	Initial  pde.Initial
	Boundary pde.Boundary

	// AllowUnstable lets the caller override the refusal to run an
	// Unstable configuration. The verdict is still reported.
	AllowUnstable bool
}

func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if !c.Scheme.Compatible(c.Params.Equation) {
		return pde.Configf("scheme %s is not valid for the %s equation", c.Scheme, c.Params.Equation)
	}
	if c.Dt <= 0 {
		return pde.Configf("dt must be positive, got %g", c.Dt)
	}
	if c.TMax < 0 {
		return pde.Configf("tmax must be non-negative, got %g", c.TMax)
	}
	return c.Initial.Validate()
}

// Result is produced once per completed run and immutable afterwards.
// Error is nil when no closed-form reference exists for the configuration.
type Result struct {
	FinalField  pde.Field
	StepsTaken  int
	WallSeconds float64
	Error       *refsol.Norms
	Stability   stability.Verdict
}

// Phase tracks the run controller's state machine.
type Phase int

const (
	Configured Phase = iota
	Validated
	Running
	Completed
	Aborted
)

func (p Phase) String() string {
	switch p {
	case Configured:
		return "configured"
	case Validated:
		return "validated"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "aborted"
	}
}

// UnstableError reports the refusal to execute an Unstable configuration
// without an explicit override. The verdict travels with the error so the
// caller can still present it.
type UnstableError struct {
	Verdict stability.Verdict
}

func (e UnstableError) Error() string {
	return fmt.Sprintf("unstable configuration: dt exceeds stability limit by %.2fx (dtMax=%g)",
		e.Verdict.Ratio, e.Verdict.DtMax)
}
