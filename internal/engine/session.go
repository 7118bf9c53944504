package engine

import (
	"github.com/san-kum/pdebench/internal/grid"
	"github.com/san-kum/pdebench/internal/pde"
	"github.com/san-kum/pdebench/internal/scheme"
	"github.com/san-kum/pdebench/internal/stability"
)

// Session is the validated, step-at-a-time form of a run: grid built,
// initial condition applied, stepper constructed, stability verdict
// computed. Run drives it to completion; the live view drives it one
// tick at a time.
type Session struct {
	cfg     Config
	grid    *grid.Grid
	stepper scheme.Stepper
	verdict stability.Verdict
	phase   Phase
	steps   int
}

// NewSession moves a configuration through Configured -> Validated.
// An Unstable verdict without AllowUnstable aborts here, before any
// stepping, with zero steps executed.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(cfg.NX, cfg.LX)
	if err != nil {
		return nil, err
	}
	if err := g.Initialize(cfg.Initial); err != nil {
		return nil, err
	}
	g.ApplyBoundary(cfg.Boundary)

	st, err := scheme.New(cfg.Scheme, cfg.Params, cfg.Boundary, g)
	if err != nil {
		return nil, err
	}

	verdict := stability.Check(cfg.Params, cfg.Scheme, g.Dx, cfg.Dt)
	if verdict.Status == stability.Unstable && !cfg.AllowUnstable {
		return nil, UnstableError{Verdict: verdict}
	}

	return &Session{
		cfg:     cfg,
		grid:    g,
		stepper: st,
		verdict: verdict,
		phase:   Validated,
	}, nil
}

// Step advances one timestep: scheme update, then boundary application,
// in that fixed order. A non-finite field aborts the session.
func (s *Session) Step() error {
	if err := s.stepper.Step(s.grid, s.cfg.Dt); err != nil {
		s.phase = Aborted
		if ne, ok := err.(pde.NumericalError); ok {
			ne.Step = s.steps
			return ne
		}
		return err
	}
	s.grid.ApplyBoundary(s.cfg.Boundary)
	s.steps++

	if !s.grid.Field().IsValid() {
		s.phase = Aborted
		return pde.NumericalError{Step: s.steps - 1, Reason: "non-finite field value"}
	}
	if s.Time() >= s.cfg.TMax {
		s.phase = Completed
	} else {
		s.phase = Running
	}
	return nil
}

func (s *Session) Field() pde.Field           { return s.grid.Field() }
func (s *Session) Grid() *grid.Grid           { return s.grid }
func (s *Session) Steps() int                 { return s.steps }
func (s *Session) Time() float64              { return float64(s.steps) * s.cfg.Dt }
func (s *Session) Verdict() stability.Verdict { return s.verdict }
func (s *Session) Phase() Phase               { return s.phase }
func (s *Session) SchemeName() string         { return s.stepper.Name() }
