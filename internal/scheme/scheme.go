package scheme

import (
	"github.com/san-kum/pdebench/internal/grid"
	"github.com/san-kum/pdebench/internal/pde"
)

// Stepper advances the grid by one timestep. Implementations mutate the
// grid in place through its scratch buffer; no state persists across
// steps beyond the field itself.
type Stepper interface {
	Name() string
	Step(g *grid.Grid, dt float64) error
}

// New builds the stepper for the requested scheme, validating the
// scheme/equation pairing and the equation parameters up front.
func New(s pde.Scheme, p pde.Params, bc pde.Boundary, g *grid.Grid) (Stepper, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !s.Compatible(p.Equation) {
		return nil, pde.Configf("scheme %s is not valid for the %s equation", s, p.Equation)
	}

	switch s {
	case pde.FTCS:
		return &ftcs{alpha: p.Alpha, bc: bc}, nil
	case pde.BackwardEuler:
		return newImplicitHeat(p.Alpha, bc, g.N, 1.0, pde.BackwardEuler.String()), nil
	case pde.CrankNicolson:
		return newImplicitHeat(p.Alpha, bc, g.N, 0.5, pde.CrankNicolson.String()), nil
	case pde.Upwind:
		return &upwind{speed: p.Speed, bc: bc}, nil
	case pde.LaxFriedrichs:
		return &laxFriedrichs{speed: p.Speed, bc: bc}, nil
	default:
		return nil, pde.Configf("unknown scheme: %d", s)
	}
}
