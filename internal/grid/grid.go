package grid

import (
	"github.com/san-kum/pdebench/internal/pde"
)

// Grid owns the discretized domain [0, Length] and the current field,
// plus a scratch buffer so schemes can compute the next state without
// aliasing. Both buffers are allocated once; stepping swaps them.
type Grid struct {
	N      int
	Length float64
	Dx     float64

	field   pde.Field
	scratch pde.Field
}

func New(n int, length float64) (*Grid, error) {
	if n < 3 {
		return nil, pde.Configf("grid requires at least 3 points, got %d", n)
	}
	if length <= 0 {
		return nil, pde.Configf("domain length must be positive, got %g", length)
	}
	return &Grid{
		N:       n,
		Length:  length,
		Dx:      length / float64(n-1),
		field:   make(pde.Field, n),
		scratch: make(pde.Field, n),
	}, nil
}

// X returns the coordinate of sample i.
func (g *Grid) X(i int) float64 {
	return g.Dx * float64(i)
}

// Field is the current state. Schemes write the next state into Scratch
// and call Swap; nothing else may hold the returned slice across a step.
func (g *Grid) Field() pde.Field   { return g.field }
func (g *Grid) Scratch() pde.Field { return g.scratch }

func (g *Grid) Swap() {
	g.field, g.scratch = g.scratch, g.field
}

// Initialize fills the field from the initial condition. For Samples the
// provided sequence length must equal N.
func (g *Grid) Initialize(ic pde.Initial) error {
	if err := ic.Validate(); err != nil {
		return err
	}
	if ic.Kind == pde.Samples {
		if len(ic.Samples) != g.N {
			return pde.Configf("initial samples length %d does not match grid size %d", len(ic.Samples), g.N)
		}
		copy(g.field, ic.Samples)
		return nil
	}
	for i := 0; i < g.N; i++ {
		g.field[i] = ic.Eval(g.X(i), g.Length)
	}
	return nil
}

// ApplyBoundary enforces the boundary condition on the current field.
// Dirichlet overwrites the edge samples with the fixed values. Periodic
// needs no correction here: the stencils read their edge neighbors
// modulo N, so the interior update already covers indices 0 and N-1.
func (g *Grid) ApplyBoundary(bc pde.Boundary) {
	if bc.Kind == pde.Dirichlet {
		g.field[0] = bc.Left
		g.field[g.N-1] = bc.Right
	}
}
