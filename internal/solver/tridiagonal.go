// Package solver provides direct tridiagonal solves for the implicit heat
// schemes: the Thomas algorithm for Dirichlet systems and its
// Sherman-Morrison cyclic variant for periodic domains.
package solver

import (
	"math"

	"github.com/san-kum/pdebench/internal/pde"
)

const machEps = 2.220446049250313e-16

// Thomas solves tridiagonal systems in O(n) with workspace allocated once
// at construction, so implicit steppers stay allocation-free per step.
type Thomas struct {
	n  int
	cp []float64 // modified super-diagonal
	dp []float64 // modified right-hand side
}

func NewThomas(n int) *Thomas {
	return &Thomas{
		n:  n,
		cp: make([]float64, n),
		dp: make([]float64, n),
	}
}

// Solve performs forward elimination and back substitution on the system
// defined by sub, diag and super (all length n; sub[0] and super[n-1] are
// ignored), writing the solution into x. Inputs are not mutated. A pivot
// within machine-epsilon scale of zero fails with a NumericalError.
func (t *Thomas) Solve(sub, diag, super, rhs, x []float64) error {
	n := t.n
	if len(sub) != n || len(diag) != n || len(super) != n || len(rhs) != n || len(x) != n {
		return pde.Configf("tridiagonal solve requires length-%d slices", n)
	}

	denom := diag[0]
	if nearZero(denom, diag[0], 0, super[0]) {
		return pde.NumericalError{Reason: "near-singular tridiagonal system (zero pivot at row 0)"}
	}
	t.cp[0] = super[0] / denom
	t.dp[0] = rhs[0] / denom

	for i := 1; i < n; i++ {
		denom = diag[i] - sub[i]*t.cp[i-1]
		if nearZero(denom, diag[i], sub[i], super[i]) {
			return pde.NumericalError{Reason: "near-singular tridiagonal system"}
		}
		t.cp[i] = super[i] / denom
		t.dp[i] = (rhs[i] - sub[i]*t.dp[i-1]) / denom
	}

	x[n-1] = t.dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = t.dp[i] - t.cp[i]*x[i+1]
	}
	return nil
}

// nearZero compares a pivot against machine epsilon scaled by the row
// magnitude, so the check survives badly scaled systems.
func nearZero(pivot, a, b, c float64) bool {
	scale := math.Abs(a) + math.Abs(b) + math.Abs(c)
	if scale < 1 {
		scale = 1
	}
	return math.Abs(pivot) <= machEps*scale
}

// Cyclic solves cyclic-tridiagonal systems, where row 0 couples to column
// n-1 (entry sub[0]) and row n-1 couples to column 0 (entry super[n-1]),
// via the Sherman-Morrison correction over a plain Thomas core.
type Cyclic struct {
	core *Thomas
	bb   []float64
	u    []float64
	z    []float64
}

func NewCyclic(n int) *Cyclic {
	return &Cyclic{
		core: NewThomas(n),
		bb:   make([]float64, n),
		u:    make([]float64, n),
		z:    make([]float64, n),
	}
}

func (c *Cyclic) Solve(sub, diag, super, rhs, x []float64) error {
	n := c.core.n
	if n < 3 {
		return pde.Configf("cyclic tridiagonal solve requires n >= 3, got %d", n)
	}
	if len(sub) != n || len(diag) != n || len(super) != n || len(rhs) != n || len(x) != n {
		return pde.Configf("cyclic tridiagonal solve requires length-%d slices", n)
	}

	alpha := super[n-1] // row n-1, col 0
	beta := sub[0]      // row 0, col n-1

	gamma := -diag[0]
	if gamma == 0 {
		gamma = -1
	}

	copy(c.bb, diag)
	c.bb[0] = diag[0] - gamma
	c.bb[n-1] = diag[n-1] - alpha*beta/gamma

	if err := c.core.Solve(sub, c.bb, super, rhs, x); err != nil {
		return err
	}

	for i := range c.u {
		c.u[i] = 0
	}
	c.u[0] = gamma
	c.u[n-1] = alpha
	if err := c.core.Solve(sub, c.bb, super, c.u, c.z); err != nil {
		return err
	}

	denom := 1 + c.z[0] + beta*c.z[n-1]/gamma
	if math.Abs(denom) <= machEps {
		return pde.NumericalError{Reason: "near-singular cyclic tridiagonal system"}
	}
	fact := (x[0] + beta*x[n-1]/gamma) / denom
	for i := 0; i < n; i++ {
		x[i] -= fact * c.z[i]
	}
	return nil
}
