// Package stability implements the CFL validator: it classifies a
// requested (scheme, dx, dt) combination against the equation-specific
// stability limit. It only reports; policy (abort or override) belongs
// to the engine.
package stability

import (
	"math"

	"github.com/san-kum/pdebench/internal/pde"
)

type Status int

const (
	Stable Status = iota
	Marginal
	Unstable
)

func (s Status) String() string {
	switch s {
	case Stable:
		return "stable"
	case Marginal:
		return "marginal"
	default:
		return "unstable"
	}
}

// Verdict is derived, never stored: DtMax is the largest stable timestep,
// Ratio is dt/DtMax.
type Verdict struct {
	DtMax  float64
	Ratio  float64
	Status Status
}

// Runs with Ratio in (1, marginalRatio] proceed with a warning.
const marginalRatio = 1.05

// Check computes the stability limit for the scheme and classifies dt
// against it. Implicit heat schemes are unconditionally stable. The
// verdict never clamps dt.
func Check(p pde.Params, s pde.Scheme, dx, dt float64) Verdict {
	dtMax := math.Inf(1)
	switch p.Equation {
	case pde.Heat:
		if s == pde.FTCS {
			dtMax = dx * dx / (2 * p.Alpha)
		}
	case pde.Advection:
		dtMax = dx / math.Abs(p.Speed)
	}

	v := Verdict{DtMax: dtMax, Ratio: dt / dtMax}
	switch {
	case v.Ratio <= 1.0:
		v.Status = Stable
	case v.Ratio <= marginalRatio:
		v.Status = Marginal
	default:
		v.Status = Unstable
	}
	return v
}
