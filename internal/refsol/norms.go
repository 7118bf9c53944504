package refsol

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/pdebench/internal/pde"
)

// Norms holds the pointwise deviation from a reference field:
// L2 = sqrt(sum((sim-ref)²)/N), LInf = max|sim-ref|.
type Norms struct {
	L2   float64
	LInf float64
}

func ComputeNorms(sim, ref pde.Field) Norms {
	return Norms{
		L2:   floats.Distance(sim, ref, 2) / math.Sqrt(float64(len(sim))),
		LInf: floats.Distance(sim, ref, math.Inf(1)),
	}
}
