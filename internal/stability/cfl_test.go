package stability

import (
	"math"
	"testing"

	"github.com/san-kum/pdebench/internal/pde"
)

func TestHeatExplicitLimit(t *testing.T) {
	// alpha=0.01, nx=5 on [0,1] -> dx=0.25, dtMax = 0.25²/(2*0.01) = 3.125.
	v := Check(pde.HeatParams(0.01), pde.FTCS, 0.25, 1.0)

	if math.Abs(v.DtMax-3.125) > 1e-12 {
		t.Errorf("dtMax: got %g, want 3.125", v.DtMax)
	}
	if math.Abs(v.Ratio-0.32) > 1e-12 {
		t.Errorf("ratio: got %g, want 0.32", v.Ratio)
	}
	if v.Status != Stable {
		t.Errorf("status: got %v, want stable", v.Status)
	}
}

func TestAdvectionUnstable(t *testing.T) {
	// c=1, dx=0.5, dt=0.6 -> dtMax=0.5, ratio=1.2.
	v := Check(pde.AdvectionParams(1.0), pde.Upwind, 0.5, 0.6)

	if math.Abs(v.DtMax-0.5) > 1e-12 {
		t.Errorf("dtMax: got %g, want 0.5", v.DtMax)
	}
	if math.Abs(v.Ratio-1.2) > 1e-12 {
		t.Errorf("ratio: got %g, want 1.2", v.Ratio)
	}
	if v.Status != Unstable {
		t.Errorf("status: got %v, want unstable", v.Status)
	}
}

func TestImplicitUnconditionallyStable(t *testing.T) {
	for _, s := range []pde.Scheme{pde.BackwardEuler, pde.CrankNicolson} {
		v := Check(pde.HeatParams(10.0), s, 1e-6, 1e6)
		if !math.IsInf(v.DtMax, 1) {
			t.Errorf("%s: dtMax should be +Inf, got %g", s, v.DtMax)
		}
		if v.Status != Stable {
			t.Errorf("%s: status should be stable, got %v", s, v.Status)
		}
	}
}

func TestMarginalBand(t *testing.T) {
	tests := []struct {
		name   string
		dt     float64
		status Status
	}{
		{"at the limit", 0.5, Stable},
		{"just over", 0.51, Marginal},
		{"at marginal edge", 0.525, Marginal},
		{"well over", 0.53, Unstable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Check(pde.AdvectionParams(1.0), pde.LaxFriedrichs, 0.5, tt.dt)
			if v.Status != tt.status {
				t.Errorf("dt=%g: got %v, want %v (ratio %g)", tt.dt, v.Status, tt.status, v.Ratio)
			}
		})
	}
}

func TestScaleInvariance(t *testing.T) {
	// Doubling both dx and dt leaves the advection ratio unchanged.
	dx, dt := 0.013, 0.0071
	v1 := Check(pde.AdvectionParams(-2.0), pde.Upwind, dx, dt)
	v2 := Check(pde.AdvectionParams(-2.0), pde.Upwind, 2*dx, 2*dt)

	if v1.Ratio != v2.Ratio {
		t.Errorf("ratio not scale-invariant: %g vs %g", v1.Ratio, v2.Ratio)
	}
	if v1.Status != v2.Status {
		t.Errorf("status not scale-invariant: %v vs %v", v1.Status, v2.Status)
	}
}

func TestNegativeSpeedUsesMagnitude(t *testing.T) {
	v := Check(pde.AdvectionParams(-1.0), pde.Upwind, 0.5, 0.25)
	if math.Abs(v.DtMax-0.5) > 1e-12 {
		t.Errorf("dtMax for c<0: got %g, want 0.5", v.DtMax)
	}
	if v.Status != Stable {
		t.Errorf("status: got %v, want stable", v.Status)
	}
}
