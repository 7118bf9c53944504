package engine_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pdebench/internal/engine"
	"github.com/san-kum/pdebench/internal/pde"
	"github.com/san-kum/pdebench/internal/stability"
)

func heatConfig() engine.Config {
	return engine.Config{
		Params:   pde.HeatParams(0.01),
		Scheme:   pde.FTCS,
		NX:       101,
		LX:       1.0,
		Dt:       1e-4,
		TMax:     0.01,
		Initial:  pde.GaussianInitial(0.5, 0.05, 1.0),
		Boundary: pde.DirichletBoundary(0, 0),
	}
}

var _ = Describe("Run", func() {
	It("completes a stable heat run and reports errors against the reference", func() {
		result, err := engine.Run(context.Background(), heatConfig())
		Expect(err).NotTo(HaveOccurred())

		Expect(result.StepsTaken).To(Equal(100))
		Expect(result.Stability.Status).To(Equal(stability.Stable))
		Expect(result.FinalField).To(HaveLen(101))
		Expect(result.WallSeconds).To(BeNumerically(">=", 0))

		Expect(result.Error).NotTo(BeNil())
		Expect(result.Error.L2).To(BeNumerically("<", 1e-2))
		Expect(result.Error.LInf).To(BeNumerically(">=", result.Error.L2))
	})

	It("refuses an unstable advection configuration with zero steps executed", func() {
		// c=1, nx=3 on [0,1] -> dx=0.5, dtMax=0.5; dt=0.6 -> ratio 1.2.
		cfg := engine.Config{
			Params:   pde.AdvectionParams(1.0),
			Scheme:   pde.Upwind,
			NX:       3,
			LX:       1.0,
			Dt:       0.6,
			TMax:     6.0,
			Initial:  pde.SineInitial(1.0, 1.0),
			Boundary: pde.PeriodicBoundary(),
		}

		result, err := engine.Run(context.Background(), cfg)
		Expect(result).To(BeNil())

		var ue engine.UnstableError
		Expect(errors.As(err, &ue)).To(BeTrue())
		Expect(ue.Verdict.DtMax).To(BeNumerically("~", 0.5, 1e-12))
		Expect(ue.Verdict.Ratio).To(BeNumerically("~", 1.2, 1e-12))
		Expect(ue.Verdict.Status).To(Equal(stability.Unstable))
	})

	It("runs an unstable configuration when the caller overrides", func() {
		cfg := heatConfig()
		cfg.Dt = cfg.Dt * 1e4 // far past the FTCS limit
		cfg.TMax = cfg.Dt * 3
		cfg.AllowUnstable = true

		result, err := engine.Run(context.Background(), cfg)
		// Either it survives a few steps or blows up numerically; what it
		// must not do is refuse up front.
		if err != nil {
			var ue engine.UnstableError
			Expect(errors.As(err, &ue)).To(BeFalse())
		} else {
			Expect(result.Stability.Status).To(Equal(stability.Unstable))
		}
	})

	It("returns the initial field untouched when tmax is below one timestep", func() {
		// nx=5 on [0,1] -> dx=0.25, dtMax=3.125, so dt=1.0 is stable and
		// still exceeds the half-step horizon.
		cfg := heatConfig()
		cfg.NX = 5
		cfg.Dt = 1.0
		cfg.TMax = 0.5

		result, err := engine.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Stability.Status).To(Equal(stability.Stable))
		Expect(result.StepsTaken).To(BeZero())

		ic := cfg.Initial
		for i, v := range result.FinalField {
			x := cfg.LX / float64(cfg.NX-1) * float64(i)
			if i == 0 || i == cfg.NX-1 {
				Expect(v).To(Equal(0.0)) // pinned by the boundary
			} else {
				Expect(v).To(Equal(ic.Eval(x, cfg.LX)))
			}
		}
	})

	It("rounds partial horizons up to a whole number of steps", func() {
		cfg := heatConfig()
		cfg.Dt = 3e-4 // tmax=0.01 -> 33.3 steps -> 34
		result, err := engine.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.StepsTaken).To(Equal(34))
	})

	It("skips error reporting when no closed-form reference exists", func() {
		cfg := heatConfig()
		samples := make([]float64, cfg.NX)
		for i := range samples {
			samples[i] = float64(i % 7)
		}
		cfg.Initial = pde.SamplesInitial(samples)

		result, err := engine.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Error).To(BeNil())
	})

	It("aborts with a numerical error once the field turns non-finite", func() {
		cfg := heatConfig()
		cfg.Dt = 0.05 // ratio ~100 against dtMax=5e-4
		cfg.TMax = 50
		cfg.AllowUnstable = true

		result, err := engine.Run(context.Background(), cfg)
		Expect(result).To(BeNil(), "partial results must be discarded")

		var ne pde.NumericalError
		Expect(errors.As(err, &ne)).To(BeTrue(), "got %v", err)
	})

	It("rejects a scheme/equation mismatch before stepping", func() {
		cfg := heatConfig()
		cfg.Scheme = pde.Upwind

		_, err := engine.Run(context.Background(), cfg)
		var ce pde.ConfigError
		Expect(errors.As(err, &ce)).To(BeTrue())
	})

	It("rejects mismatched sample lengths before stepping", func() {
		cfg := heatConfig()
		cfg.Initial = pde.SamplesInitial([]float64{1, 2, 3})

		_, err := engine.Run(context.Background(), cfg)
		var ce pde.ConfigError
		Expect(errors.As(err, &ce)).To(BeTrue())
	})

	It("proceeds on a marginal verdict", func() {
		cfg := engine.Config{
			Params:   pde.AdvectionParams(1.0),
			Scheme:   pde.LaxFriedrichs,
			NX:       101,
			LX:       1.0,
			Dt:       0.0103, // dtMax = 0.01, ratio 1.03
			TMax:     0.103,
			Initial:  pde.SineInitial(1.0, 1.0),
			Boundary: pde.PeriodicBoundary(),
		}

		result, err := engine.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Stability.Status).To(Equal(stability.Marginal))
		Expect(result.StepsTaken).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Session", func() {
	It("moves through the run phases", func() {
		s, err := engine.NewSession(heatConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Phase()).To(Equal(engine.Validated))

		Expect(s.Step()).To(Succeed())
		Expect(s.Phase()).To(Equal(engine.Running))
		Expect(s.Steps()).To(Equal(1))
		Expect(s.Time()).To(BeNumerically("~", 1e-4, 1e-15))

		for s.Time() < 0.01 {
			Expect(s.Step()).To(Succeed())
		}
		Expect(s.Phase()).To(Equal(engine.Completed))
	})

	It("preserves Dirichlet values after every step", func() {
		cfg := heatConfig()
		cfg.Boundary = pde.DirichletBoundary(0.25, -0.5)
		s, err := engine.NewSession(cfg)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 20; i++ {
			Expect(s.Step()).To(Succeed())
			Expect(s.Field()[0]).To(Equal(0.25))
			Expect(s.Field()[cfg.NX-1]).To(Equal(-0.5))
		}
	})
})
