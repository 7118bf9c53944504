package pde

import (
	"fmt"
	"math"
)

type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum returns the discrete total of the field, used by mass-conservation
// checks for periodic advection.
func (f Field) Sum() float64 {
	total := 0.0
	for _, v := range f {
		total += v
	}
	return total
}

type Equation int

const (
	Heat Equation = iota
	Advection
)

func (e Equation) String() string {
	switch e {
	case Heat:
		return "heat"
	case Advection:
		return "advection"
	default:
		return "unknown"
	}
}

func ParseEquation(name string) (Equation, error) {
	switch name {
	case "heat":
		return Heat, nil
	case "advection":
		return Advection, nil
	default:
		return 0, Configf("unknown equation: %s", name)
	}
}

// Params is the tagged equation variant: Alpha is meaningful for Heat,
// Speed for Advection. Immutable for the duration of a run.
type Params struct {
	Equation Equation
	Alpha    float64
	Speed    float64
}

func HeatParams(alpha float64) Params {
	return Params{Equation: Heat, Alpha: alpha}
}

func AdvectionParams(speed float64) Params {
	return Params{Equation: Advection, Speed: speed}
}

func (p Params) Validate() error {
	switch p.Equation {
	case Heat:
		if p.Alpha <= 0 {
			return Configf("heat requires alpha > 0, got %g", p.Alpha)
		}
	case Advection:
		if p.Speed == 0 {
			return Configf("advection requires nonzero wave speed")
		}
	default:
		return Configf("unknown equation: %d", p.Equation)
	}
	return nil
}

type Scheme int

const (
	FTCS Scheme = iota
	BackwardEuler
	CrankNicolson
	Upwind
	LaxFriedrichs
)

func (s Scheme) String() string {
	switch s {
	case FTCS:
		return "ftcs"
	case BackwardEuler:
		return "implicit"
	case CrankNicolson:
		return "crank-nicolson"
	case Upwind:
		return "upwind"
	case LaxFriedrichs:
		return "lax-friedrichs"
	default:
		return "unknown"
	}
}

func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "ftcs", "explicit":
		return FTCS, nil
	case "implicit", "backward-euler":
		return BackwardEuler, nil
	case "crank-nicolson", "cn":
		return CrankNicolson, nil
	case "upwind":
		return Upwind, nil
	case "lax-friedrichs", "lf":
		return LaxFriedrichs, nil
	default:
		return 0, Configf("unknown scheme: %s", name)
	}
}

// Compatible reports whether the scheme applies to the given equation.
func (s Scheme) Compatible(e Equation) bool {
	switch s {
	case FTCS, BackwardEuler, CrankNicolson:
		return e == Heat
	case Upwind, LaxFriedrichs:
		return e == Advection
	default:
		return false
	}
}

// Implicit reports whether stepping requires a tridiagonal solve.
func (s Scheme) Implicit() bool {
	return s == BackwardEuler || s == CrankNicolson
}

type BoundaryKind int

const (
	Dirichlet BoundaryKind = iota
	Periodic
)

func (k BoundaryKind) String() string {
	if k == Periodic {
		return "periodic"
	}
	return "dirichlet"
}

// Boundary describes edge handling. Left and Right are only meaningful
// for Dirichlet.
type Boundary struct {
	Kind  BoundaryKind
	Left  float64
	Right float64
}

func DirichletBoundary(left, right float64) Boundary {
	return Boundary{Kind: Dirichlet, Left: left, Right: right}
}

func PeriodicBoundary() Boundary {
	return Boundary{Kind: Periodic}
}

func ParseBoundary(name string, left, right float64) (Boundary, error) {
	switch name {
	case "dirichlet":
		return DirichletBoundary(left, right), nil
	case "periodic":
		return PeriodicBoundary(), nil
	default:
		return Boundary{}, Configf("unknown boundary condition: %s", name)
	}
}

type InitialKind int

const (
	Gaussian InitialKind = iota
	Sine
	Step
	Samples
)

func (k InitialKind) String() string {
	switch k {
	case Gaussian:
		return "gaussian"
	case Sine:
		return "sine"
	case Step:
		return "step"
	case Samples:
		return "samples"
	default:
		return "unknown"
	}
}

// Initial is the tagged initial-condition variant. Fields are meaningful
// per kind: Gaussian uses Center/Width/Amplitude, Sine uses
// Frequency/Amplitude, Step uses Location/Left/Right, Samples carries the
// raw values.
type Initial struct {
	Kind      InitialKind
	Center    float64
	Width     float64
	Amplitude float64
	Frequency float64
	Location  float64
	Left      float64
	Right     float64
	Samples   []float64
}

func GaussianInitial(center, width, amplitude float64) Initial {
	return Initial{Kind: Gaussian, Center: center, Width: width, Amplitude: amplitude}
}

func SineInitial(frequency, amplitude float64) Initial {
	return Initial{Kind: Sine, Frequency: frequency, Amplitude: amplitude}
}

func StepInitial(location, left, right float64) Initial {
	return Initial{Kind: Step, Location: location, Left: left, Right: right}
}

func SamplesInitial(values []float64) Initial {
	return Initial{Kind: Samples, Samples: values}
}

func (ic Initial) Validate() error {
	switch ic.Kind {
	case Gaussian:
		if ic.Width <= 0 {
			return Configf("gaussian initial condition requires width > 0, got %g", ic.Width)
		}
	case Sine:
		if ic.Frequency <= 0 {
			return Configf("sine initial condition requires frequency > 0, got %g", ic.Frequency)
		}
	case Step, Samples:
	default:
		return Configf("unknown initial condition: %d", ic.Kind)
	}
	return nil
}

// PointEvaluable reports whether the profile can be evaluated at an
// arbitrary coordinate. Samples can only be read at its own grid points.
func (ic Initial) PointEvaluable() bool {
	return ic.Kind != Samples
}

// Eval returns the initial profile at coordinate x on a domain of the
// given length. Callers must not invoke it for Samples.
func (ic Initial) Eval(x, length float64) float64 {
	switch ic.Kind {
	case Gaussian:
		d := x - ic.Center
		return ic.Amplitude * math.Exp(-d*d/(2*ic.Width*ic.Width))
	case Sine:
		return ic.Amplitude * math.Sin(2*math.Pi*ic.Frequency*x/length)
	case Step:
		if x < ic.Location {
			return ic.Left
		}
		return ic.Right
	default:
		panic(fmt.Sprintf("Eval on non-evaluable initial condition %v", ic.Kind))
	}
}
