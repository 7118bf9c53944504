package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pdebench/internal/engine"
	"github.com/san-kum/pdebench/internal/pde"
)

const (
	DefaultNX   = 101
	DefaultLX   = 1.0
	DefaultDt   = 1e-5
	DefaultTMax = 0.01
)

type Config struct {
	Equation      string         `yaml:"equation"`
	Scheme        string         `yaml:"scheme"`
	Alpha         float64        `yaml:"alpha"`
	Speed         float64        `yaml:"speed"`
	NX            int            `yaml:"nx"`
	LX            float64        `yaml:"lx"`
	Dt            float64        `yaml:"dt"`
	TMax          float64        `yaml:"tmax"`
	Initial       InitialConfig  `yaml:"initial"`
	Boundary      BoundaryConfig `yaml:"boundary"`
	AllowUnstable bool           `yaml:"allow_unstable"`
}

type InitialConfig struct {
	Kind      string    `yaml:"kind"`
	Center    float64   `yaml:"center"`
	Width     float64   `yaml:"width"`
	Amplitude float64   `yaml:"amplitude"`
	Frequency float64   `yaml:"frequency"`
	Location  float64   `yaml:"location"`
	Left      float64   `yaml:"left"`
	Right     float64   `yaml:"right"`
	Samples   []float64 `yaml:"samples,omitempty"`
}

type BoundaryConfig struct {
	Kind  string  `yaml:"kind"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

func DefaultConfig() *Config {
	return &Config{
		Equation: "heat",
		Scheme:   "ftcs",
		Alpha:    0.01,
		Speed:    1.0,
		NX:       DefaultNX,
		LX:       DefaultLX,
		Dt:       DefaultDt,
		TMax:     DefaultTMax,
		Initial: InitialConfig{
			Kind:      "gaussian",
			Center:    0.5,
			Width:     0.05,
			Amplitude: 1.0,
			Frequency: 1.0,
			Location:  0.5,
			Right:     1.0,
		},
		Boundary: BoundaryConfig{Kind: "dirichlet"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Engine translates the file/flag representation into the core's typed
// configuration. Name resolution failures surface as ConfigErrors.
func (c *Config) Engine() (engine.Config, error) {
	eq, err := pde.ParseEquation(c.Equation)
	if err != nil {
		return engine.Config{}, err
	}
	sch, err := pde.ParseScheme(c.Scheme)
	if err != nil {
		return engine.Config{}, err
	}
	bc, err := pde.ParseBoundary(c.Boundary.Kind, c.Boundary.Left, c.Boundary.Right)
	if err != nil {
		return engine.Config{}, err
	}
	ic, err := c.initial()
	if err != nil {
		return engine.Config{}, err
	}

	var params pde.Params
	if eq == pde.Heat {
		params = pde.HeatParams(c.Alpha)
	} else {
		params = pde.AdvectionParams(c.Speed)
	}

	return engine.Config{
		Params:        params,
		Scheme:        sch,
		NX:            c.NX,
		LX:            c.LX,
		Dt:            c.Dt,
		TMax:          c.TMax,
		Initial:       ic,
		Boundary:      bc,
		AllowUnstable: c.AllowUnstable,
	}, nil
}

func (c *Config) initial() (pde.Initial, error) {
	ic := c.Initial
	switch ic.Kind {
	case "gaussian":
		return pde.GaussianInitial(ic.Center, ic.Width, ic.Amplitude), nil
	case "sine":
		return pde.SineInitial(ic.Frequency, ic.Amplitude), nil
	case "step":
		return pde.StepInitial(ic.Location, ic.Left, ic.Right), nil
	case "samples":
		return pde.SamplesInitial(ic.Samples), nil
	default:
		return pde.Initial{}, pde.Configf("unknown initial condition: %s", ic.Kind)
	}
}
