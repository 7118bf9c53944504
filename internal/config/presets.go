package config

var Presets = map[string]map[string]*Config{
	"heat": {
		"diffuse": {
			Equation: "heat", Scheme: "ftcs", Alpha: 0.01,
			NX: 101, LX: 1.0, Dt: 2e-3, TMax: 1.0,
			Initial:  InitialConfig{Kind: "gaussian", Center: 0.5, Width: 0.05, Amplitude: 1.0},
			Boundary: BoundaryConfig{Kind: "dirichlet"},
		},
		"implicit-coarse": {
			Equation: "heat", Scheme: "implicit", Alpha: 0.01,
			NX: 51, LX: 1.0, Dt: 0.05, TMax: 2.0,
			Initial:  InitialConfig{Kind: "gaussian", Center: 0.5, Width: 0.08, Amplitude: 1.0},
			Boundary: BoundaryConfig{Kind: "dirichlet"},
		},
		"sine-decay": {
			Equation: "heat", Scheme: "crank-nicolson", Alpha: 0.05,
			NX: 129, LX: 1.0, Dt: 0.01, TMax: 1.0,
			Initial:  InitialConfig{Kind: "sine", Frequency: 1.0, Amplitude: 1.0},
			Boundary: BoundaryConfig{Kind: "periodic"},
		},
	},
	"advection": {
		"pulse": {
			Equation: "advection", Scheme: "upwind", Speed: 1.0,
			NX: 201, LX: 1.0, Dt: 4e-3, TMax: 1.0,
			Initial:  InitialConfig{Kind: "gaussian", Center: 0.25, Width: 0.05, Amplitude: 1.0},
			Boundary: BoundaryConfig{Kind: "periodic"},
		},
		"square-wave": {
			Equation: "advection", Scheme: "lax-friedrichs", Speed: 1.0,
			NX: 201, LX: 1.0, Dt: 4e-3, TMax: 1.0,
			Initial:  InitialConfig{Kind: "step", Location: 0.5, Left: 1.0, Right: 0.0},
			Boundary: BoundaryConfig{Kind: "periodic"},
		},
		"reverse": {
			Equation: "advection", Scheme: "upwind", Speed: -1.0,
			NX: 201, LX: 1.0, Dt: 4e-3, TMax: 1.0,
			Initial:  InitialConfig{Kind: "sine", Frequency: 2.0, Amplitude: 0.5},
			Boundary: BoundaryConfig{Kind: "periodic"},
		},
	},
}

func GetPreset(equation, preset string) *Config {
	equationPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	cfg, ok := equationPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(equation string) []string {
	equationPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(equationPresets))
	for name := range equationPresets {
		names = append(names, name)
	}
	return names
}
