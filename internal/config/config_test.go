package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/pdebench/internal/pde"
	"github.com/san-kum/pdebench/internal/stability"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Equation = "advection"
	cfg.Scheme = "lax-friedrichs"
	cfg.Speed = -2.0
	cfg.NX = 257
	cfg.Dt = 5e-4
	cfg.Initial = InitialConfig{Kind: "step", Location: 0.3, Left: 1.0, Right: -1.0}
	cfg.Boundary = BoundaryConfig{Kind: "periodic"}
	cfg.AllowUnstable = true

	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Equation != cfg.Equation || loaded.Scheme != cfg.Scheme {
		t.Errorf("equation/scheme: got %s/%s, want %s/%s",
			loaded.Equation, loaded.Scheme, cfg.Equation, cfg.Scheme)
	}
	if loaded.Speed != cfg.Speed || loaded.NX != cfg.NX || loaded.Dt != cfg.Dt {
		t.Errorf("numeric fields did not survive: %+v", loaded)
	}
	if loaded.Initial.Kind != "step" || loaded.Initial.Location != 0.3 ||
		loaded.Initial.Left != 1.0 || loaded.Initial.Right != -1.0 {
		t.Errorf("initial: got %+v, want %+v", loaded.Initial, cfg.Initial)
	}
	if loaded.Boundary != cfg.Boundary {
		t.Errorf("boundary: got %+v, want %+v", loaded.Boundary, cfg.Boundary)
	}
	if !loaded.AllowUnstable {
		t.Error("allow_unstable flag lost")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("equation: advection\nscheme: upwind\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.NX != DefaultNX || cfg.LX != DefaultLX || cfg.Dt != DefaultDt || cfg.TMax != DefaultTMax {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Equation != "advection" || cfg.Scheme != "upwind" {
		t.Errorf("explicit values overridden: %+v", cfg)
	}
}

func TestEngineTranslation(t *testing.T) {
	cfg := DefaultConfig()
	ec, err := cfg.Engine()
	if err != nil {
		t.Fatalf("translation failed: %v", err)
	}
	if ec.Params.Equation != pde.Heat || ec.Scheme != pde.FTCS {
		t.Errorf("wrong core types: %s/%s", ec.Params.Equation, ec.Scheme)
	}
	if ec.Params.Alpha != cfg.Alpha {
		t.Errorf("alpha: got %g, want %g", ec.Params.Alpha, cfg.Alpha)
	}
	if err := ec.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestEngineTranslationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown equation", func(c *Config) { c.Equation = "burgers" }},
		{"unknown scheme", func(c *Config) { c.Scheme = "leapfrog" }},
		{"unknown boundary", func(c *Config) { c.Boundary.Kind = "neumann" }},
		{"unknown initial", func(c *Config) { c.Initial.Kind = "ramp" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if _, err := cfg.Engine(); err == nil {
				t.Error("expected translation error")
			}
		})
	}
}

func TestPresetsTranslateAndValidate(t *testing.T) {
	for equation, presets := range Presets {
		for name, preset := range presets {
			t.Run(equation+"/"+name, func(t *testing.T) {
				ec, err := preset.Engine()
				if err != nil {
					t.Fatalf("translation failed: %v", err)
				}
				if err := ec.Validate(); err != nil {
					t.Fatalf("invalid preset: %v", err)
				}
				dx := ec.LX / float64(ec.NX-1)
				v := stability.Check(ec.Params, ec.Scheme, dx, ec.Dt)
				if v.Status == stability.Unstable {
					t.Errorf("preset ships unstable: ratio %.3f", v.Ratio)
				}
			})
		}
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("heat", "diffuse") == nil {
		t.Error("known preset not found")
	}
	if GetPreset("heat", "nope") != nil {
		t.Error("unknown preset resolved")
	}
	if GetPreset("wave", "diffuse") != nil {
		t.Error("unknown equation resolved")
	}
	if names := ListPresets("advection"); len(names) != 3 {
		t.Errorf("advection presets: got %d, want 3", len(names))
	}
}
