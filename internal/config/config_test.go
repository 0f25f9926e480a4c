package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Scheme != "forward" {
		t.Errorf("expected scheme forward, got %s", c.Scheme)
	}
	if c.GridSize < 3 {
		t.Errorf("default grid size must be usable, got %d", c.GridSize)
	}
	if c.Refinements < 2 {
		t.Errorf("default refinements must allow an order estimate, got %d", c.Refinements)
	}
	if c.Physical.Diffusivity <= 0 {
		t.Error("default diffusivity should be positive")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	data := []byte(`scheme: central
grid_size: 41
physical:
  source: 1.0e-9
  radius: 0.25
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.Scheme != "central" {
		t.Errorf("expected scheme central, got %s", c.Scheme)
	}
	if c.GridSize != 41 {
		t.Errorf("expected grid size 41, got %d", c.GridSize)
	}
	if c.Physical.Source != 1e-9 {
		t.Errorf("expected source 1e-9, got %g", c.Physical.Source)
	}
	if c.Physical.Radius != 0.25 {
		t.Errorf("expected radius 0.25, got %g", c.Physical.Radius)
	}
	// Omitted fields keep their defaults.
	if c.Physical.Boundary != Default().Physical.Boundary {
		t.Errorf("expected default boundary, got %g", c.Physical.Boundary)
	}
	if c.Refinements != Default().Refinements {
		t.Errorf("expected default refinements, got %d", c.Refinements)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	c := Default()
	c.Scheme = "central"
	c.GridSize = 99

	if err := Save(path, c); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Scheme != "central" || got.GridSize != 99 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	c := GetPreset("pillar")
	if c == nil {
		t.Fatal("expected preset, got nil")
	}
	if c.Physical.Radius != 0.5 {
		t.Errorf("expected radius 0.5, got %g", c.Physical.Radius)
	}

	// Callers get a copy.
	c.GridSize = 1
	if Presets["pillar"].GridSize == 1 {
		t.Error("mutating a returned preset changed the table")
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Error("expected sorted preset names")
		}
	}
}

func TestParams(t *testing.T) {
	c := Default()
	p := c.Params()

	if p.Source != c.Physical.Source || p.Diffusivity != c.Physical.Diffusivity ||
		p.Radius != c.Physical.Radius || p.Boundary != c.Physical.Boundary {
		t.Errorf("params do not mirror the physical section: %+v vs %+v", p, c.Physical)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default case params should validate: %v", err)
	}
}
