package config

import "sort"

// Presets are named ready-made cases for common runs.
var Presets = map[string]*Case{
	"pillar": {
		Scheme: "central", GridSize: 20, StudyGrid: 5, Refinements: 8,
		Physical: PhysicalConfig{Source: 2e-8, Diffusivity: 1e-10, Radius: 0.5, Boundary: 20.0},
	},
	"pillar-coarse": {
		Scheme: "forward", GridSize: 5, StudyGrid: 5, Refinements: 8,
		Physical: PhysicalConfig{Source: 2e-8, Diffusivity: 1e-10, Radius: 0.5, Boundary: 20.0},
	},
	"no-source": {
		Scheme: "central", GridSize: 20, StudyGrid: 5, Refinements: 4,
		Physical: PhysicalConfig{Source: 0, Diffusivity: 1e-10, Radius: 0.5, Boundary: 20.0},
	},
	"thin-column": {
		Scheme: "central", GridSize: 40, StudyGrid: 5, Refinements: 8,
		Physical: PhysicalConfig{Source: 2e-8, Diffusivity: 1e-10, Radius: 0.1, Boundary: 20.0},
	},
}

// GetPreset returns the named preset, or nil if it does not exist. Callers
// get a copy; mutating it does not change the preset table.
func GetPreset(name string) *Case {
	c, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *c
	return &cp
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
