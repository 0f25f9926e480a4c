package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pillarlab/radiff/internal/diffusion"
	"github.com/pillarlab/radiff/internal/solver"
)

const (
	DefaultGridSize    = 20
	DefaultStudyGrid   = 5
	DefaultRefinements = 8
)

// Case describes one solver run or convergence study: scheme, grid
// schedule, and physical constants. Cases load from yaml files; CLI flags
// override individual fields.
type Case struct {
	Scheme      string         `yaml:"scheme"`
	GridSize    int            `yaml:"grid_size"`
	StudyGrid   int            `yaml:"study_grid"`
	Refinements int            `yaml:"refinements"`
	Physical    PhysicalConfig `yaml:"physical"`
}

type PhysicalConfig struct {
	Source      float64 `yaml:"source"`
	Diffusivity float64 `yaml:"diffusivity"`
	Radius      float64 `yaml:"radius"`
	Boundary    float64 `yaml:"boundary"`
}

func Default() *Case {
	p := diffusion.Default()
	return &Case{
		Scheme:      solver.Forward.String(),
		GridSize:    DefaultGridSize,
		StudyGrid:   DefaultStudyGrid,
		Refinements: DefaultRefinements,
		Physical: PhysicalConfig{
			Source:      p.Source,
			Diffusivity: p.Diffusivity,
			Radius:      p.Radius,
			Boundary:    p.Boundary,
		},
	}
}

func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Case) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the physical section into solver parameters.
func (c *Case) Params() diffusion.Params {
	return diffusion.Params{
		Source:      c.Physical.Source,
		Diffusivity: c.Physical.Diffusivity,
		Radius:      c.Physical.Radius,
		Boundary:    c.Physical.Boundary,
	}
}
