package diffusion

import "fmt"

const (
	DefaultSource      = 2e-8  // S [mol/m3/s]
	DefaultDiffusivity = 1e-10 // D_eff [m2/s]
	DefaultRadius      = 0.5   // R [m]
	DefaultBoundary    = 20.0  // Ce [mol/m3]
)

// Params holds the physical constants of one diffusion problem. They are
// fixed for the duration of a solve.
type Params struct {
	Source      float64 // volumetric source strength S
	Diffusivity float64 // effective diffusivity D_eff
	Radius      float64 // pillar radius R
	Boundary    float64 // external concentration Ce at r=R
}

// Default returns the standard salt-pillar parameters.
func Default() Params {
	return Params{
		Source:      DefaultSource,
		Diffusivity: DefaultDiffusivity,
		Radius:      DefaultRadius,
		Boundary:    DefaultBoundary,
	}
}

func (p Params) Validate() error {
	if p.Source < 0 {
		return fmt.Errorf("source must be non-negative, got %g", p.Source)
	}
	if p.Diffusivity <= 0 {
		return fmt.Errorf("diffusivity must be positive, got %g", p.Diffusivity)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", p.Radius)
	}
	if p.Boundary <= 0 {
		return fmt.Errorf("boundary concentration must be positive, got %g", p.Boundary)
	}
	return nil
}
