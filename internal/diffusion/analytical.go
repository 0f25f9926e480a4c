// Package diffusion describes steady-state salt diffusion in a cylindrical
// pillar with a uniform volumetric source:
//
//	D_eff * (d2C/dr2 + (1/r)*dC/dr) = S,   0 < r < R
//	dC/dr(0) = 0   (symmetry)
//	C(R) = Ce      (Dirichlet)
//
// The closed-form solution is the quadratic
//
//	C(r) = Ce + S/(4*D_eff) * (r^2 - R^2)
//
// which satisfies both boundary conditions exactly by construction.
package diffusion

// At evaluates the closed-form concentration at a single radius.
func At(r float64, p Params) float64 {
	return p.Boundary + p.Source/(4*p.Diffusivity)*(r*r-p.Radius*p.Radius)
}

// Profile evaluates the closed-form concentration at each radius in r,
// returning a co-indexed slice.
func Profile(r []float64, p Params) []float64 {
	c := make([]float64, len(r))
	for i, ri := range r {
		c[i] = At(ri, p)
	}
	return c
}
