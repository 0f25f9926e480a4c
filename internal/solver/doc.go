// Package solver assembles and solves the finite difference system for the
// steady-state radial diffusion problem.
//
// Each call to [Solve] builds a fresh dense linear system for the requested
// grid size, applies the mixed Neumann/Dirichlet boundary rows, and performs
// an exact direct solve. The system is owned by the call and discarded when
// it returns, so solves are independent and safe to run concurrently.
//
//   - [Forward]: first-order forward difference on the advective term
//   - [Central]: second-order central difference on the advective term
//
// The symmetry row at r=0 uses a one-sided stencil matching the interior
// scheme's order, so the observed convergence order is set by the advective
// stencil alone.
package solver
