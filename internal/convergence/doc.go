// Package convergence measures how fast the finite difference solver
// approaches the exact solution as the grid is refined.
//
//   - [ErrorNorms]: L1, L2 and L-infinity deviation between co-indexed profiles
//   - [Study]: refinement sweep against the closed-form solution
//   - [ManufacturedStudy]: refinement sweep against a manufactured quartic
//
// A [Record] carries per-level grid sizes, spacings and norms plus the
// observed two-grid order estimates between consecutive levels.
package convergence
