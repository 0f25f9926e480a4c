package convergence

import (
	"fmt"
	"math"
)

// Norms bundles the three deviation norms between a numerical and an
// analytical profile.
type Norms struct {
	L1   float64
	L2   float64
	Linf float64
}

// ErrorNorms computes the L1, L2 and L-infinity deviation between two
// co-indexed sequences of equal length.
//
// L1 and L2 are averaged over the raw point count, boundaries included. That
// makes them grid-size dependent rather than mesh independent, but the
// observed-order estimates are calibrated against exactly this
// normalization; do not switch to a quadrature-weighted norm.
func ErrorNorms(numerical, analytical []float64) (Norms, error) {
	if len(numerical) != len(analytical) {
		return Norms{}, fmt.Errorf("length mismatch: %d numerical vs %d analytical points",
			len(numerical), len(analytical))
	}
	if len(numerical) == 0 {
		return Norms{}, fmt.Errorf("empty sequences")
	}

	var sum, sumSq, maxAbs float64
	for i := range numerical {
		e := math.Abs(numerical[i] - analytical[i])
		sum += e
		sumSq += e * e
		if e > maxAbs {
			maxAbs = e
		}
	}

	n := float64(len(numerical))
	return Norms{
		L1:   sum / n,
		L2:   math.Sqrt(sumSq / n),
		Linf: maxAbs,
	}, nil
}
