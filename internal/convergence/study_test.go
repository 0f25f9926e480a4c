package convergence

import (
	"math"
	"testing"

	"github.com/pillarlab/radiff/internal/diffusion"
	"github.com/pillarlab/radiff/internal/solver"
)

func TestGridSizes(t *testing.T) {
	got := GridSizes(5, 4)
	want := []int{5, 9, 17, 33}

	if len(got) != len(want) {
		t.Fatalf("expected %d sizes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("size %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestStudyValidation(t *testing.T) {
	p := diffusion.Default()

	if _, err := Study(solver.Forward, 2, 4, p); err == nil {
		t.Error("expected error for initial grid below minimum")
	}
	if _, err := Study(solver.Forward, 5, 1, p); err == nil {
		t.Error("expected error for a single refinement level")
	}

	bad := p
	bad.Radius = 0
	if _, err := Study(solver.Forward, 5, 4, bad); err == nil {
		t.Error("expected error for invalid params")
	}
}

func TestStudyRecordShape(t *testing.T) {
	rec, err := Study(solver.Forward, 5, 4, diffusion.Default())
	if err != nil {
		t.Fatal(err)
	}

	if rec.Levels() != 4 {
		t.Fatalf("expected 4 levels, got %d", rec.Levels())
	}
	for _, s := range [][]float64{rec.Dr, rec.L1, rec.L2, rec.Linf} {
		if len(s) != 4 {
			t.Errorf("expected 4 entries per level slice, got %d", len(s))
		}
	}
	for _, s := range [][]float64{rec.OrderL1, rec.OrderL2, rec.OrderLinf} {
		if len(s) != 3 {
			t.Errorf("expected 3 order entries, got %d", len(s))
		}
	}
	for k := 1; k < rec.Levels(); k++ {
		if math.Abs(rec.Dr[k-1]/rec.Dr[k]-2) > 1e-12 {
			t.Errorf("expected spacing to halve between levels %d and %d", k-1, k)
		}
	}
}

func TestStudyForwardFirstOrder(t *testing.T) {
	rec, err := Study(solver.Forward, 5, 8, diffusion.Default())
	if err != nil {
		t.Fatal(err)
	}

	for _, orders := range [][]float64{rec.OrderL1, rec.OrderL2, rec.OrderLinf} {
		for _, p := range orders[len(orders)-3:] {
			if math.Abs(p-1.0) > 0.1 {
				t.Errorf("expected observed order near 1.0, got %g", p)
			}
		}
	}
}

func TestStudyCentralNodallyExact(t *testing.T) {
	// The constant-source solution is a quadratic, which the central
	// stencils reproduce exactly: every level's error is roundoff and the
	// order estimates carry no signal.
	rec, err := Study(solver.Central, 5, 8, diffusion.Default())
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k < rec.Levels(); k++ {
		if rec.Linf[k] > 1e-8 {
			t.Errorf("level %d: expected roundoff-level error, got %g", k, rec.Linf[k])
		}
	}
}

func TestStudyZeroSourceFlat(t *testing.T) {
	p := diffusion.Default()
	p.Source = 0

	rec, err := Study(solver.Central, 5, 3, p)
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k < rec.Levels(); k++ {
		if rec.Linf[k] > 1e-12 {
			t.Errorf("level %d: expected flat profile at Ce, got error %g", k, rec.Linf[k])
		}
	}
	// A level at exactly zero error leaves the adjacent order estimates NaN.
	for k := 0; k < rec.Levels()-1; k++ {
		if (rec.L2[k] == 0 || rec.L2[k+1] == 0) && !math.IsNaN(rec.OrderL2[k]) {
			t.Errorf("expected NaN order next to a zero-error level, got %g", rec.OrderL2[k])
		}
	}
}

func TestObservedOrdersDegenerate(t *testing.T) {
	dr := []float64{0.125, 0.0625, 0.03125}

	orders := observedOrders([]float64{0, 1e-3, 0}, dr)
	if !math.IsNaN(orders[0]) || !math.IsNaN(orders[1]) {
		t.Errorf("expected NaN orders around zero-error levels, got %v", orders)
	}

	orders = observedOrders([]float64{4e-2, 1e-2, 2.5e-3}, dr)
	for _, p := range orders {
		if math.Abs(p-2.0) > 1e-12 {
			t.Errorf("expected exact order 2 for a quartered error, got %g", p)
		}
	}
}

func TestManufacturedStudyOrders(t *testing.T) {
	tests := []struct {
		scheme solver.Scheme
		want   float64
	}{
		{solver.Forward, 1.0},
		{solver.Central, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			rec, err := ManufacturedStudy(tt.scheme, 5, 8, diffusion.Default())
			if err != nil {
				t.Fatal(err)
			}

			for _, orders := range [][]float64{rec.OrderL1, rec.OrderL2, rec.OrderLinf} {
				for _, p := range orders[len(orders)-2:] {
					if math.Abs(p-tt.want) > 0.1 {
						t.Errorf("expected observed order near %g, got %g", tt.want, p)
					}
				}
			}
		})
	}
}

func TestStudyLevelsIndependent(t *testing.T) {
	// Two identical studies must agree exactly: levels share no state.
	a, err := Study(solver.Forward, 5, 5, diffusion.Default())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Study(solver.Forward, 5, 5, diffusion.Default())
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k < a.Levels(); k++ {
		if a.L2[k] != b.L2[k] {
			t.Errorf("level %d: repeated study differs (%g vs %g)", k, a.L2[k], b.L2[k])
		}
	}
}
