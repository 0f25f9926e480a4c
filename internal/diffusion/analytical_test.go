package diffusion

import (
	"math"
	"testing"
)

func TestProfileDirichletBoundary(t *testing.T) {
	p := Default()
	c := Profile([]float64{p.Radius}, p)

	if math.Abs(c[0]-p.Boundary) > 1e-12 {
		t.Errorf("expected C(R)=%g, got %g", p.Boundary, c[0])
	}
}

func TestProfileCenterValue(t *testing.T) {
	p := Default()
	expected := p.Boundary - p.Source*p.Radius*p.Radius/(4*p.Diffusivity)

	c := Profile([]float64{0}, p)
	if math.Abs(c[0]-expected) > 1e-12 {
		t.Errorf("expected C(0)=%g, got %g", expected, c[0])
	}
}

func TestProfileSymmetry(t *testing.T) {
	// dC/dr must vanish at the centerline.
	p := Default()
	dr := 1e-8

	c := Profile([]float64{0, dr}, p)
	slope := (c[1] - c[0]) / dr
	if math.Abs(slope) > 1e-3 {
		t.Errorf("expected zero slope at r=0, got %g", slope)
	}
}

func TestProfileCoIndexed(t *testing.T) {
	p := Default()
	r := []float64{0, 0.1, 0.25, p.Radius}

	c := Profile(r, p)
	if len(c) != len(r) {
		t.Fatalf("expected %d values, got %d", len(r), len(c))
	}
	for i, ri := range r {
		if got := At(ri, p); got != c[i] {
			t.Errorf("Profile[%d]=%g disagrees with At(%g)=%g", i, c[i], ri, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(p *Params) {}, false},
		{"zero source", func(p *Params) { p.Source = 0 }, false},
		{"negative source", func(p *Params) { p.Source = -1e-8 }, true},
		{"zero diffusivity", func(p *Params) { p.Diffusivity = 0 }, true},
		{"negative radius", func(p *Params) { p.Radius = -0.5 }, true},
		{"zero boundary", func(p *Params) { p.Boundary = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
