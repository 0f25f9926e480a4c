// Package plots renders publication figures for profiles and convergence
// sweeps using gonum/plot.
package plots

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/pillarlab/radiff/internal/convergence"
)

// Profile saves a figure of the numerical solution (points) against the
// closed-form profile (line).
func Profile(r, numerical, analytical []float64, scheme, path string) error {
	if len(r) != len(numerical) || len(r) != len(analytical) {
		return fmt.Errorf("profile series must be co-indexed: %d/%d/%d points",
			len(r), len(numerical), len(analytical))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("steady-state concentration, %s scheme, N=%d", scheme, len(r))
	p.X.Label.Text = "r [m]"
	p.Y.Label.Text = "C [mol/m3]"

	line, err := plotter.NewLine(makeXYs(r, analytical))
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)

	pts, err := plotter.NewScatter(makeXYs(r, numerical))
	if err != nil {
		return err
	}
	pts.Color = plotutil.Color(1)

	p.Add(line, pts)
	p.Legend.Add("analytical", line)
	p.Legend.Add("numerical", pts)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// Convergence saves a log-log figure of each error norm against the grid
// spacing, with a reference line of the scheme's formal order anchored at
// the coarsest level. Zero-error levels cannot appear on log axes and are
// skipped.
func Convergence(rec *convergence.Record, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("grid convergence, %s scheme", rec.Scheme)
	p.X.Label.Text = "dr [m]"
	p.Y.Label.Text = "error norm"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	series := []struct {
		name string
		vals []float64
	}{
		{"L1", rec.L1},
		{"L2", rec.L2},
		{"Linf", rec.Linf},
	}

	plotted := 0
	for i, s := range series {
		xys := positiveXYs(rec.Dr, s.vals)
		if len(xys) < 2 {
			continue
		}
		line, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		pts.Color = plotutil.Color(i)
		pts.Shape = plotutil.Shape(i)
		p.Add(line, pts)
		p.Legend.Add(s.name, line, pts)
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("no positive error levels to plot (scheme %s is exact on this problem)", rec.Scheme)
	}

	if ref := referenceSlope(rec); len(ref) == 2 {
		line, err := plotter.NewLine(ref)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(3)
		line.Dashes = plotutil.Dashes(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("O(dr^%d)", rec.Scheme.Order()), line)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// referenceSlope builds a two-point guide line err = C*dr^order anchored at
// the coarsest positive L2 level.
func referenceSlope(rec *convergence.Record) plotter.XYs {
	order := float64(rec.Scheme.Order())
	for k := 0; k < rec.Levels(); k++ {
		if rec.L2[k] <= 0 {
			continue
		}
		c := rec.L2[k] / math.Pow(rec.Dr[k], order)
		drLast := rec.Dr[rec.Levels()-1]
		return plotter.XYs{
			{X: rec.Dr[k], Y: c * math.Pow(rec.Dr[k], order)},
			{X: drLast, Y: c * math.Pow(drLast, order)},
		}
	}
	return nil
}

func makeXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return xys
}

func positiveXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(x))
	for i := range x {
		if y[i] > 0 {
			xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
		}
	}
	return xys
}
