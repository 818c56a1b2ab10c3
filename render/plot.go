// Package render turns airfoil coordinates into plots and coordinate
// files. It is a downstream consumer of package airfoil: the generator
// returns data, this package draws or serializes it.
package render

import (
	"errors"

	"github.com/soypat/airfoil"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// NewPlot builds a line plot of the upper and lower surface curves.
func NewPlot(c airfoil.Coordinates, title string) (*plot.Plot, error) {
	if len(c) == 0 {
		return nil, errors.New("empty coordinates")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	err := plotutil.AddLinePoints(p,
		"upper", curveXYs(c.Upper()),
		"lower", curveXYs(c.Lower()),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// curveXYs converts one surface curve to a plotter point series.
func curveXYs(curve []r2.Vec) plotter.XYs {
	pts := make(plotter.XYs, len(curve))
	for i, v := range curve {
		pts[i].X, pts[i].Y = v.X, v.Y
	}
	return pts
}

// CreatePlot renders the section to an image file. The format follows the
// file extension (.png, .svg, .pdf among others). Canvas proportions
// follow the coordinate bounds for an approximately equal axis scale.
func CreatePlot(path string, c airfoil.Coordinates, title string) error {
	p, err := NewPlot(c, title)
	if err != nil {
		return err
	}
	const width = 10 * vg.Inch
	return p.Save(width, plotHeight(c.Bounds(), width), path)
}

// plotHeight proportions the canvas to the data bounding box. Titles and
// axis labels take canvas space so the aspect is approximate.
func plotHeight(bb r2.Box, width vg.Length) vg.Length {
	size := r2.Sub(bb.Max, bb.Min)
	if size.X <= 0 || size.Y <= 0 {
		return width / 4
	}
	h := vg.Length(size.Y/size.X) * width
	// keep axis decorations legible on thin sections.
	if h < width/5 {
		h = width / 5
	}
	if h > width {
		h = width
	}
	return h
}
