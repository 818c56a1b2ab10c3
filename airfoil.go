// Package airfoil generates NACA four-digit series airfoil surface
// coordinates from the closed-form camber and thickness distributions.
//
// The four digits encode the section geometry: maximum camber in percent
// of chord, position of maximum camber in tenths of chord and maximum
// thickness in percent of chord. "2412" is a 12% thick section with 2%
// camber at 40% of the chord.
package airfoil

import (
	"fmt"

	"github.com/soypat/airfoil/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// MinPoints is the smallest station count that describes a surface,
// the leading and trailing edge points.
const MinPoints = 2

// Generate computes the surface coordinates of a four-digit section.
// It is shorthand for ParseNACA4 followed by NACA4.Sample. A chord of 1
// and 50 points are conventional arguments for plotting and analysis.
func Generate(designation string, chord float64, numPoints int) (Coordinates, error) {
	s, err := ParseNACA4(designation)
	if err != nil {
		return nil, err
	}
	return s.Sample(chord, numPoints)
}

// Station is the pair of surface points over and under one chordwise
// sampling position.
type Station struct {
	Upper r2.Vec
	Lower r2.Vec
}

// Coordinates is a sampled airfoil surface ordered from the leading edge
// to the trailing edge.
type Coordinates []Station

// Upper returns the upper surface curve in station order.
func (c Coordinates) Upper() []r2.Vec {
	v := make([]r2.Vec, len(c))
	for i, st := range c {
		v[i] = st.Upper
	}
	return v
}

// Lower returns the lower surface curve in station order.
func (c Coordinates) Lower() []r2.Vec {
	v := make([]r2.Vec, len(c))
	for i, st := range c {
		v[i] = st.Lower
	}
	return v
}

// Outline returns the surface as a single traversal in the conventional
// coordinate file order: from the trailing edge over the upper surface to
// the leading edge, then back along the lower surface to the trailing
// edge. The leading edge point is not repeated, so len(outline) is
// 2*len(c)-1. The four-digit thickness polynomial leaves a small trailing
// edge gap between the first and last points.
func (c Coordinates) Outline() []r2.Vec {
	if len(c) == 0 {
		return nil
	}
	outline := make([]r2.Vec, 0, 2*len(c)-1)
	for i := len(c) - 1; i >= 0; i-- {
		outline = append(outline, c[i].Upper)
	}
	for _, st := range c[1:] {
		outline = append(outline, st.Lower)
	}
	return outline
}

// Bounds returns the bounding box of the surface.
func (c Coordinates) Bounds() r2.Box {
	if len(c) == 0 {
		return r2.Box{}
	}
	bb := r2.Box{Min: c[0].Upper, Max: c[0].Upper}
	for _, st := range c {
		bb.Min = d2.MinElem(bb.Min, d2.MinElem(st.Upper, st.Lower))
		bb.Max = d2.MaxElem(bb.Max, d2.MaxElem(st.Upper, st.Lower))
	}
	return bb
}

// Validate checks that the coordinates describe a plausible chord-aligned
// section: all values finite, stations advancing along the chord and the
// upper surface nowhere below the lower surface. Rotated and mirrored
// sections do not validate.
func (c Coordinates) Validate() error {
	if len(c) < MinPoints {
		return &PointCountError{NumPoints: len(c)}
	}
	prev := c[0].Upper.X + c[0].Lower.X
	for i, st := range c {
		if d2.Bad(st.Upper) || d2.Bad(st.Lower) {
			return fmt.Errorf("non-finite coordinate at station %d", i)
		}
		if st.Upper.Y < st.Lower.Y {
			return fmt.Errorf("surfaces cross at station %d", i)
		}
		// The station position is the midpoint of the surface x
		// coordinates since the normal offsets cancel.
		mid := st.Upper.X + st.Lower.X
		if mid < prev {
			return fmt.Errorf("station %d regresses along the chord", i)
		}
		prev = mid
	}
	return nil
}

// Rotate returns a copy of the coordinates rotated by theta radians
// counterclockwise about pivot, for placing a section at an angle of
// attack before export or extrusion.
func (c Coordinates) Rotate(theta float64, pivot r2.Vec) Coordinates {
	rotated := make(Coordinates, len(c))
	for i, st := range c {
		rotated[i] = Station{
			Upper: d2.Rotate(st.Upper, pivot, theta),
			Lower: d2.Rotate(st.Lower, pivot, theta),
		}
	}
	return rotated
}
