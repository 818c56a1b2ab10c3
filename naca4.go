package airfoil

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"gonum.org/v1/gonum/spatial/r2"
)

// NACA4 describes a NACA four-digit series airfoil section.
// The parameters are fractions of the chord length so a NACA4
// describes the same shape at any chord. The zero value is a
// zero-thickness flat plate.
type NACA4 struct {
	// M is the maximum camber of the mean line as a fraction of chord.
	// First digit of the designation divided by 100.
	M float64
	// P is the chordwise position of maximum camber as a fraction of
	// chord. Second digit of the designation divided by 10.
	P float64
	// T is the maximum section thickness as a fraction of chord.
	// Last two digits of the designation divided by 100.
	T float64
}

// ParseNACA4 parses a four-digit designation such as "2412" into its
// section parameters. The designation must be exactly four decimal digits.
func ParseNACA4(designation string) (NACA4, error) {
	// Counted in runes; the digit scan below rejects multi-byte
	// characters, so four decimal digits imply four bytes.
	n := utf8.RuneCountInString(designation)
	if n != 4 {
		return NACA4{}, &DesignationError{Designation: designation, Digits: n}
	}
	for i := 0; i < len(designation); i++ {
		if designation[i] < '0' || designation[i] > '9' {
			return NACA4{}, &DesignationError{Designation: designation, Digits: n}
		}
	}
	return NACA4{
		M: float64(designation[0]-'0') / 100,
		P: float64(designation[1]-'0') / 10,
		T: float64(10*(designation[2]-'0')+designation[3]-'0') / 100,
	}, nil
}

// ParseNACA4Int is ParseNACA4 for integer designations. The integer is
// formatted in base 10 with no zero padding, so 12 is a two digit
// designation and fails while 2412 parses as "2412".
func ParseNACA4Int(designation int) (NACA4, error) {
	return ParseNACA4(strconv.Itoa(designation))
}

// Code returns the four-digit designation of the section,
// i.e. NACA4{M: 0.02, P: 0.4, T: 0.12} has code "2412".
// Only meaningful for parameters within the four-digit family ranges.
func (s NACA4) Code() string {
	return fmt.Sprintf("%d%d%02d",
		int(math.Round(s.M*100)),
		int(math.Round(s.P*10)),
		int(math.Round(s.T*100)))
}

// IsSymmetric returns whether the section mean line is flat.
func (s NACA4) IsSymmetric() bool { return s.M == 0 || s.P == 0 }

// Camber returns the mean line ordinate yc and its slope dyc/dx at the
// chord-normalized position x in [0,1]. The mean line is the four-digit
// piecewise parabola split at P. The split formula divides by P*P so
// symmetric sections answer with a flat mean line instead of evaluating it.
func (s NACA4) Camber(x float64) (yc, slope float64) {
	if s.IsSymmetric() {
		return 0, 0
	}
	if x < s.P {
		c := s.M / (s.P * s.P)
		return c * (2*s.P*x - x*x), c * (2*s.P - 2*x)
	}
	c := s.M / ((1 - s.P) * (1 - s.P))
	return c * ((1 - 2*s.P) + 2*s.P*x - x*x), c * (2*s.P - 2*x)
}

// HalfThickness returns the thickness distribution yt at the
// chord-normalized position x in [0,1], measured perpendicular to the
// mean line. The polynomial does not close the section exactly: it leaves
// a finite trailing edge of half-thickness 0.0105*T at x=1.
func (s NACA4) HalfThickness(x float64) float64 {
	return s.T / 0.2 * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1015*x*x*x*x)
}

// Sample evaluates the section surface at numPoints stations spaced
// uniformly from the leading edge to the trailing edge, both inclusive.
// Camber and thickness are evaluated on the normalized chord and the
// resulting coordinates are scaled by chord, so sections are geometrically
// similar across chord lengths and doubling chord doubles every coordinate.
// A non-positive chord is not rejected; it yields a mirrored or degenerate
// section. numPoints below MinPoints fails with a PointCountError.
func (s NACA4) Sample(chord float64, numPoints int) (Coordinates, error) {
	if numPoints < MinPoints {
		return nil, &PointCountError{NumPoints: numPoints}
	}
	last := float64(numPoints - 1)
	coords := make(Coordinates, numPoints)
	for i := range coords {
		x := float64(i) / last
		yc, slope := s.Camber(x)
		yt := s.HalfThickness(x)
		sin, cos := math.Sincos(math.Atan2(slope, 1))
		coords[i] = Station{
			Upper: r2.Vec{X: chord * (x - yt*sin), Y: chord * (yc + yt*cos)},
			Lower: r2.Vec{X: chord * (x + yt*sin), Y: chord * (yc - yt*cos)},
		}
	}
	return coords, nil
}
