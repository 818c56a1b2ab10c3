package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Bad returns true if any vector component is NaN or Inf.
func Bad(a r2.Vec) bool {
	return math.IsNaN(a.X) || math.IsInf(a.X, 0) || math.IsNaN(a.Y) || math.IsInf(a.Y, 0)
}

// Rotate returns p rotated by theta radians counterclockwise about pivot.
func Rotate(p, pivot r2.Vec, theta float64) r2.Vec {
	sin, cos := math.Sincos(theta)
	d := r2.Sub(p, pivot)
	return r2.Add(pivot, r2.Vec{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos})
}
