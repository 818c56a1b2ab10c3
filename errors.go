package airfoil

import "fmt"

// DesignationError is returned when an airfoil designation cannot be
// interpreted as a member of the four-digit series.
type DesignationError struct {
	// Designation is the rejected input normalized to a string.
	Designation string
	// Digits is the number of characters in the designation.
	Digits int
}

func (e *DesignationError) Error() string {
	if e.Digits != 4 {
		return fmt.Sprintf("naca designation must be 4 digits, got %d digits (%q)", e.Digits, e.Designation)
	}
	return fmt.Sprintf("naca designation must be decimal digits (%q)", e.Designation)
}

// PointCountError is returned when a surface is requested with fewer
// than MinPoints sample stations.
type PointCountError struct {
	// NumPoints is the rejected station count.
	NumPoints int
}

func (e *PointCountError) Error() string {
	return fmt.Sprintf("number of sample points must be at least %d, got %d", MinPoints, e.NumPoints)
}
