// Package cad adapts airfoil sections for solid modelling with the sdfx
// toolkit, for 3D printable wing ribs and similar flat section parts.
package cad

import (
	"errors"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/airfoil"
)

// Profile2D returns the closed section outline as a signed distance shape
// for boolean and extrusion operations. The small native trailing edge gap
// of four-digit sections is closed by the polygon edge between the first
// and last outline points.
func Profile2D(c airfoil.Coordinates) (sdf.SDF2, error) {
	outline := c.Outline()
	if len(outline) < 3 {
		return nil, errors.New("airfoil outline needs at least 3 vertices")
	}
	poly := make([]sdf.V2, len(outline))
	for i, v := range outline {
		poly[i] = sdf.V2{X: v.X, Y: v.Y}
	}
	return sdf.Polygon2D(poly)
}

// Rib extrudes the section into a flat plate of the given width centered
// on the section plane.
func Rib(c airfoil.Coordinates, width float64) (sdf.SDF3, error) {
	profile, err := Profile2D(c)
	if err != nil {
		return nil, err
	}
	return sdf.Extrude3D(profile, width), nil
}

// CreateRibSTL meshes a rib with the marching cubes octree renderer and
// writes it to an STL file. meshCells is the cell count along the longest
// bounding box axis. The sdfx renderer reports progress on stdout.
func CreateRibSTL(path string, c airfoil.Coordinates, width float64, meshCells int) error {
	rib, err := Rib(c, width)
	if err != nil {
		return err
	}
	sdfxrender.ToSTL(rib, meshCells, path, &sdfxrender.MarchingCubesOctree{})
	return nil
}
