package mesh

import (
	"math"

	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/param"
)

// BoundingBox is the axis-aligned bounding box of a set of vertices.
type BoundingBox struct {
	Min, Max geom.Point
}

// Center returns the xy-center and minimum z of the box.
func (b BoundingBox) Center() geom.Point {
	return geom.NewPoint(
		(b.Min.X+b.Max.X)/2,
		(b.Min.Y+b.Max.Y)/2,
		b.Min.Z,
	)
}

// BoundsOf computes the axis-aligned bounding box of every vertex of
// every facet. BoundsOf of an empty facet list returns the zero box.
func BoundsOf(facets []Facet) BoundingBox {
	if len(facets) == 0 {
		return BoundingBox{}
	}
	min := facets[0].V0
	max := facets[0].V0
	for _, f := range facets {
		for _, v := range f.Vertices() {
			min = componentMin(min, v)
			max = componentMax(max, v)
		}
	}
	return BoundingBox{Min: min, Max: max}
}

func componentMin(a, b geom.Point) geom.Point {
	return geom.NewPoint(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
}

func componentMax(a, b geom.Point) geom.Point {
	return geom.NewPoint(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))
}

// Normalize shifts every facet by the vector that places the bounding
// box's xy-center on the bed center (param.BedSizeX/2, param.BedSizeY/2)
// and the minimum z at 0. After normalization no facet vertex lies
// below z=0. Normalize only translates: no facet is removed.
func Normalize(facets []Facet) []Facet {
	if len(facets) == 0 {
		return facets
	}
	box := BoundsOf(facets)
	center := box.Center()
	delta := geom.NewPoint(
		param.BedSizeX/2-center.X,
		param.BedSizeY/2-center.Y,
		-center.Z,
	)
	out := make([]Facet, len(facets))
	for i, f := range facets {
		out[i] = f.Shift(delta)
	}
	return out
}

// ZExtent returns the minimum and maximum Z over all vertices of the
// given facets.
func ZExtent(facets []Facet) (zmin, zmax float64) {
	if len(facets) == 0 {
		return 0, 0
	}
	zmin = facets[0].V0.Z
	zmax = facets[0].V0.Z
	for _, f := range facets {
		for _, v := range f.Vertices() {
			if v.Z < zmin {
				zmin = v.Z
			}
			if v.Z > zmax {
				zmax = v.Z
			}
		}
	}
	return zmin, zmax
}
