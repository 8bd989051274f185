// Package geom provides the pure-value geometry primitives the slicing
// pipeline is built on: points, vectors, segments, and the plane/segment
// and segment/segment intersection tests that drive layer extraction,
// contour reconstruction, and infill clipping.
//
// Modeled on the value-receiver vector style of the eggstreme-shelly
// CAM/vec package rather than go-detour's gogeo/math32 (those are
// float32 and out-param based; the slicer's 5-decimal rounding
// requirement needs float64 throughout).
package geom

import (
	"fmt"
	"math"
)

// roundingScale is the factor used to round coordinates to 5 decimal
// places so that two points computed by independent facet intersections
// compare exactly equal once they land on the same mesh edge.
const roundingScale = 1e5

// Axis names one of the three coordinate axes, used by PointAtAxis to
// pick which component of a segment to solve for.
type Axis int

// The three axes a segment can be evaluated against.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Point is an ordered triple (X, Y, Z) of real numbers. It is a pure
// value: no identity, no lifetime, structural equality.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns p + q, component-wise.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q, component-wise.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Negate returns -p.
func (p Point) Negate() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f, p.Z * f}
}

// Magnitude returns the 3D Euclidean length of p treated as a vector.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the 3D Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Cross3D returns the 3D cross product p x q.
func (p Point) Cross3D(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Cross2D returns the z-component of the cross product of the xy
// projections of p and q: p.X*q.Y - p.Y*q.X.
func (p Point) Cross2D(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Axis returns the component of p named by a.
func (p Point) Axis(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// round5 rounds a single coordinate to 5 decimal places.
func round5(v float64) float64 {
	return math.Round(v*roundingScale) / roundingScale
}

// Round returns p with every coordinate rounded to 5 decimal places.
// This is load-bearing for contour chaining: two points computed from
// independent facets that share a mesh edge must compare exactly equal
// after rounding. Do not replace with a tolerance-based comparison
// without also replacing every endpoint-equality lookup in the contour
// reconstructor.
func (p Point) Round() Point {
	return Point{round5(p.X), round5(p.Y), round5(p.Z)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
