// Package gcode computes per-move extrusion, accumulates a
// monotonically increasing extruder value across a whole print, and
// serializes contours, infill, and support into ordered G-code lines.
package gcode

import (
	"math"

	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/param"
)

// Extrusion returns the filament length fed for a single move from p1
// to p2 at the given layer thickness:
//
//	e = nozzleDiameter * t * (2/filamentDiameter) * |p2-p1| / pi
//
// Distance is 3D Euclidean, matching spec.md §4.H even though in
// practice moves within a layer are planar.
func Extrusion(p1, p2 geom.Point, thickness float64) float64 {
	return param.NozzleDiameter * thickness * (2 / param.FilamentDiameter) * p1.Distance(p2) / math.Pi
}
