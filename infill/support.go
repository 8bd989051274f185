package infill

import (
	"math"

	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/param"
	"github.com/arl/slicer/slice"
)

// supportInfillPercent is the hard-coded density support is printed
// at. spec.md §9 notes the original implementation threads an unused
// "fillAmount" option into support generation but never uses it,
// always falling back to this constant; that is the behavior
// specified here (open question resolved: keep the hard-coded value,
// the unused binding is dead code worth dropping rather than wiring).
const supportInfillPercent = 20

// boundingRectangle returns the axis-aligned bounding box of every
// point of every contour, inset by insetMM on all four sides, as a
// closed 4-point contour at height z.
func boundingRectangle(contours []slice.Contour, z, insetMM float64) slice.Contour {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range contours {
		for _, p := range c {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	minX += insetMM
	minY += insetMM
	maxX -= insetMM
	maxY -= insetMM
	return slice.Contour{
		geom.NewPoint(minX, minY, z),
		geom.NewPoint(maxX, minY, z),
		geom.NewPoint(maxX, maxY, z),
		geom.NewPoint(minX, maxY, z),
	}
}

// GenerateSupport produces scaffolding material below a layer's
// contours: a uniformly-dense, fixed-20%-infill Middle raster clipped
// against the contours' bounding box (inset 1mm on every side) plus
// the original contour list, with every resulting segment shortened by
// 2*defaultThickness (0.4mm) at each end so support lines don't fuse
// into model walls. Support is produced identically for every layer;
// overhang detection is a non-goal (spec.md §1, §4.F).
func GenerateSupport(contours []slice.Contour, z float64) []geom.Segment {
	if len(contours) == 0 {
		return nil
	}
	rect := boundingRectangle(contours, z, 1.0)
	augmented := append(append([]slice.Contour{}, contours...), rect)

	candidates := sparseCover(z, supportInfillPercent)
	raw := ClipAll(candidates, augmented)

	shortenBy := 2 * param.DefaultThickness
	out := make([]geom.Segment, len(raw))
	for i, s := range raw {
		out[i] = s.ShortenBy(shortenBy)
	}
	return out
}
