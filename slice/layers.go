package slice

import (
	"github.com/arl/assertgo"
	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/mesh"
)

// EnumerateLayerZs returns the Z values a print should be sliced at:
// zmax, zmax-thickness, zmax-2*thickness, ..., stopping before the
// first value <= 0 (an empty bottom layer is never produced). Each
// value is computed as zmax - i*thickness rather than by repeated
// subtraction, so rounding error cannot pile up into an extra layer
// just above 0.
func EnumerateLayerZs(zmax, thickness float64) []float64 {
	var zs []float64
	for i := 0; ; i++ {
		z := zmax - float64(i)*thickness
		if z <= 0 {
			break
		}
		zs = append(zs, z)
	}
	return zs
}

// facetIntersection computes the up-to-three plane/edge intersection
// points of a facet against the horizontal plane z=v, de-duplicated.
// A single-point touch at a vertex is not a cross-section and yields
// no points, so the result has 0, 2, or 3 distinct points — never
// exactly 1; assert.True checks that invariant (spec.md §8 invariant 1).
func facetIntersection(f mesh.Facet, v float64) []geom.Point {
	edges := f.Edges()
	var pts []geom.Point
	for _, e := range edges {
		if p, ok := e.PointAtZ(v); ok {
			pts = append(pts, p.Round())
		}
	}
	pts = dedupPoints(pts)
	if len(pts) < 2 {
		return nil
	}
	assert.True(len(pts) != 1, "facet/plane intersection yielded exactly 1 point, want 0, 2 or 3: %v", pts)
	return pts
}

func dedupPoints(pts []geom.Point) []geom.Point {
	out := pts[:0:0]
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p == q {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// ExtractLayerSegments intersects every facet with the horizontal
// plane z=v and returns the resulting unordered bag of 2-point
// segments. A facet whose de-duplicated intersection has fewer than 2
// points (a single-vertex touch) is discarded for this layer; the
// three-point case (plane through an edge shared by two coplanar
// triangle edges) degenerates to the segment between the first two
// distinct points, since recast's "take consecutive pairs" ethos maps
// onto "a triangle cross-section is always one segment."
func ExtractLayerSegments(facets []mesh.Facet, v float64) []geom.Segment {
	var segs []geom.Segment
	for _, f := range facets {
		pts := facetIntersection(f, v)
		if len(pts) < 2 {
			continue
		}
		segs = append(segs, geom.NewSegment(pts[0], pts[1]))
	}
	return segs
}
