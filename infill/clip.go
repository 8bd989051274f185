package infill

import (
	"sort"

	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/slice"
)

// contourEdges flattens every contour's cyclic point sequence into its
// constituent edges.
func contourEdges(contours []slice.Contour) []geom.Segment {
	var edges []geom.Segment
	for _, c := range contours {
		n := len(c)
		for i := 0; i < n; i++ {
			edges = append(edges, geom.NewSegment(c[i], c[(i+1)%n]))
		}
	}
	return edges
}

// clipLine intersects line against every edge of contours, dedupes the
// hit points, sorts them along the line by xy-position (x primary, y
// secondary), and keeps the even-indexed pairs (0-1, 2-3, ...) as the
// interior-covered sub-segments — the standard enter/leave winding of
// a simple polygon. Degenerate cases (the raster coincident with an
// edge) fall out for free since Intersect2D treats parallel as
// non-intersecting.
func clipLine(line geom.Segment, edges []geom.Segment) []geom.Segment {
	var hits []geom.Point
	for _, e := range edges {
		if p, ok := geom.Intersect2D(line, e); ok {
			hits = append(hits, p.Round())
		}
	}
	hits = dedupXY(hits)
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].X != hits[j].X {
			return hits[i].X < hits[j].X
		}
		return hits[i].Y < hits[j].Y
	})

	var segs []geom.Segment
	for i := 0; i+1 < len(hits); i += 2 {
		segs = append(segs, geom.NewSegment(hits[i], hits[i+1]))
	}
	return segs
}

func dedupXY(pts []geom.Point) []geom.Point {
	out := pts[:0:0]
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.X == q.X && p.Y == q.Y {
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

// ClipAll clips every candidate raster line in lines against contours,
// concatenating every resulting interior sub-segment.
func ClipAll(lines []geom.Segment, contours []slice.Contour) []geom.Segment {
	edges := contourEdges(contours)
	var out []geom.Segment
	for _, l := range lines {
		out = append(out, clipLine(l, edges)...)
	}
	return out
}
