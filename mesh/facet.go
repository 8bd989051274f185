// Package mesh parses the ASCII STL subset this slicer accepts and
// normalizes the resulting facets over the print bed.
package mesh

import "github.com/arl/slicer/geom"

// Facet is one triangle of the input surface mesh: three vertices,
// immutable after parsing. Edges are recovered on demand rather than
// stored, since a facet is small and edges are only ever needed
// transiently during layer extraction.
type Facet struct {
	V0, V1, V2 geom.Point
}

// NewFacet returns the facet with the given three vertices.
func NewFacet(v0, v1, v2 geom.Point) Facet {
	return Facet{V0: v0, V1: v1, V2: v2}
}

// Edges returns the facet's three directed edges, v0->v1, v1->v2,
// v2->v0.
func (f Facet) Edges() [3]geom.Segment {
	return [3]geom.Segment{
		geom.NewSegment(f.V0, f.V1),
		geom.NewSegment(f.V1, f.V2),
		geom.NewSegment(f.V2, f.V0),
	}
}

// Vertices returns the facet's three vertices in order.
func (f Facet) Vertices() [3]geom.Point {
	return [3]geom.Point{f.V0, f.V1, f.V2}
}

// Shift translates every vertex of f by delta, returning a new facet.
func (f Facet) Shift(delta geom.Point) Facet {
	return Facet{
		V0: f.V0.Add(delta),
		V1: f.V1.Add(delta),
		V2: f.V2.Add(delta),
	}
}
