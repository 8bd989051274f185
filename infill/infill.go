package infill

import (
	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/slice"
)

// Generate produces the set of segments covering a layer's interior,
// selecting the raster family by the layer's LayerType: BaseEven gets
// the full up-diagonal family, BaseOdd the full down-diagonal family,
// and Middle the sparse cover at the configured infill percentage.
func Generate(contours []slice.Contour, z float64, layerType slice.LayerType, infillPercent int) []geom.Segment {
	var candidates []geom.Segment
	switch layerType {
	case slice.BaseEven:
		candidates = upDiagonalLines(z)
	case slice.BaseOdd:
		candidates = downDiagonalLines(z)
	default:
		candidates = sparseCover(z, infillPercent)
	}
	return ClipAll(candidates, contours)
}
