// Package infill generates the raster line families used to fill a
// layer's interior (perimeter-independent infill) and the scaffolding
// beneath it (support), and clips both to a layer's contours.
package infill

import (
	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/param"
)

// upDiagonalLines returns the full-bed up-diagonal raster family at
// height z: for v ranging from -bedSizeX to bedSizeY in steps of
// param.LineThickness, the segment with origin (0, v, z) and direction
// (bedSizeX+bedSizeY, bedSizeX+bedSizeY, 0).
func upDiagonalLines(z float64) []geom.Segment {
	var lines []geom.Segment
	span := param.BedSizeX + param.BedSizeY
	for v := -param.BedSizeX; v <= param.BedSizeY; v += param.LineThickness {
		origin := geom.NewPoint(0, v, z)
		lines = append(lines, geom.Segment{Origin: origin, Dir: geom.NewPoint(span, span, 0)})
	}
	return lines
}

// downDiagonalLines returns the full-bed down-diagonal raster family
// at height z: for v ranging from 0 to bedSizeX+bedSizeY in steps of
// param.LineThickness, the segment with origin (0, v, z) and direction
// (bedSizeX+bedSizeY, -(bedSizeX+bedSizeY), 0).
func downDiagonalLines(z float64) []geom.Segment {
	var lines []geom.Segment
	span := param.BedSizeX + param.BedSizeY
	for v := 0.0; v <= span; v += param.LineThickness {
		origin := geom.NewPoint(0, v, z)
		lines = append(lines, geom.Segment{Origin: origin, Dir: geom.NewPoint(span, -span, 0)})
	}
	return lines
}

// sparseCover keeps every n-th line of both diagonal families, where
// n = max(1, 100/percent) (integer division). percent <= 0 returns no
// lines at all before the division is reached, so a 0% request yields
// "nothing selected" instead of crashing (spec.md §8 scenario S4).
func sparseCover(z float64, percent int) []geom.Segment {
	if percent <= 0 {
		return nil
	}
	n := 100 / percent
	if n < 1 {
		n = 1
	}
	var lines []geom.Segment
	for _, family := range [][]geom.Segment{upDiagonalLines(z), downDiagonalLines(z)} {
		for i := 0; i < len(family); i += n {
			lines = append(lines, family[i])
		}
	}
	return lines
}
