package infill

import (
	"math"
	"testing"

	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/param"
	"github.com/arl/slicer/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareContour(side, z float64) slice.Contour {
	return slice.Contour{
		geom.NewPoint(0, 0, z),
		geom.NewPoint(side, 0, z),
		geom.NewPoint(side, side, z),
		geom.NewPoint(0, side, z),
	}
}

func TestGenerateBaseEvenUsesUpDiagonal(t *testing.T) {
	contours := []slice.Contour{squareContour(10, 1)}
	segs := Generate(contours, 1, slice.BaseEven, 20)
	assert.NotEmpty(t, segs)
}

func TestGenerateBaseOddUsesDownDiagonal(t *testing.T) {
	contours := []slice.Contour{squareContour(10, 1)}
	segs := Generate(contours, 1, slice.BaseOdd, 20)
	assert.NotEmpty(t, segs)
}

func TestGenerateMiddleZeroInfillIsEmpty(t *testing.T) {
	// S4: --infill 0 on a layer must not crash (n = max(1,100/0)
	// guarded) and yields no infill lines for Middle layers.
	contours := []slice.Contour{squareContour(10, 1)}
	segs := Generate(contours, 1, slice.Middle, 0)
	assert.Empty(t, segs)
}

func TestGenerateMiddleFullInfillCoversArea(t *testing.T) {
	// a 10mm square at 100% infill produces covering segments whose
	// total clipped length is fixed by the raster spacing, within 5%.
	side := 10.0
	contours := []slice.Contour{squareContour(side, 1)}
	segs := Generate(contours, 1, slice.Middle, 100)
	require.NotEmpty(t, segs)

	var total float64
	for _, s := range segs {
		total += s.Length()
	}
	// each diagonal family steps its origin lineThickness along y, so
	// neighbouring lines lie lineThickness/sqrt(2) apart and one family
	// covers about sqrt(2)*area/lineThickness of line length; at 100%
	// infill both families are used in full.
	want := 2 * math.Sqrt2 * side * side / param.LineThickness
	assert.InEpsilon(t, want, total, 0.05)
}

func TestClipLineOutsideContourYieldsNothing(t *testing.T) {
	contours := []slice.Contour{squareContour(10, 1)}
	edges := contourEdges(contours)
	farLine := geom.NewSegment(geom.NewPoint(1000, 0, 1), geom.NewPoint(1000, 1, 1))
	segs := clipLine(farLine, edges)
	assert.Empty(t, segs)
}

func TestClipLineThroughSquareYieldsOnePair(t *testing.T) {
	contours := []slice.Contour{squareContour(10, 1)}
	edges := contourEdges(contours)
	line := geom.Segment{Origin: geom.NewPoint(-1, 5, 1), Dir: geom.NewPoint(12, 0, 0)}
	segs := clipLine(line, edges)
	require.Len(t, segs, 1)
	assert.InDelta(t, 10, segs[0].Length(), 1e-6)
}
