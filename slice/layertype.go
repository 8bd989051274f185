package slice

import (
	"math"

	"github.com/arl/slicer/param"
)

// LayerType is a tagged variant controlling which infill pattern a
// given layer uses: BaseEven and BaseOdd are the two full-density
// rasters alternated across the solid bottom/top skin, Middle is the
// sparse interior pattern.
type LayerType int

// The three layer types.
const (
	Middle LayerType = iota
	BaseOdd
	BaseEven
)

func (t LayerType) String() string {
	switch t {
	case BaseOdd:
		return "BaseOdd"
	case BaseEven:
		return "BaseEven"
	default:
		return "Middle"
	}
}

// ClassifyLayer decides a layer's LayerType from its 1-based position
// counted from the bottom (fromStart) and from the top (toEnd) of the
// print, and the configured layer thickness. The bottom/top solid skin
// is topBottomLayers = round(defaultBottomTopThickness / thickness)
// layers thick; inside that skin, even fromStart indices get the
// up-diagonal raster (BaseEven) and odd indices get the down-diagonal
// raster (BaseOdd); everything else is Middle (sparse interior).
func ClassifyLayer(fromStart, toEnd int, thickness float64) LayerType {
	topBottomLayers := int(math.Round(param.DefaultBottomTopThickness / thickness))
	inSkin := fromStart <= topBottomLayers || toEnd <= topBottomLayers
	if !inSkin {
		return Middle
	}
	if fromStart%2 == 0 {
		return BaseEven
	}
	return BaseOdd
}
