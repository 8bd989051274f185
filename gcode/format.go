package gcode

import (
	"math"
	"strconv"
	"strings"

	"github.com/arl/slicer/geom"
)

// formatNum renders a 5-decimal-rounded value with its raw numeric
// representation (no fixed width, no trailing zero padding): a whole
// number has no decimal point, so 20 renders as "20", not "20.0".
func formatNum(v float64) string {
	return strconv.FormatFloat(roundTo5(v), 'f', -1, 64)
}

// roundTo5 rounds v to 5 decimal places, matching geom.Point.Round.
func roundTo5(v float64) float64 {
	const scale = 1e5
	return math.Round(v*scale) / scale
}

// positioningLine formats a travel / first-point move: no E field.
func positioningLine(p geom.Point) string {
	var b strings.Builder
	b.WriteString("G1 X")
	b.WriteString(formatNum(p.X))
	b.WriteString(" Y")
	b.WriteString(formatNum(p.Y))
	b.WriteString(" Z")
	b.WriteString(formatNum(p.Z))
	return b.String()
}

// extrudingLine formats a move that feeds filament: an E field holding
// the cumulative extruder value.
func extrudingLine(p geom.Point, cumE float64) string {
	return positioningLine(p) + " E" + formatNum(cumE)
}
