package gcode

import (
	"strings"
	"testing"

	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/slice"
)

func square(z float64) slice.Contour {
	return slice.Contour{
		geom.NewPoint(0, 0, z),
		geom.NewPoint(10, 0, z),
		geom.NewPoint(10, 10, z),
		geom.NewPoint(0, 10, z),
	}
}

func TestEmitContourFirstLineHasNoE(t *testing.T) {
	var e Emitter
	e.EmitContour(square(0.2), 0.2)
	lines := e.Lines()
	if strings.Contains(lines[0], "E") {
		t.Fatalf("first line of a contour must not carry an E token: %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !strings.Contains(l, "E") {
			t.Fatalf("subsequent contour line missing E token: %q", l)
		}
	}
}

func TestEmitContourClosesBackToFirstPoint(t *testing.T) {
	var e Emitter
	c := square(0.2)
	e.EmitContour(c, 0.2)
	lines := e.Lines()
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "G1 X0 Y0 Z0.2") {
		t.Fatalf("last line should close back to the first point, got %q", last)
	}
}

func TestEmitContourExtruderStateMonotonic(t *testing.T) {
	var e Emitter
	e.EmitContour(square(0.2), 0.2)
	first := e.state.Current()
	e.EmitContour(square(0.4), 0.2)
	if e.state.Current() <= 0 {
		t.Fatalf("cumulative E should be positive after two contours, got %v", e.state.Current())
	}
	if e.state.Current() <= first {
		t.Fatalf("cumulative E should grow across contours: %v after the first, %v after the second", first, e.state.Current())
	}
}

func TestEmitOpenPathFixGcodeStripsTravelHopE(t *testing.T) {
	var e Emitter
	segs := []geom.Segment{
		geom.NewSegment(geom.NewPoint(0, 0, 0.2), geom.NewPoint(10, 0, 0.2)),
		geom.NewSegment(geom.NewPoint(10, 2, 0.2), geom.NewPoint(0, 2, 0.2)),
	}
	e.EmitOpenPath(segs, 0.2)
	lines := e.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines for 2 chained segments, got %d: %v", len(lines), lines)
	}
	// lines: [origin0 (no E), end0 (E), origin1 travel-hop (E stripped), end1 (E)]
	if strings.Contains(lines[0], "E") {
		t.Fatalf("line 0 should have no E token: %q", lines[0])
	}
	if !strings.Contains(lines[1], "E") {
		t.Fatalf("line 1 should carry an E token: %q", lines[1])
	}
	if strings.Contains(lines[2], "E") {
		t.Fatalf("line 2 (travel hop) should have had its E token stripped: %q", lines[2])
	}
	if !strings.Contains(lines[3], "E") {
		t.Fatalf("line 3 should carry an E token: %q", lines[3])
	}
}

func TestEmitOpenPathEmptyIsNoop(t *testing.T) {
	var e Emitter
	e.EmitOpenPath(nil, 0.2)
	if len(e.Lines()) != 0 {
		t.Fatalf("EmitOpenPath(nil) should emit nothing, got %v", e.Lines())
	}
}

func TestEmitLayerSkipsLeadingTravelOnFirstLayer(t *testing.T) {
	var e Emitter
	plan := slice.LayerPlan{Contours: []slice.Contour{square(0.2)}, FromStart: 1, FromEnd: 3, Type: slice.BaseEven, Z: 0.2}
	e.EmitLayer(plan, nil, nil, 0.2, 2)
	lines := e.Lines()
	// first layer: first emitted line is the contour's own positioning
	// move, not an extra travel hop.
	if strings.Contains(lines[0], "E") {
		t.Fatalf("first line overall must not carry an E token: %q", lines[0])
	}
}

func TestEmitLayerRetracesContourPerimeterLayersTimes(t *testing.T) {
	plan := slice.LayerPlan{Contours: []slice.Contour{square(0.2)}, FromStart: 1, FromEnd: 3, Type: slice.BaseEven, Z: 0.2}

	var e1 Emitter
	e1.EmitLayer(plan, nil, nil, 0.2, 1)

	var e3 Emitter
	e3.EmitLayer(plan, nil, nil, 0.2, 3)

	if got, want := len(e3.Lines()), 3*len(e1.Lines()); got != want {
		t.Fatalf("3 perimeter layers should emit 3x the lines of 1, got %d want %d", got, want)
	}
}

func TestEmitLayerPerimeterLayersBelowOneTracesOnce(t *testing.T) {
	plan := slice.LayerPlan{Contours: []slice.Contour{square(0.2)}, FromStart: 1, FromEnd: 3, Type: slice.BaseEven, Z: 0.2}

	var e0 Emitter
	e0.EmitLayer(plan, nil, nil, 0.2, 0)

	var e1 Emitter
	e1.EmitLayer(plan, nil, nil, 0.2, 1)

	if got, want := len(e0.Lines()), len(e1.Lines()); got != want {
		t.Fatalf("perimeterLayers=0 should fall back to tracing once, got %d lines want %d", got, want)
	}
}

func TestEmitLayerAddsTravelBeforeSubsequentLayers(t *testing.T) {
	var e Emitter
	plan1 := slice.LayerPlan{Contours: []slice.Contour{square(0.2)}, FromStart: 1, FromEnd: 3, Type: slice.BaseEven, Z: 0.2}
	plan2 := slice.LayerPlan{Contours: []slice.Contour{square(0.4)}, FromStart: 2, FromEnd: 2, Type: slice.Middle, Z: 0.4}
	e.EmitLayer(plan1, nil, nil, 0.2, 2)
	before := len(e.Lines())
	e.EmitLayer(plan2, nil, nil, 0.2, 2)
	after := e.Lines()
	travel := after[before]
	if strings.Contains(travel, "E") {
		t.Fatalf("inter-layer travel move must not carry an E token: %q", travel)
	}
	if !strings.HasPrefix(travel, "G1 X0 Y0 Z0.4") {
		t.Fatalf("inter-layer travel should move to the next layer's first contour point, got %q", travel)
	}
}
