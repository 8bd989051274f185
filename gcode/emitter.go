package gcode

import (
	"github.com/arl/slicer/geom"
	"github.com/arl/slicer/slice"
)

// Emitter serializes a whole print, bottom-to-top, into a flat
// sequence of G-code lines. Zero value is ready to use: the first
// layer emitted gets no leading travel move (spec.md §4.I.1).
type Emitter struct {
	lines   []string
	state   ExtruderState
	started bool
}

// Lines returns every line emitted so far.
func (e *Emitter) Lines() []string {
	return e.lines
}

func (e *Emitter) emit(line string) {
	e.lines = append(e.lines, line)
}

// EmitLayer serializes one layer's contours, infill, and support in
// the order spec.md §4.I prescribes: an inter-layer travel move (skipped
// for the first layer emitted), each contour traced perimeterLayers
// times (the Glossary's "Perimeter layer: a wall loop traced along (a
// copy of) a contour" — spec.md gives no inset/offset algorithm, so
// each extra perimeter layer retraces the same contour rather than an
// invented offset polygon), then infill, then support as open
// fixGcode-corrected paths. perimeterLayers <= 0 still traces each
// contour once.
func (e *Emitter) EmitLayer(plan slice.LayerPlan, infill, support []geom.Segment, thickness float64, perimeterLayers int) {
	first := firstPoint(plan.Contours, infill, support)
	if e.started && first != nil {
		e.emit(positioningLine(*first))
	}
	e.started = true

	if perimeterLayers < 1 {
		perimeterLayers = 1
	}
	for _, c := range plan.Contours {
		for i := 0; i < perimeterLayers; i++ {
			e.EmitContour(c, thickness)
		}
	}
	e.EmitOpenPath(infill, thickness)
	e.EmitOpenPath(support, thickness)
}

// firstPoint returns the very first point this layer will move to, in
// emission order, or nil if the layer is entirely empty.
func firstPoint(contours []slice.Contour, infill, support []geom.Segment) *geom.Point {
	for _, c := range contours {
		if len(c) > 0 {
			p := c[0]
			return &p
		}
	}
	if len(infill) > 0 {
		p := infill[0].Origin
		return &p
	}
	if len(support) > 0 {
		p := support[0].Origin
		return &p
	}
	return nil
}

// EmitContour emits one closed extruded path: a positioning move to
// the first point (no E), then an extruding move to every subsequent
// point, closing back to the first point (spec.md §4.I.2). The
// accountant is re-seeded from the lines emitted so far before the
// contour starts, per spec.md §4.H.
func (e *Emitter) EmitContour(c slice.Contour, thickness float64) {
	if len(c) == 0 {
		return
	}
	e.state.Seed(e.lines)
	e.emit(positioningLine(c[0]))
	prev := c[0]
	for _, p := range c[1:] {
		e.state.Add(Extrusion(prev, p, thickness))
		e.emit(extrudingLine(p, e.state.Current()))
		prev = p
	}
	e.state.Add(Extrusion(prev, c[0], thickness))
	e.emit(extrudingLine(c[0], e.state.Current()))
}

// EmitOpenPath emits a batch of infill or support segments as a single
// extruded path per spec.md §4.I.3-4: consecutive segments are chained
// by reversing every other one (so that, for raster segments that all
// run the same way, segment i's end lies on the same side as segment
// i+1's origin, shortening the travel hop between them), flattened to
// [origin0, end0, origin1, end1, ...], and emitted as one path — the
// first point is a positioning move, every subsequent point extrudes.
// Afterward the fixGcode pass strips the trailing E token from the
// first line of every consecutive emitted-line pair, correcting the
// non-extruding positioning hop between chained segments that the
// naive "every point after the first gets an E field" rule
// mis-extrudes.
func (e *Emitter) EmitOpenPath(segs []geom.Segment, thickness float64) {
	if len(segs) == 0 {
		return
	}
	e.state.Seed(e.lines)

	chained := make([]geom.Segment, len(segs))
	for i, s := range segs {
		if i%2 == 1 {
			s = s.Flip()
		}
		chained[i] = s
	}

	points := make([]geom.Point, 0, 2*len(chained))
	for _, s := range chained {
		points = append(points, s.Origin, s.End())
	}

	start := len(e.lines)
	e.emit(positioningLine(points[0]))
	prev := points[0]
	for _, p := range points[1:] {
		e.state.Add(Extrusion(prev, p, thickness))
		e.emit(extrudingLine(p, e.state.Current()))
		prev = p
	}

	fixGcode(e.lines[start:])
}

// fixGcode strips the trailing whitespace-delimited token (the E
// field, if present) from the first line of every consecutive pair
// among batch, in place. batch[0] never carries an E token (it is the
// path's opening positioning move) so stripping it is a harmless
// no-op; batch[2], batch[4], ... are the travel hops between chained
// segments that EmitOpenPath's uniform extrude rule wrongly gave an E
// field, and this is what actually needs correcting.
func fixGcode(batch []string) {
	for i := 0; i+1 < len(batch); i += 2 {
		batch[i] = stripLastToken(batch[i])
	}
}

// stripLastToken drops the final whitespace-delimited token from line,
// if line has one beginning with "E"; otherwise line is left untouched.
func stripLastToken(line string) string {
	idx := -1
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return line
	}
	if line[idx+1] != 'E' {
		return line
	}
	return line[:idx]
}
