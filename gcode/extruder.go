package gcode

import (
	"strconv"
	"strings"

	"github.com/arl/assertgo"
)

// ExtruderState is the single cumulative E value threaded through the
// emission of an entire print (spec.md §3, §4.H). It only ever
// increases: Add records one more move's worth of filament.
type ExtruderState struct {
	current float64
}

// Current returns the cumulative E value.
func (e *ExtruderState) Current() float64 {
	return e.current
}

// Add advances the cumulative E value by delta, which must be >= 0.
// assert.True checks the monotonic-accumulation invariant spec.md §3/
// §8 requires of ExtruderState directly, rather than trusting every
// caller to only ever pass a non-negative delta.
func (e *ExtruderState) Add(delta float64) float64 {
	prev := e.current
	e.current += delta
	assert.True(e.current >= prev, "ExtruderState regressed: %v -> %v (delta=%v)", prev, e.current, delta)
	return e.current
}

// Seed resynchronizes the accountant from the tail of previously
// emitted G-code: it scans lines in reverse for the first line
// carrying a whitespace-delimited token beginning with "E" and sets
// the cumulative value to that token's parsed numeric tail. Lines with
// no E token (positioning moves, the first point of a contour) are
// skipped. If no line carries an E token, the state is left at zero.
//
// This is invoked at the start of each new contour and each new layer
// per spec.md §4.H, so that a seam between two independently-produced
// batches of lines (e.g. across the fixGcode pass) never drifts from
// what the text itself records.
func (e *ExtruderState) Seed(lines []string) {
	for i := len(lines) - 1; i >= 0; i-- {
		if v, ok := lastEValue(lines[i]); ok {
			e.current = v
			return
		}
	}
	e.current = 0
}

// lastEValue extracts and parses the numeric tail of a token beginning
// with "E" (case-sensitive, matching the upper-cased tokens this
// package emits) from a single G-code line, if one is present.
func lastEValue(line string) (float64, bool) {
	fields := strings.Fields(line)
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if len(f) > 1 && f[0] == 'E' {
			v, err := strconv.ParseFloat(f[1:], 64)
			if err != nil {
				continue
			}
			return v, true
		}
	}
	return 0, false
}
