// Package buildlog provides a small progress/timing context threaded
// through the slicing pipeline, in the style of go-detour's
// BuildContext/Context (buildcontext.go, rccontext.go): a capped ring
// of log messages plus a set of named timers, dumped at the end of a
// run. A nil *Context is a valid no-op — every method guards against
// it — so callers that don't care about progress reporting can pass
// nil throughout.
package buildlog

import (
	"fmt"
	"time"
)

// maxMessages caps the message ring, same bound as go-detour's
// BuildContext.
const maxMessages = 1000

// TimerLabel names one stage of the pipeline whose cumulative duration
// is tracked across a run.
type TimerLabel int

// Pipeline stage timers, the categories listed in SPEC_FULL.md's
// ambient-stack section.
const (
	TimerLoadMesh TimerLabel = iota
	TimerNormalize
	TimerExtractLayers
	TimerContours
	TimerInfill
	TimerSupport
	TimerEmit
	numTimers
)

func (l TimerLabel) String() string {
	switch l {
	case TimerLoadMesh:
		return "load mesh"
	case TimerNormalize:
		return "normalize"
	case TimerExtractLayers:
		return "extract layers"
	case TimerContours:
		return "contours"
	case TimerInfill:
		return "infill"
	case TimerSupport:
		return "support"
	case TimerEmit:
		return "emit"
	default:
		return "unknown"
	}
}

type message struct {
	category string
	text     string
}

// Context collects progress messages and per-stage timings for one
// slicing run.
type Context struct {
	messages []message

	start [numTimers]time.Time
	acc   [numTimers]time.Duration
	used  [numTimers]bool
}

// New returns an empty Context.
func New() *Context {
	return &Context{}
}

// Progressf logs a progress message. A nil Context is a no-op.
func (c *Context) Progressf(format string, args ...interface{}) {
	c.log("PROG", format, args...)
}

// Warningf logs a warning message — used for spec.md §7's non-fatal
// degenerate-layer condition (a layer skipped). A nil Context is a
// no-op.
func (c *Context) Warningf(format string, args ...interface{}) {
	c.log("WARN", format, args...)
}

// Errorf logs an error message without aborting the run. A nil
// Context is a no-op.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.log("ERR ", format, args...)
}

func (c *Context) log(category, format string, args ...interface{}) {
	if c == nil || len(c.messages) >= maxMessages {
		return
	}
	c.messages = append(c.messages, message{category: category, text: fmt.Sprintf(format, args...)})
}

// Messages returns every logged message, formatted "CATEGORY text".
func (c *Context) Messages() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.messages))
	for i, m := range c.messages {
		out[i] = m.category + " " + m.text
	}
	return out
}

// StartTimer begins timing label. A nil Context is a no-op.
func (c *Context) StartTimer(label TimerLabel) {
	if c == nil {
		return
	}
	c.start[label] = time.Now()
	c.used[label] = true
}

// StopTimer accumulates the elapsed time since the matching
// StartTimer into label's running total. A nil Context is a no-op.
func (c *Context) StopTimer(label TimerLabel) {
	if c == nil {
		return
	}
	c.acc[label] += time.Since(c.start[label])
}

// AccumulatedTime returns the total duration spent in label, or -1 if
// the timer was never started (mirroring go-detour's Contexter
// interface, whose doc comment promises the same sentinel).
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if c == nil || !c.used[label] {
		return -1
	}
	return c.acc[label]
}

// Dump renders one line per timer that was ever started, in the style
// of go-detour's LogBuildTimes (recast/dump.go): a name, the
// accumulated duration, and its percentage of total. Timers that were
// never started are omitted, the same way go-detour's logLine silently
// skips a timer whose AccumulatedTime is -1.
func (c *Context) Dump(total time.Duration) []string {
	if c == nil {
		return nil
	}
	var lines []string
	lines = append(lines, fmt.Sprintf("build times, total %v", total))
	pc := 100.0 / float64(total)
	for label := TimerLabel(0); label < numTimers; label++ {
		t := c.AccumulatedTime(label)
		if t < 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %-16s %8v (%5.1f%%)", label, t, float64(t)*pc))
	}
	return append(lines, c.Messages()...)
}
