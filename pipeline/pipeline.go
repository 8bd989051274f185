// Package pipeline wires the mesh loader, layer slicer, infill/support
// generators, and G-code emitter into the single end-to-end run
// spec.md §2's component table describes: STL in, an ordered sequence
// of upper-cased G-code lines out.
package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/arl/slicer/gcode"
	"github.com/arl/slicer/infill"
	"github.com/arl/slicer/internal/buildlog"
	"github.com/arl/slicer/mesh"
	"github.com/arl/slicer/slice"
)

// Run parses r as ASCII STL, normalizes it onto the bed, slices it
// into layers per opts, generates infill and support for each layer,
// and emits the whole print as G-code lines, bottom layer first. ctx
// may be nil; every stage reports its timing and any non-fatal
// warnings (a dropped degenerate layer) through it.
func Run(r io.Reader, opts slice.Options, ctx *buildlog.Context) ([]string, error) {
	ctx.StartTimer(buildlog.TimerLoadMesh)
	facets, err := mesh.ParseASCIISTL(r)
	ctx.StopTimer(buildlog.TimerLoadMesh)
	if err != nil {
		return nil, fmt.Errorf("pipeline: loading mesh: %w", err)
	}

	ctx.StartTimer(buildlog.TimerNormalize)
	facets = mesh.Normalize(facets)
	ctx.StopTimer(buildlog.TimerNormalize)

	plans, err := slice.BuildLayerPlans(facets, opts, ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: slicing layers: %w", err)
	}

	ctx.StartTimer(buildlog.TimerEmit)
	defer ctx.StopTimer(buildlog.TimerEmit)

	var e gcode.Emitter
	for _, plan := range plans {
		ctx.StartTimer(buildlog.TimerInfill)
		fill := infill.Generate(plan.Contours, plan.Z, plan.Type, opts.Infill)
		ctx.StopTimer(buildlog.TimerInfill)

		ctx.StartTimer(buildlog.TimerSupport)
		support := infill.GenerateSupport(plan.Contours, plan.Z)
		ctx.StopTimer(buildlog.TimerSupport)

		e.EmitLayer(plan, fill, support, opts.Thickness, opts.PerimeterLayers)
	}

	lines := e.Lines()
	for i, l := range lines {
		lines[i] = strings.ToUpper(l)
	}
	return lines, nil
}
