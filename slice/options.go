// Package slice implements the geometric core of the pipeline: layer
// extraction, contour reconstruction, layer-type classification, and
// the parallel per-layer driver that ties them together.
package slice

import "github.com/arl/slicer/param"

// Options is the process configuration record: number of perimeter
// wall layers, percentage infill, and layer thickness in millimeters.
// Out-of-range values are never rejected by the core — callers
// (cmd/slicer) are expected to validate and silently fall back to
// DefaultOptions() fields, per the permissive external-interface
// contract.
type Options struct {
	PerimeterLayers int
	Infill          int
	Thickness       float64
}

// DefaultOptions returns the built-in option defaults: 2 perimeter
// layers, 20% infill, 0.2mm layer thickness.
func DefaultOptions() Options {
	return Options{
		PerimeterLayers: param.DefaultPerimeterLayers,
		Infill:          param.DefaultInfillPercent,
		Thickness:       param.DefaultThickness,
	}
}

// Valid reports whether every field of o is within the bounds the spec
// requires (perimeterLayers > 0, infill in [0,100], thickness > 0).
// The core never calls this to reject input; cmd/slicer checks it with
// assert.True on the fully overlaid Options. The field-by-field
// fallback for out-of-range values is done by Apply, not by Valid.
func (o Options) Valid() bool {
	return o.PerimeterLayers > 0 && o.Infill >= 0 && o.Infill <= 100 && o.Thickness > 0
}

// Overlay is a partial Options: every field is a pointer, nil meaning
// "not specified." It is what a YAML config file or a set of CLI flags
// parses into, since Infill's valid range includes 0 and therefore
// can't use a zero value to mean "unset."
type Overlay struct {
	PerimeterLayers *int
	Infill          *int
	Thickness       *float64
}

// Apply returns a copy of o with every non-nil, in-range field of ov
// applied on top. Out-of-range values are dropped silently (the
// permissive-parsing contract from spec.md §6-§7), leaving o's field
// untouched rather than erroring. Call it once with the YAML overlay,
// then again with the CLI-flag overlay, to get the documented
// precedence (defaults < config file < flags).
func (o Options) Apply(ov Overlay) Options {
	merged := o
	if ov.PerimeterLayers != nil && *ov.PerimeterLayers > 0 {
		merged.PerimeterLayers = *ov.PerimeterLayers
	}
	if ov.Infill != nil && *ov.Infill >= 0 && *ov.Infill <= 100 {
		merged.Infill = *ov.Infill
	}
	if ov.Thickness != nil && *ov.Thickness > 0 {
		merged.Thickness = *ov.Thickness
	}
	return merged
}
