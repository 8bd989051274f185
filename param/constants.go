// Package param holds the fixed numeric constants shared across the
// slicing pipeline: bed geometry, filament/nozzle dimensions, and the
// defaults used when a process option is left unset or out of range.
// Kept dependency-free so every other package (geom, mesh, slice,
// infill, gcode) can import it without risking an import cycle.
package param

// Bed geometry. The print bed is a fixed 150x150mm square; mesh
// normalization centers a model's xy bounding box on it.
const (
	BedSizeX = 150.0
	BedSizeY = 150.0
)

// Extruder geometry, used by the extrusion accountant (gcode package)
// to convert a travelled distance into a filament length.
const (
	NozzleDiameter   = 0.4
	FilamentDiameter = 1.75
)

// LineThickness is the spacing between successive raster lines in an
// infill/support line family.
const LineThickness = 0.6

// DefaultBottomTopThickness is the vertical span, in millimeters, of
// solid bottom/top skin at the start and end of a print; it is divided
// by the configured layer thickness to get the number of solid layers.
const DefaultBottomTopThickness = 0.8

// Option defaults, used when a CLI flag or config file value is absent
// or out of range (spec: permissive parsing, never reject, fall back
// to these).
const (
	DefaultPerimeterLayers = 2
	DefaultInfillPercent   = 20
	DefaultThickness       = 0.2
)

// DefaultOutputFile is the fixed output G-code file name used when no
// -o/--output flag overrides it.
const DefaultOutputFile = "sampleGcode.g"
