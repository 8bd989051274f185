package cmd

import "github.com/arl/slicer/slice"

// fileConfig is the shape of a `--config FILE.yml` document: every key
// optional, per spec.md §6.1's "perimeterLayers, infill, thickness"
// overlay, applied on top of DefaultOptions() and before CLI flags.
type fileConfig struct {
	PerimeterLayers *int     `yaml:"perimeterLayers"`
	Infill          *int     `yaml:"infill"`
	Thickness       *float64 `yaml:"thickness"`
}

func (f fileConfig) overlay() slice.Overlay {
	return slice.Overlay{
		PerimeterLayers: f.PerimeterLayers,
		Infill:          f.Infill,
		Thickness:       f.Thickness,
	}
}

// loadConfigOverlay reads path, if non-empty, as a YAML fileConfig. An
// empty path (no --config given) is not an error and yields the zero
// Overlay (every field nil, so Options.Apply is a no-op); a path naming
// no existing file, or a malformed document, is reported to the caller.
func loadConfigOverlay(path string) (slice.Overlay, error) {
	if path == "" {
		return slice.Overlay{}, nil
	}
	if err := fileExists(path); err != nil {
		return slice.Overlay{}, err
	}
	var fc fileConfig
	if err := unmarshalYAMLFile(path, &fc); err != nil {
		return slice.Overlay{}, err
	}
	return fc.overlay(), nil
}
