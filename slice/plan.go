package slice

import (
	"runtime"

	"github.com/arl/slicer/internal/buildlog"
	"github.com/arl/slicer/mesh"
	"golang.org/x/sync/errgroup"
)

// LayerPlan is the per-layer tuple the emitter consumes: the layer's
// contours, its 1-based index from the bottom and from the top, and
// its classified LayerType. Constructed by BuildLayerPlans, read by
// the gcode emitter, discarded after the layer's G-code is produced.
type LayerPlan struct {
	Contours           []Contour
	FromStart, FromEnd int
	Type               LayerType
	Z                  float64
}

// BuildLayerPlans slices the whole mesh into an ordered, bottom-to-top
// slice of LayerPlans. Per-layer segment extraction and contour
// reconstruction (§4.C/§4.D) are pure functions of one Z value and are
// fanned out across an errgroup.Group bounded by GOMAXPROCS workers;
// results are written into a pre-sized slice indexed by layer number,
// so the returned order is deterministic regardless of which goroutine
// finishes first (spec.md §5's "parallel slicing, sequential
// emission" design).
//
// EnumerateLayerZs walks top-down (zmax, zmax-t, ...), matching
// spec.md §4.C's enumeration; this function reverses that into
// bottom-up order before returning, resolving spec.md §9's open
// question the way its note recommends: enumerate in either order,
// emit and accumulate ExtruderState bottom-up.
//
// A layer whose segments fail to chain into closed contours
// (ErrDegenerateContour) is dropped with a warning logged to ctx
// rather than aborting the whole print, per spec.md §7. ctx may be nil.
func BuildLayerPlans(facets []mesh.Facet, opts Options, ctx *buildlog.Context) ([]LayerPlan, error) {
	ctx.StartTimer(buildlog.TimerExtractLayers)
	defer ctx.StopTimer(buildlog.TimerExtractLayers)

	_, zmax := mesh.ZExtent(facets)
	zs := EnumerateLayerZs(zmax, opts.Thickness)
	n := len(zs)

	// results is indexed top-down (same order as zs); fromStart counts
	// bottom-up, so results[i] corresponds to fromStart = n-i.
	results := make([]*LayerPlan, n)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, z := range zs {
		i, z := i, z
		g.Go(func() error {
			segs := ExtractLayerSegments(facets, z)
			if len(segs) == 0 {
				return nil
			}
			contours, err := ReconstructContours(segs)
			if err != nil {
				ctx.Warningf("layer at z=%.5f: %v, skipping", z, err)
				return nil
			}
			fromStart := n - i
			fromEnd := i + 1
			results[i] = &LayerPlan{
				Contours:  contours,
				FromStart: fromStart,
				FromEnd:   fromEnd,
				Type:      ClassifyLayer(fromStart, fromEnd, opts.Thickness),
				Z:         z,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plans := make([]LayerPlan, 0, n)
	for i := n - 1; i >= 0; i-- {
		if results[i] != nil {
			plans = append(plans, *results[i])
		}
	}
	return plans, nil
}
