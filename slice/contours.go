package slice

import (
	"errors"
	"fmt"

	"github.com/arl/slicer/geom"
)

// Contour is a non-empty ordered sequence of points, cyclic: the path
// closes from the last point back to the first. Consecutive points
// differ; there is no duplicate point except implicitly at closure.
type Contour []geom.Point

// ErrDegenerateContour is returned by ReconstructContours when the
// input segments for a layer cannot be chained into closed polygons —
// a chain runs out of matching segments before returning to its
// starting point. Per spec.md §7 this is not fatal: the caller should
// skip the layer with a warning rather than abort the whole print.
var ErrDegenerateContour = errors.New("slice: layer segments do not chain into a closed contour")

// ReconstructContours chains an unordered bag of 2-point segments at a
// single Z into closed polygons. It repeatedly starts a new contour
// from the pool's first remaining segment, then walks forward:
// whichever pool segment has an endpoint equal to the contour's last
// point is removed and its other endpoint appended. A contour is
// complete once no pool segment matches its last point. Because every
// matched segment is removed from the pool, the pool strictly shrinks
// every iteration and the algorithm always terminates.
//
// Tie-breaking when more than one pool segment matches the current
// last point is first-in-pool-order: deterministic within a run, but
// the resulting orientation is not otherwise specified (spec.md §4.D).
func ReconstructContours(segments []geom.Segment) ([]Contour, error) {
	pool := make([]geom.Segment, len(segments))
	copy(pool, segments)

	var contours []Contour
	for len(pool) > 0 {
		first := pool[0]
		pool = pool[1:]

		contour := Contour{first.Origin, first.End()}
		for {
			last := contour[len(contour)-1]
			idx, next, ok := popMatching(pool, last)
			if !ok {
				break
			}
			pool = append(pool[:idx], pool[idx+1:]...)
			contour = append(contour, next)
		}

		if contour[len(contour)-1] != contour[0] {
			return nil, fmt.Errorf("%w: chain of %d points did not close", ErrDegenerateContour, len(contour))
		}
		// Drop the duplicate closing point: contours are cyclic, the
		// closure is implicit (spec.md §3 invariant).
		contours = append(contours, contour[:len(contour)-1])
	}
	return contours, nil
}

// popMatching finds the first pool segment with an endpoint equal to
// last, returning its index and the *other* endpoint.
func popMatching(pool []geom.Segment, last geom.Point) (idx int, other geom.Point, ok bool) {
	for i, s := range pool {
		if s.Origin == last {
			return i, s.End(), true
		}
		if s.End() == last {
			return i, s.Origin, true
		}
	}
	return 0, geom.Point{}, false
}
