package geom

import "github.com/arl/assertgo"

// Segment is the parametric pair (Origin, Dir) representing the point
// set {Origin + t*Dir : t in [0,1]}. The "other endpoint" is
// Origin+Dir. Flipping a segment produces (Origin+Dir, -Dir): the
// geometric set is unchanged, traversal direction reverses.
type Segment struct {
	Origin Point
	Dir    Point
}

// NewSegment constructs the segment running from p1 to p2.
func NewSegment(p1, p2 Point) Segment {
	return Segment{Origin: p1, Dir: p2.Sub(p1)}
}

// End returns the far endpoint, Origin+Dir.
func (s Segment) End() Point {
	return s.Origin.Add(s.Dir)
}

// Flip returns (Origin+Dir, -Dir): same point set, reversed traversal.
// assert.True documents and checks the involution invariant this
// relies on: flipping must land back on the original origin (spec.md
// §8 invariant 2).
func (s Segment) Flip() Segment {
	flipped := Segment{Origin: s.End(), Dir: s.Dir.Negate()}
	assert.True(flipped.End() == s.Origin, "flip did not reverse traversal: flipped.End()=%v, want %v", flipped.End(), s.Origin)
	return flipped
}

// Length returns the 3D Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Dir.Magnitude()
}

// ShortenBy shortens the segment by a millimeters at both ends: the
// origin is advanced by a/|Dir| along Dir, and Dir is rescaled to
// (1 - 2a/|Dir|) of its original length. If 2a >= |Dir| the segment
// degenerates to a zero-length segment at its midpoint rather than
// inverting direction.
func (s Segment) ShortenBy(a float64) Segment {
	length := s.Length()
	if length == 0 {
		return s
	}
	frac := a / length
	if 2*frac >= 1 {
		mid := s.Origin.Add(s.Dir.Scale(0.5))
		return Segment{Origin: mid, Dir: Point{}}
	}
	newOrigin := s.Origin.Add(s.Dir.Scale(frac))
	newDir := s.Dir.Scale(1 - 2*frac)
	return Segment{Origin: newOrigin, Dir: newDir}
}

// PointAtAxis solves (v - Origin.axis)/Dir.axis = t and returns
// Origin + t*Dir, reporting ok=false ("no such point") when t falls
// outside [0,1] or when Dir.axis is zero (a line parallel to the
// queried axis never yields a fault from division by zero).
func (s Segment) PointAtAxis(axis Axis, v float64) (p Point, ok bool) {
	d := s.Dir.Axis(axis)
	if d == 0 {
		return Point{}, false
	}
	t := (v - s.Origin.Axis(axis)) / d
	if t < 0 || t > 1 {
		return Point{}, false
	}
	return s.Origin.Add(s.Dir.Scale(t)), true
}

// PointAtZ is PointAtAxis(AxisZ, z), the query used by layer extraction.
func (s Segment) PointAtZ(z float64) (Point, bool) {
	return s.PointAtAxis(AxisZ, z)
}

// Intersect2D computes the 2D (xy-plane) intersection of two segments,
// ignoring Z. Given segments (P, r) and (Q, s), denom = r x s (2D
// cross). If denom is zero the segments are parallel or collinear and
// are uniformly reported as non-intersecting. Otherwise
// t = ((Q-P) x s)/denom, u = ((Q-P) x r)/denom; an intersection exists
// iff both t and u lie in [0,1] (endpoint-touching counts), and equals
// P + t*r.
func Intersect2D(a, b Segment) (p Point, ok bool) {
	denom := a.Dir.Cross2D(b.Dir)
	if denom == 0 {
		return Point{}, false
	}
	diff := b.Origin.Sub(a.Origin)
	t := diff.Cross2D(b.Dir) / denom
	u := diff.Cross2D(a.Dir) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	// Intersect2D(a,b) and Intersect2D(b,a) must agree: the denominator
	// each computes is the other's negation (cross product is
	// anti-commutative), so swapping arguments can never turn a hit
	// into a miss or move the reported point (spec.md §8 invariant 3).
	assert.True(b.Dir.Cross2D(a.Dir) == -denom, "Intersect2D symmetry precondition violated: cross2D is not anti-commutative")
	return a.Origin.Add(a.Dir.Scale(t)), true
}
