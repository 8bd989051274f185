package geom

import (
	"math"
	"testing"
)

func TestFlipInvolution(t *testing.T) {
	s := NewSegment(NewPoint(0, 0, 0), NewPoint(3, 4, 0))
	got := s.Flip().Flip()
	if got.Origin.Round() != s.Origin.Round() || got.Dir.Round() != s.Dir.Round() {
		t.Fatalf("flip(flip(s)) = %+v, want %+v", got, s)
	}
}

func TestFlipReversesTraversal(t *testing.T) {
	s := NewSegment(NewPoint(0, 0, 0), NewPoint(3, 4, 0))
	flipped := s.Flip()
	if flipped.Origin != s.End() {
		t.Fatalf("flipped origin = %v, want %v", flipped.Origin, s.End())
	}
	if flipped.End() != s.Origin {
		t.Fatalf("flipped end = %v, want %v", flipped.End(), s.Origin)
	}
}

func TestShortenByPreservesDirectionAndLength(t *testing.T) {
	s := NewSegment(NewPoint(0, 0, 0), NewPoint(10, 0, 0))
	a := 2.0
	short := s.ShortenBy(a)
	wantLen := s.Length() - 2*a
	if math.Abs(short.Length()-wantLen) > 1e-9 {
		t.Fatalf("shortened length = %v, want %v", short.Length(), wantLen)
	}
	// direction must be a positive scalar multiple of the original
	ratio := short.Dir.X / s.Dir.X
	if ratio <= 0 {
		t.Fatalf("shortened direction is not a positive multiple of original: ratio=%v", ratio)
	}
}

func TestPointAtAxisParallelReturnsNoResult(t *testing.T) {
	// segment lying entirely at z=0, queried for a different z
	s := NewSegment(NewPoint(0, 0, 0), NewPoint(1, 1, 0))
	if _, ok := s.PointAtZ(1); ok {
		t.Fatalf("PointAtZ on a z-parallel segment should report no result")
	}
}

func TestPointAtAxisWithinBounds(t *testing.T) {
	s := NewSegment(NewPoint(0, 0, 0), NewPoint(0, 0, 10))
	p, ok := s.PointAtZ(5)
	if !ok {
		t.Fatalf("PointAtZ(5) should succeed")
	}
	if p.Z != 5 {
		t.Fatalf("p.Z = %v, want 5", p.Z)
	}
}

func TestPointAtAxisOutOfBounds(t *testing.T) {
	s := NewSegment(NewPoint(0, 0, 0), NewPoint(0, 0, 10))
	if _, ok := s.PointAtZ(11); ok {
		t.Fatalf("PointAtZ(11) should report no result (t > 1)")
	}
	if _, ok := s.PointAtZ(-1); ok {
		t.Fatalf("PointAtZ(-1) should report no result (t < 0)")
	}
}

func TestIntersect2DSymmetry(t *testing.T) {
	a := NewSegment(NewPoint(0, 0, 0), NewPoint(2, 2, 0))
	b := NewSegment(NewPoint(0, 2, 0), NewPoint(2, 0, 0))

	p1, ok1 := Intersect2D(a, b)
	p2, ok2 := Intersect2D(b, a)
	if ok1 != ok2 {
		t.Fatalf("symmetry broken: ok1=%v ok2=%v", ok1, ok2)
	}
	if ok1 && p1.Round() != p2.Round() {
		t.Fatalf("Intersect2D(a,b)=%v != Intersect2D(b,a)=%v", p1, p2)
	}
}

func TestIntersect2DParallelIsNoResult(t *testing.T) {
	a := NewSegment(NewPoint(0, 0, 0), NewPoint(1, 0, 0))
	b := NewSegment(NewPoint(0, 1, 0), NewPoint(1, 1, 0))
	if _, ok := Intersect2D(a, b); ok {
		t.Fatalf("parallel segments should not intersect")
	}
}

func TestIntersect2DEndpointTouching(t *testing.T) {
	a := NewSegment(NewPoint(0, 0, 0), NewPoint(1, 1, 0))
	b := NewSegment(NewPoint(1, 1, 0), NewPoint(2, 0, 0))
	p, ok := Intersect2D(a, b)
	if !ok {
		t.Fatalf("endpoint-touching segments should intersect")
	}
	if p.Round() != NewPoint(1, 1, 0) {
		t.Fatalf("intersection = %v, want (1,1,0)", p)
	}
}
