package geometry

import (
	"image/color"
	"math"
	"testing"
)

const tolerance = 1e-9

func seg(x1, y1, x2, y2 float64) Line {
	return Line{Start: Point{x1, y1}, End: Point{x2, y2}}
}

func TestSegmentIntersectCrossing(t *testing.T) {
	p, ok := SegmentIntersect(seg(0, 0, 10, 10), seg(0, 10, 10, 0))
	if !ok {
		t.Fatal("Expected crossing diagonals to intersect")
	}
	if math.Abs(p.X-5) > tolerance || math.Abs(p.Y-5) > tolerance {
		t.Errorf("Expected intersection at (5, 5), got (%f, %f)", p.X, p.Y)
	}
}

func TestSegmentIntersectNoHit(t *testing.T) {
	tests := []struct {
		name string
		a, b Line
	}{
		{"parallel horizontal", seg(0, 0, 10, 0), seg(0, 5, 10, 5)},
		{"parallel diagonal", seg(0, 0, 10, 10), seg(1, 0, 11, 10)},
		{"colinear disjoint", seg(0, 0, 1, 1), seg(5, 5, 6, 6)},
		{"colinear overlapping", seg(0, 0, 4, 4), seg(2, 2, 6, 6)},
		{"lines cross outside a", seg(0, 0, 1, 1), seg(0, 10, 10, 0)},
		{"lines cross outside b", seg(0, 0, 10, 10), seg(8, 0, 9, -1)},
		{"degenerate a", seg(3, 3, 3, 3), seg(0, 10, 10, 0)},
		{"both degenerate", seg(1, 1, 1, 1), seg(1, 1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p, ok := SegmentIntersect(tt.a, tt.b); ok {
				t.Errorf("Expected no intersection, got (%f, %f)", p.X, p.Y)
			}
		})
	}
}

func TestSegmentIntersectAxisAligned(t *testing.T) {
	// Ray going right against a vertical wall
	p, ok := SegmentIntersect(seg(0, 0, 100, 0), seg(50, -10, 50, 10))
	if !ok {
		t.Fatal("Expected ray to hit vertical wall")
	}
	if p.X != 50 || p.Y != 0 {
		t.Errorf("Expected (50, 0), got (%f, %f)", p.X, p.Y)
	}
}

func TestSegmentIntersectTouchingEndpoint(t *testing.T) {
	p, ok := SegmentIntersect(seg(0, 0, 10, 0), seg(10, -5, 10, 5))
	if !ok {
		t.Fatal("Expected segments sharing an x extent to intersect at the endpoint")
	}
	if math.Abs(p.X-10) > tolerance || math.Abs(p.Y) > tolerance {
		t.Errorf("Expected (10, 0), got (%f, %f)", p.X, p.Y)
	}
}

func TestSegmentIntersectKeepsFractions(t *testing.T) {
	p, ok := SegmentIntersect(seg(0, 0, 3, 1), seg(0, 1, 3, 0))
	if !ok {
		t.Fatal("Expected intersection")
	}
	if math.Abs(p.X-1.5) > tolerance || math.Abs(p.Y-0.5) > tolerance {
		t.Errorf("Expected (1.5, 0.5), got (%f, %f)", p.X, p.Y)
	}
}

func TestSegmentIntersectIgnoresColor(t *testing.T) {
	a := seg(0, 0, 10, 10)
	b := seg(0, 10, 10, 0)
	p1, ok1 := SegmentIntersect(a, b)

	a.Color = color.RGBA{255, 0, 0, 255}
	b.Color = color.RGBA{0, 0, 255, 255}
	p2, ok2 := SegmentIntersect(a, b)

	if ok1 != ok2 || p1 != p2 {
		t.Errorf("Expected color to have no effect, got %v/%v and %v/%v", p1, ok1, p2, ok2)
	}
}

func TestEndpointAt(t *testing.T) {
	origin := Point{500, 400}
	end := EndpointAt(origin, math.Pi/2, 300)
	if math.Abs(end.X-500) > tolerance || math.Abs(end.Y-700) > tolerance {
		t.Errorf("Expected (500, 700), got (%f, %f)", end.X, end.Y)
	}
	if d := Distance(origin, end); math.Abs(d-300) > tolerance {
		t.Errorf("Expected length 300, got %f", d)
	}
}

func TestAngleConversion(t *testing.T) {
	if r := Radians(180); math.Abs(r-math.Pi) > tolerance {
		t.Errorf("Expected pi, got %f", r)
	}
	if d := Degrees(Radians(60)); math.Abs(d-60) > tolerance {
		t.Errorf("Expected 60, got %f", d)
	}
}

func TestLineHelpers(t *testing.T) {
	l := seg(0, 0, 3, 4)
	if l.Length() != 5 {
		t.Errorf("Expected length 5, got %f", l.Length())
	}
	if l.Degenerate() {
		t.Error("Expected 3-4-5 line to be non-degenerate")
	}
	if !seg(2, 2, 2, 2).Degenerate() {
		t.Error("Expected point line to be degenerate")
	}

	moved := Point{1, 1}.Add(Vector{2, 3}.Scale(2))
	if moved != (Point{5, 7}) {
		t.Errorf("Expected (5, 7), got %v", moved)
	}
	if v := (Point{5, 7}).Sub(Point{1, 1}); v != (Vector{4, 6}) {
		t.Errorf("Expected {4 6}, got %v", v)
	}
	if l := (Vector{3, 4}).Len(); l != 5 {
		t.Errorf("Expected length 5, got %f", l)
	}
	if d := Distance(Point{1, 1}, Point{4, 5}); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}
