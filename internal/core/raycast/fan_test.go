package raycast

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

const tolerance = 1e-9

func wall(x1, y1, x2, y2 float64) geometry.Line {
	return geometry.Line{Start: geometry.Point{X: x1, Y: y1}, End: geometry.Point{X: x2, Y: y2}}
}

func mustFan(t *testing.T, numRays int, length, fovDeg float64) Fan {
	t.Helper()
	fan, err := NewFan(numRays, length, fovDeg)
	if err != nil {
		t.Fatalf("NewFan(%d, %v, %v) failed: %v", numRays, length, fovDeg, err)
	}
	return fan
}

func TestCastRaysWithoutWalls(t *testing.T) {
	origin := geometry.Point{X: 400, Y: 300}
	playerAngle := 0.5
	fan := mustFan(t, 3, 200, 60)

	rays := CastRays(origin, playerAngle, fan, nil)
	if len(rays) != 3 {
		t.Fatalf("Expected 3 rays, got %d", len(rays))
	}

	wantAngles := []float64{
		playerAngle - geometry.Radians(30),
		playerAngle,
		playerAngle + geometry.Radians(30),
	}
	for i, ray := range rays {
		if ray.Start != origin {
			t.Errorf("ray %d: expected start %v, got %v", i, origin, ray.Start)
		}
		if l := ray.Length(); math.Abs(l-200) > tolerance {
			t.Errorf("ray %d: expected length 200, got %f", i, l)
		}
		got := math.Atan2(ray.End.Y-ray.Start.Y, ray.End.X-ray.Start.X)
		if math.Abs(got-wantAngles[i]) > tolerance {
			t.Errorf("ray %d: expected angle %f, got %f", i, wantAngles[i], got)
		}
	}
}

func TestCastRaysSingleWallAhead(t *testing.T) {
	origin := geometry.Point{X: 0, Y: 0}
	fan := mustFan(t, 3, 100, 10)
	walls := []geometry.Line{wall(50, -100, 50, 100)}

	rays := CastRays(origin, 0, fan, walls)

	center := rays[1]
	if math.Abs(center.End.X-50) > tolerance || math.Abs(center.End.Y) > tolerance {
		t.Errorf("Expected center ray to end at (50, 0), got (%f, %f)", center.End.X, center.End.Y)
	}
	for i, ray := range rays {
		if ray.Length() > fan.RayLength+tolerance {
			t.Errorf("ray %d: length %f exceeds ray length %f", i, ray.Length(), fan.RayLength)
		}
		if math.Abs(ray.End.X-50) > tolerance {
			t.Errorf("ray %d: expected to stop on the wall at x=50, got x=%f", i, ray.End.X)
		}
	}
}

func TestCastRaysWallOutOfReach(t *testing.T) {
	fan := mustFan(t, 2, 40, 20)
	walls := []geometry.Line{wall(50, -100, 50, 100)}

	for i, ray := range CastRays(geometry.Point{}, 0, fan, walls) {
		if math.Abs(ray.Length()-40) > tolerance {
			t.Errorf("ray %d: expected full length 40, got %f", i, ray.Length())
		}
	}
}

func TestCastRayHitModes(t *testing.T) {
	// The farther wall comes first in the list
	walls := []geometry.Line{
		wall(80, -10, 80, 10),
		wall(40, -10, 40, 10),
	}

	nearest, ok := CastRay(geometry.Point{}, 0, 100, HitNearest, walls)
	if !ok {
		t.Fatal("Expected nearest ray to be clipped")
	}
	if math.Abs(nearest.End.X-40) > tolerance {
		t.Errorf("Expected nearest hit at x=40, got %f", nearest.End.X)
	}

	first, ok := CastRay(geometry.Point{}, 0, 100, HitFirst, walls)
	if !ok {
		t.Fatal("Expected first-hit ray to be clipped")
	}
	if math.Abs(first.End.X-80) > tolerance {
		t.Errorf("Expected first hit at x=80, got %f", first.End.X)
	}
}

func TestCastRaysIsDeterministic(t *testing.T) {
	fan := mustFan(t, 10, 800, 60)
	walls := []geometry.Line{
		wall(200, 400, 0, 0),
		wall(200, 200, 200, 0),
		wall(700, 100, 700, 700),
	}
	origin := geometry.Point{X: 500, Y: 400}

	first := CastRays(origin, 2.9, fan, walls)
	second := CastRays(origin, 2.9, fan, walls)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical input")
	}
}

func TestCastRaysCarriesFanColor(t *testing.T) {
	fan := mustFan(t, 2, 10, 90)
	fan.Color.G = 255
	for i, ray := range CastRays(geometry.Point{}, 0, fan, nil) {
		if ray.Color != fan.Color {
			t.Errorf("ray %d: expected color %v, got %v", i, fan.Color, ray.Color)
		}
	}
}

func TestNewFanValidation(t *testing.T) {
	tests := []struct {
		name    string
		numRays int
		length  float64
		fov     float64
	}{
		{"one ray", 1, 100, 60},
		{"zero rays", 0, 100, 60},
		{"zero length", 10, 0, 60},
		{"negative length", 10, -5, 60},
		{"NaN length", 10, math.NaN(), 60},
		{"zero fov", 10, 100, 0},
		{"fov over full turn", 10, 100, 361},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFan(tt.numRays, tt.length, tt.fov)
			if !errors.Is(err, ErrInvalidFan) {
				t.Errorf("Expected ErrInvalidFan, got %v", err)
			}
		})
	}

	fan := mustFan(t, 10, 800, 60)
	if math.Abs(fan.FOV-math.Pi/3) > tolerance {
		t.Errorf("Expected FOV stored as pi/3 radians, got %f", fan.FOV)
	}
}

func TestParseHitMode(t *testing.T) {
	for in, want := range map[string]HitMode{"": HitNearest, "nearest": HitNearest, " First ": HitFirst} {
		got, err := ParseHitMode(in)
		if err != nil || got != want {
			t.Errorf("ParseHitMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseHitMode("closest"); err == nil {
		t.Error("Expected error for unknown hit mode")
	}
	if HitFirst.String() != "first" || HitNearest.String() != "nearest" {
		t.Error("Expected String to round-trip config names")
	}
}
