// Package raycast casts fans of rays from a viewer against wall segments.
package raycast

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// ErrInvalidFan is returned when a fan cannot be cast with the given parameters
var ErrInvalidFan = errors.New("invalid ray fan")

// HitMode selects which wall clips a ray when several intersect it
type HitMode int

const (
	// HitNearest clips each ray at the closest intersection to the origin
	HitNearest HitMode = iota
	// HitFirst clips each ray at the first intersecting wall in list order
	HitFirst
)

// String returns the config name of the mode
func (m HitMode) String() string {
	switch m {
	case HitFirst:
		return "first"
	default:
		return "nearest"
	}
}

// ParseHitMode converts a config value into a HitMode
func ParseHitMode(s string) (HitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return HitNearest, nil
	case "first":
		return HitFirst, nil
	default:
		return HitNearest, fmt.Errorf("unknown hit mode %q", s)
	}
}

// Fan describes how rays are spread across the field of view
type Fan struct {
	NumRays   int
	RayLength float64
	FOV       float64 // Total angular width in radians
	Mode      HitMode
	Color     color.RGBA
}

// NewFan builds a validated fan. The field of view is given in degrees and
// stored in radians.
func NewFan(numRays int, rayLength, fovDegrees float64) (Fan, error) {
	fan := Fan{
		NumRays:   numRays,
		RayLength: rayLength,
		FOV:       geometry.Radians(fovDegrees),
		Mode:      HitNearest,
	}
	if err := fan.Validate(); err != nil {
		return Fan{}, err
	}
	return fan, nil
}

// Validate checks that the fan can be cast without dividing by zero
func (f Fan) Validate() error {
	if f.NumRays < 2 {
		return fmt.Errorf("%w: need at least 2 rays, got %d", ErrInvalidFan, f.NumRays)
	}
	if !(f.RayLength > 0) || math.IsInf(f.RayLength, 0) {
		return fmt.Errorf("%w: ray length must be positive and finite, got %v", ErrInvalidFan, f.RayLength)
	}
	if !(f.FOV > 0) || f.FOV > 2*math.Pi {
		return fmt.Errorf("%w: field of view must be in (0, 360] degrees, got %.2f", ErrInvalidFan, geometry.Degrees(f.FOV))
	}
	return nil
}

// Step returns the angle between neighbouring rays
func (f Fan) Step() float64 {
	return f.FOV / float64(f.NumRays-1)
}

// CastRays casts NumRays rays from origin spread evenly across the field of
// view centred on angle. Rays are returned in angle order, from angle-FOV/2
// to angle+FOV/2, each ending at its wall hit or at full length.
//
// The fan must have passed Validate.
func CastRays(origin geometry.Point, angle float64, fan Fan, walls []geometry.Line) []geometry.Line {
	rays := make([]geometry.Line, 0, fan.NumRays)

	start := angle - fan.FOV/2
	step := fan.Step()
	for i := 0; i < fan.NumRays; i++ {
		rayAngle := start + float64(i)*step
		ray, _ := CastRay(origin, rayAngle, fan.RayLength, fan.Mode, walls)
		ray.Color = fan.Color
		rays = append(rays, ray)
	}

	return rays
}

// CastRay casts a single ray and clips it against walls.
// Returns the ray and whether it was clipped by a wall.
func CastRay(origin geometry.Point, rayAngle, length float64, mode HitMode, walls []geometry.Line) (geometry.Line, bool) {
	ray := geometry.Line{
		Start: origin,
		End:   geometry.EndpointAt(origin, rayAngle, length),
	}

	hit, ok := findHit(ray, mode, walls)
	if ok {
		ray.End = hit
	}
	return ray, ok
}

// findHit tests ray against each wall in list order
func findHit(ray geometry.Line, mode HitMode, walls []geometry.Line) (geometry.Point, bool) {
	var closestPoint geometry.Point
	closestDist := math.Inf(1)
	found := false

	for _, wall := range walls {
		point, ok := geometry.SegmentIntersect(ray, wall)
		if !ok {
			continue
		}
		if mode == HitFirst {
			return point, true
		}

		if dist := geometry.Distance(ray.Start, point); dist < closestDist {
			closestDist = dist
			closestPoint = point
			found = true
		}
	}

	return closestPoint, found
}
