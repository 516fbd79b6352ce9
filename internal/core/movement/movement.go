// Package movement handles player motion and coarse collision against walls.
package movement

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// ComputeMovement returns the displacement for moving speed units along angle
func ComputeMovement(angle, speed float64) geometry.Vector {
	return geometry.Vector{
		DX: speed * math.Cos(angle),
		DY: speed * math.Sin(angle),
	}
}

// ProbeSegment builds the segment used to test a move before it happens
func ProbeSegment(position geometry.Point, angle, probeLength float64) geometry.Line {
	return geometry.Line{
		Start: position,
		End:   geometry.EndpointAt(position, angle, probeLength),
	}
}

// WouldCollide reports whether a probe of probeLength cast from position
// along angle crosses any wall. Only the probe is tested, not the
// destination point.
func WouldCollide(walls []geometry.Line, position geometry.Point, angle, probeLength float64) bool {
	probe := ProbeSegment(position, angle, probeLength)
	for _, wall := range walls {
		if _, ok := geometry.SegmentIntersect(probe, wall); ok {
			return true
		}
	}
	return false
}
