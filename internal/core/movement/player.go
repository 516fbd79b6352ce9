package movement

import (
	"image/color"
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// Direction is a movement direction relative to the player's facing
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns a readable name for the direction
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Player represents the player's pose in the world.
type Player struct {
	Position     geometry.Point
	Angle        float64 // Facing in radians, never wrapped
	Speed        float64
	FOV          float64 // Radians, width of the ray fan
	ViewDistance float64 // Reach of each ray
	Color        color.RGBA
}

// NewPlayer creates a player. fovDegrees is converted to radians.
func NewPlayer(position geometry.Point, angle, speed, fovDegrees, viewDistance float64, clr color.RGBA) Player {
	return Player{
		Position:     position,
		Angle:        angle,
		Speed:        speed,
		FOV:          geometry.Radians(fovDegrees),
		ViewDistance: viewDistance,
		Color:        clr,
	}
}

// Turn rotates the player by delta radians
func (p *Player) Turn(delta float64) {
	p.Angle += delta
}

// Heading returns the angle used for moving in direction d
func (p *Player) Heading(d Direction) float64 {
	if d == Backward {
		return p.Angle + math.Pi
	}
	return p.Angle
}

// Move steps the player one Speed unit in direction d unless the probe hits a
// wall. The probe and the displacement use the same heading. Returns false
// when the move was rejected; the position is then unchanged.
func (p *Player) Move(d Direction, walls []geometry.Line, probeLength float64) bool {
	heading := p.Heading(d)
	if WouldCollide(walls, p.Position, heading, probeLength) {
		return false
	}
	p.Position = p.Position.Add(ComputeMovement(heading, p.Speed))
	return true
}
