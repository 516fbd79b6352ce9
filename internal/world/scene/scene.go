// Package scene holds the single in-memory world: the fixed walls and the
// player pose. The host loop owns a Scene and feeds it input events.
package scene

import (
	"errors"
	"fmt"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/movement"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/simulation"
)

// ErrDegenerateWall is returned when a wall's endpoints coincide
var ErrDegenerateWall = errors.New("degenerate wall")

// Event is a discrete player command produced by the input layer
type Event int

const (
	EventNone Event = iota
	EventTurnLeft
	EventTurnRight
	EventMoveForward
	EventMoveBackward
)

// String returns a readable name for the event
func (e Event) String() string {
	switch e {
	case EventTurnLeft:
		return "turn left"
	case EventTurnRight:
		return "turn right"
	case EventMoveForward:
		return "move forward"
	case EventMoveBackward:
		return "move backward"
	default:
		return "none"
	}
}

// Scene is the simulation state: immutable walls plus the player
type Scene struct {
	Walls       []geometry.Line
	Player      movement.Player
	TurnStep    float64
	ProbeLength float64
}

// DefaultWalls returns the fixed wall layout for a width x height window:
// two interior walls and a border so rays always have something to hit.
func DefaultWalls(width, height float64) []geometry.Line {
	return []geometry.Line{
		{Start: geometry.Point{X: 200, Y: 400}, End: geometry.Point{X: 0, Y: 0}, Color: render.Red},
		{Start: geometry.Point{X: 200, Y: 200}, End: geometry.Point{X: 200, Y: 0}, Color: render.Red},
		{Start: geometry.Point{X: 0.75 * width, Y: 0.2 * height}, End: geometry.Point{X: 0.75 * width, Y: 0.6 * height}, Color: render.Red},

		// Border
		{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: width, Y: 0}, Color: render.Blue},
		{Start: geometry.Point{X: width, Y: 0}, End: geometry.Point{X: width, Y: height}, Color: render.Blue},
		{Start: geometry.Point{X: width, Y: height}, End: geometry.Point{X: 0, Y: height}, Color: render.Blue},
		{Start: geometry.Point{X: 0, Y: height}, End: geometry.Point{X: 0, Y: 0}, Color: render.Blue},
	}
}

// New builds a scene from config using DefaultWalls
func New(cfg *simulation.Config) (*Scene, error) {
	walls := DefaultWalls(float64(cfg.Window.Width), float64(cfg.Window.Height))
	return NewWithWalls(cfg, walls)
}

// NewWithWalls builds a scene around the given walls. The slice is copied so
// later changes by the caller do not leak into the scene.
func NewWithWalls(cfg *simulation.Config, walls []geometry.Line) (*Scene, error) {
	for i, wall := range walls {
		if wall.Degenerate() {
			return nil, fmt.Errorf("wall %d at (%.1f, %.1f): %w", i, wall.Start.X, wall.Start.Y, ErrDegenerateWall)
		}
	}

	p := cfg.Player
	return &Scene{
		Walls: append([]geometry.Line(nil), walls...),
		Player: movement.NewPlayer(
			geometry.Point{X: p.StartX, Y: p.StartY},
			p.StartAngle,
			p.Speed,
			cfg.Rays.FOVDegrees,
			cfg.Rays.Length,
			render.Green,
		),
		TurnStep:    p.TurnStep,
		ProbeLength: p.ProbeLength,
	}, nil
}

// Apply performs one event. Returns false when a move was blocked by a wall.
func (s *Scene) Apply(ev Event) bool {
	switch ev {
	case EventTurnLeft:
		s.Player.Turn(-s.TurnStep)
	case EventTurnRight:
		s.Player.Turn(s.TurnStep)
	case EventMoveForward:
		return s.Player.Move(movement.Forward, s.Walls, s.ProbeLength)
	case EventMoveBackward:
		return s.Player.Move(movement.Backward, s.Walls, s.ProbeLength)
	}
	return true
}

// Cast produces this frame's rays from the current pose. The fan supplies the
// ray count, hit mode and color; its width and reach come from the player.
func (s *Scene) Cast(fan raycast.Fan) []geometry.Line {
	fan.FOV = s.Player.FOV
	fan.RayLength = s.Player.ViewDistance
	return raycast.CastRays(s.Player.Position, s.Player.Angle, fan, s.Walls)
}
