package geometry

import (
	"image/color"
	"math"
)

// Epsilon is the tolerance used for parallel and degenerate checks
const Epsilon = 1e-10

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Add returns p displaced by v
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the displacement from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Vector is a 2D displacement. It is not normalized.
type Vector struct {
	DX, DY float64
}

// Scale multiplies both components by s
func (v Vector) Scale(s float64) Vector {
	return Vector{DX: v.DX * s, DY: v.DY * s}
}

// Len returns the Euclidean length of v
func (v Vector) Len() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Line is a segment between two points. It is used both for walls and for
// cast rays. Color is only carried for the renderer.
type Line struct {
	Start, End Point
	Color      color.RGBA
}

// Length returns the distance between the line's endpoints
func (l Line) Length() float64 {
	return Distance(l.Start, l.End)
}

// Degenerate reports whether the line collapses to a single point
func (l Line) Degenerate() bool {
	return math.Abs(l.Start.X-l.End.X) < Epsilon && math.Abs(l.Start.Y-l.End.Y) < Epsilon
}
