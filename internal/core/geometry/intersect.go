package geometry

import "math"

// boundsSlack absorbs rounding in px/py when a segment is axis-aligned and
// its bounding box has zero width or height.
const boundsSlack = 1e-9

// SegmentIntersect returns the point where segments a and b cross.
//
// The crossing of the two infinite lines is computed with the 2x2 determinant
// form and then accepted only if it falls inside the bounding box of both
// segments. Parallel, coincident and degenerate inputs report false.
func SegmentIntersect(a, b Line) (Point, bool) {
	x1, y1 := a.Start.X, a.Start.Y
	x2, y2 := a.End.X, a.End.Y
	x3, y3 := b.Start.X, b.Start.Y
	x4, y4 := b.End.X, b.End.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(den) < Epsilon {
		// Lines are parallel or coincident
		return Point{}, false
	}

	crossA := x1*y2 - y1*x2
	crossB := x3*y4 - y3*x4

	px := (crossA*(x3-x4) - (x1-x2)*crossB) / den
	py := (crossA*(y3-y4) - (y1-y2)*crossB) / den

	if !withinBounds(px, py, a) || !withinBounds(px, py, b) {
		return Point{}, false
	}

	return Point{X: px, Y: py}, true
}

// withinBounds checks whether (px, py) lies in the bounding box of seg
func withinBounds(px, py float64, seg Line) bool {
	minX, maxX := math.Min(seg.Start.X, seg.End.X), math.Max(seg.Start.X, seg.End.X)
	minY, maxY := math.Min(seg.Start.Y, seg.End.Y), math.Max(seg.Start.Y, seg.End.Y)

	return px >= minX-boundsSlack && px <= maxX+boundsSlack &&
		py >= minY-boundsSlack && py <= maxY+boundsSlack
}
