package geometry

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Sub(a).Len()
}

// EndpointAt returns the point length units away from origin along angle (radians)
func EndpointAt(origin Point, angle, length float64) Point {
	return Point{
		X: origin.X + length*math.Cos(angle),
		Y: origin.Y + length*math.Sin(angle),
	}
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
