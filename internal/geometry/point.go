package geometry

import "math"

// Point is a 2D point in output space. It has the same epsilon-equality
// contract as Vector2 but marks coordinates that have already been projected
// and transformed, keeping the two frames apart in signatures.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by another point's coordinates.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns the point offset by the negation of another point's coordinates.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports component-wise equality within Epsilon.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) < Epsilon && math.Abs(p.Y-other.Y) < Epsilon
}

// Vec2 converts the point to a world-space vector.
func (p Point) Vec2() Vector2 {
	return Vector2{p.X, p.Y}
}

// Quantize rounds the coordinates to three decimals and returns them as
// integer millis, suitable for map and cache keys.
func (p Point) Quantize() [2]int64 {
	return [2]int64{quantize(p.X), quantize(p.Y)}
}
