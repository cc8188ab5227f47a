package geometry

// CubicBezierPoint evaluates a cubic Bezier curve at parameter t using the
// Bernstein basis. p0 and p3 are the endpoints, p1 and p2 the control points.
// t is not clamped; callers supply values in [0, 1].
func CubicBezierPoint(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt

	return Point{
		X: mt3*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t3*p3.X,
		Y: mt3*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t3*p3.Y,
	}
}

// ApproximateBezierLength estimates the arc length of a cubic Bezier curve by
// summing chord lengths over segments uniform samples. Values below 1 fall
// back to 10 segments. The estimate is monotonically increasing in segments
// and is meant for diagnostics rather than path emission.
func ApproximateBezierLength(p0, p1, p2, p3 Point, segments int) float64 {
	if segments < 1 {
		segments = 10
	}

	length := 0.0
	prev := p0
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		cur := CubicBezierPoint(p0, p1, p2, p3, t)
		length += prev.DistanceTo(cur)
		prev = cur
	}
	return length
}
