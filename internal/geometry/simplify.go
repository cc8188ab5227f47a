package geometry

import "math"

// SimplifyPolyline reduces points with the Douglas-Peucker algorithm while
// keeping the polyline within tolerance of its original shape. Slices of two
// or fewer points are returned unchanged. When several points share the
// maximum deviation, the first one in iteration order wins, so output is
// deterministic for a given input.
func SimplifyPolyline(points []Point, tolerance float64) []Point {
	if len(points) <= 2 {
		return points
	}

	first, last := points[0], points[len(points)-1]

	maxDist := 0.0
	index := 0
	for i := 1; i < len(points)-1; i++ {
		if d := PerpendicularDistance(points[i], first, last); d > maxDist {
			maxDist = d
			index = i
		}
	}

	if maxDist <= tolerance {
		return []Point{first, last}
	}

	left := SimplifyPolyline(points[:index+1], tolerance)
	right := SimplifyPolyline(points[index:], tolerance)

	// The split point ends the left half and starts the right one.
	out := make([]Point, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// PerpendicularDistance returns the distance from p to the segment between a
// and b. The projection onto the segment is clamped to its endpoints; a chord
// shorter than Epsilon degenerates to the distance from p to a.
func PerpendicularDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lengthSq := dx*dx + dy*dy
	if lengthSq < Epsilon*Epsilon {
		return p.DistanceTo(a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	cx := a.X + t*dx
	cy := a.Y + t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}
