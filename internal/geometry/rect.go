package geometry

// Rect is an axis-aligned rectangle. Left <= Right and Top <= Bottom is a
// soft invariant: Width and Height clamp negative spans to zero instead of
// failing, and Normalized repairs a flipped rectangle.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// NewRect builds a rectangle from edge coordinates.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal span, clamped to zero for flipped rectangles.
func (r Rect) Width() float64 {
	return max(0.0, r.Right-r.Left)
}

// Height returns the vertical span, clamped to zero for flipped rectangles.
func (r Rect) Height() float64 {
	return max(0.0, r.Bottom-r.Top)
}

// Area returns Width * Height.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty reports whether the rectangle spans no area.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// IsValid reports whether the edges are ordered (left <= right, top <= bottom).
func (r Rect) IsValid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.Left + r.Right) * 0.5, (r.Top + r.Bottom) * 0.5}
}

// Contains reports whether the point lies inside or on the boundary.
func (r Rect) Contains(p Point) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

// Overlaps reports whether the two rectangles share any area or edge.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left <= other.Right && other.Left <= r.Right &&
		r.Top <= other.Bottom && other.Top <= r.Bottom
}

// Union returns the smallest rectangle containing both inputs.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Intersect returns the overlap of the two rectangles. The second result is
// false when they are disjoint; a true result with a zero-area rectangle is a
// legitimate point or edge intersection, distinguishable from the disjoint
// case only through the flag.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	left := max(r.Left, other.Left)
	top := max(r.Top, other.Top)
	right := min(r.Right, other.Right)
	bottom := min(r.Bottom, other.Bottom)

	if left > right || top > bottom {
		return Rect{}, false
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, true
}

// Normalized returns a copy with edges reordered so left <= right and
// top <= bottom.
func (r Rect) Normalized() Rect {
	return Rect{
		Left:   min(r.Left, r.Right),
		Top:    min(r.Top, r.Bottom),
		Right:  max(r.Left, r.Right),
		Bottom: max(r.Top, r.Bottom),
	}
}

// Scaled scales the rectangle about its center. Pass equal factors for a
// uniform scale.
func (r Rect) Scaled(sx, sy float64) Rect {
	centerX := (r.Left + r.Right) * 0.5
	centerY := (r.Top + r.Bottom) * 0.5
	halfWidth := (r.Right - r.Left) * 0.5 * sx
	halfHeight := (r.Bottom - r.Top) * 0.5 * sy

	return Rect{
		Left:   centerX - halfWidth,
		Top:    centerY - halfHeight,
		Right:  centerX + halfWidth,
		Bottom: centerY + halfHeight,
	}
}

// boundsChunkThreshold is the point count above which CalculateBounds switches
// to the chunked reduction. The switch is a performance heuristic only; both
// paths produce identical bounds.
const boundsChunkThreshold = 100

// CalculateBounds returns the bounding rectangle of a set of points, or the
// zero rectangle for an empty set.
func CalculateBounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	if len(points) > boundsChunkThreshold {
		return boundsChunked(points)
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{Left: minX, Top: minY, Right: maxX, Bottom: maxY}
}

// boundsChunked reduces fixed-size chunks to partial extrema and merges them.
// min/max are associative, so the grouping cannot change the result.
func boundsChunked(points []Point) Rect {
	const chunk = 64

	bounds := Rect{
		Left: points[0].X, Top: points[0].Y,
		Right: points[0].X, Bottom: points[0].Y,
	}
	for start := 0; start < len(points); start += chunk {
		end := min(start+chunk, len(points))

		part := points[start:end]
		minX, minY := part[0].X, part[0].Y
		maxX, maxY := part[0].X, part[0].Y
		for _, p := range part[1:] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}

		bounds.Left = min(bounds.Left, minX)
		bounds.Top = min(bounds.Top, minY)
		bounds.Right = max(bounds.Right, maxX)
		bounds.Bottom = max(bounds.Bottom, maxY)
	}
	return bounds
}
