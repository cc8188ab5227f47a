package geometry

// PointInPolygon reports whether p lies inside the polygon using even-odd ray
// casting. A point coinciding with a vertex, or lying exactly on a horizontal
// edge within its span, counts as inside. Polygons with fewer than three
// vertices contain nothing.
func PointInPolygon(p Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1

	for i := range polygon {
		if p.Equal(polygon[i]) || p.Equal(polygon[j]) {
			return true
		}

		if polygon[i].Y == polygon[j].Y && polygon[i].Y == p.Y &&
			p.X >= min(polygon[i].X, polygon[j].X) &&
			p.X <= max(polygon[i].X, polygon[j].X) {
			return true
		}

		if (polygon[i].Y > p.Y) != (polygon[j].Y > p.Y) &&
			p.X < (polygon[j].X-polygon[i].X)*(p.Y-polygon[i].Y)/(polygon[j].Y-polygon[i].Y)+polygon[i].X {
			inside = !inside
		}

		j = i
	}

	return inside
}
