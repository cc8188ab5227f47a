package export

import (
	"fmt"
	"strings"

	"github.com/curvemap/curvemap/internal/engine"
	"github.com/curvemap/curvemap/internal/geometry"
)

// Report summarizes a selection for positioning work in the target engine:
// the drawable size before and after scaling, the bounds center, and that
// center expressed in SVG and export coordinates.
type Report struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`

	CurveCount int `json:"curveCount"`
	PointCount int `json:"pointCount"`

	// Editor-unit spans and their scaled SVG counterparts
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	ScaledWidth  float64 `json:"scaledWidth"`
	ScaledHeight float64 `json:"scaledHeight"`

	// Approximate drawn length of all splines in editor units
	PathLength float64 `json:"pathLength"`

	Center       geometry.Point   `json:"center"`
	SVGPosition  geometry.Vector2 `json:"svgPosition"`
	ExportCenter geometry.Vector2 `json:"exportCenter"`
}

// FormatReport renders the report as the text block handed to the user.
// Numbers follow the configured precision and decimal separator.
func FormatReport(r Report, precision int, comma bool) string {
	if !r.Valid {
		return r.Message
	}
	f := func(v float64) string {
		return geometry.FormatCoordinate(v, precision, comma)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Selected curves: %d (%d points)\n", r.CurveCount, r.PointCount)
	fmt.Fprintf(&b, "Units: %s x %s\n", f(r.Width), f(r.Height))
	fmt.Fprintf(&b, "SVG: %s x %s\n", f(r.ScaledWidth), f(r.ScaledHeight))
	fmt.Fprintf(&b, "Path length: %s\n", f(r.PathLength))
	fmt.Fprintf(&b, "Center: (%s, %s)\n", f(r.Center.X), f(r.Center.Y))
	fmt.Fprintf(&b, "SVG position: (%s, %s)\n", f(r.SVGPosition.X), f(r.SVGPosition.Y))
	fmt.Fprintf(&b, "Export center: (%s, %s)", f(r.ExportCenter.X), f(r.ExportCenter.Y))
	return b.String()
}

// pathLength sums straight segment lengths and sampled cubic lengths across
// every spline. resolution is the per-cubic sample count.
func pathLength(sel engine.Selection, resolution int) float64 {
	total := 0.0
	for _, curve := range sel.Curves {
		for _, spline := range curve.Splines {
			var cur geometry.Point
			for _, seg := range spline {
				switch seg.Kind {
				case engine.LineTo:
					total += cur.DistanceTo(seg.End)
				case engine.CubicTo:
					total += geometry.ApproximateBezierLength(cur, seg.Ctrl1, seg.Ctrl2, seg.End, resolution)
				}
				cur = seg.End
			}
		}
	}
	return total
}
