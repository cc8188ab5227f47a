package engine

import "github.com/curvemap/curvemap/internal/geometry"

// normalizeCurves rebases every path point of the selection so that its
// top-left corner, or its center when centerAtOrigin is set, lands on the
// origin. The input selection is never mutated, and an offset of (0,0)
// returns an identical copy.
func normalizeCurves(sel Selection, centerAtOrigin bool) []CurveData {
	offset := geometry.Pt(sel.Bounds.Left, sel.Bounds.Top)
	if centerAtOrigin {
		offset = sel.Center
	}

	normalized := make([]CurveData, 0, len(sel.Curves))
	for _, curve := range sel.Curves {
		splines := make([][]PathSegment, len(curve.Splines))
		for i, spline := range curve.Splines {
			segments := make([]PathSegment, len(spline))
			for j, seg := range spline {
				if seg.Kind == CubicTo {
					seg.Ctrl1 = seg.Ctrl1.Sub(offset)
					seg.Ctrl2 = seg.Ctrl2.Sub(offset)
				}
				seg.End = seg.End.Sub(offset)
				segments[j] = seg
			}
			splines[i] = segments
		}
		normalized = append(normalized, CurveData{Name: curve.Name, Splines: splines, Style: curve.Style})
	}
	return normalized
}
