package engine

import "github.com/curvemap/curvemap/internal/geometry"

// simplifyCurves returns a copy of sel whose straight-line runs have been
// thinned with Douglas-Peucker at the given tolerance. Invalid selections
// come back unchanged.
func simplifyCurves(sel Selection, tolerance float64) Selection {
	if !sel.Valid {
		return sel
	}

	curves := make([]CurveData, 0, len(sel.Curves))
	for _, curve := range sel.Curves {
		splines := make([][]PathSegment, len(curve.Splines))
		for i, spline := range curve.Splines {
			splines[i] = simplifySpline(spline, tolerance)
		}
		curves = append(curves, CurveData{Name: curve.Name, Splines: splines, Style: curve.Style})
	}

	out := sel
	out.Curves = curves
	return out
}

// simplifySpline walks one spline, accumulating the end points of
// consecutive MoveTo/LineTo segments and flushing the accumulated run
// through the simplifier whenever a MoveTo or CubicTo breaks it. Cubics are
// passed through untouched and restart the run empty.
func simplifySpline(spline []PathSegment, tolerance float64) []PathSegment {
	out := make([]PathSegment, 0, len(spline))
	var run []geometry.Point

	flush := func() {
		out = appendSimplified(out, run, tolerance)
		run = run[:0]
	}

	for _, seg := range spline {
		switch seg.Kind {
		case MoveTo:
			flush()
			out = append(out, seg)
			run = append(run, seg.End)
		case LineTo:
			run = append(run, seg.End)
		case CubicTo:
			flush()
			out = append(out, seg)
		}
	}
	flush()

	return out
}

// appendSimplified emits every simplified run point after the first as a
// LineTo. The first point was already emitted by the segment that opened
// the run, and a run of one point adds nothing.
func appendSimplified(out []PathSegment, run []geometry.Point, tolerance float64) []PathSegment {
	if len(run) <= 1 {
		return out
	}
	for _, p := range geometry.SimplifyPolyline(run, tolerance)[1:] {
		out = append(out, Line(p))
	}
	return out
}
