package engine

import (
	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/geometry"
)

// Messages carried by an invalid Selection.
const (
	MsgNoObjects = "No valid curve objects selected."
	MsgNoData    = "No valid curve data found in selected objects."
)

// extractSelection transforms every spline of every object into output-space
// path segments and computes aggregate bounds over the transformed anchor
// points. Objects that yield no points are left out of the result entirely.
func extractSelection(objects []document.CurveObject) Selection {
	if len(objects) == 0 {
		return Selection{Message: MsgNoObjects}
	}

	var (
		curves    []CurveData
		allPoints []geometry.Point
	)

	for _, obj := range objects {
		var splines [][]PathSegment
		var objectPoints []geometry.Point

		for _, spline := range obj.Splines {
			var segments []PathSegment
			switch spline.Kind {
			case document.SplineBezier:
				segments, objectPoints = bezierSegments(spline, obj.World, objectPoints)
			default:
				segments, objectPoints = polySegments(spline, obj.World, objectPoints)
			}
			if len(segments) > 0 {
				splines = append(splines, segments)
			}
		}

		if len(objectPoints) == 0 {
			continue
		}

		style := document.DecodeStyle(obj.Props)
		curves = append(curves, CurveData{Name: obj.Name, Splines: splines, Style: &style})
		allPoints = append(allPoints, objectPoints...)
	}

	if len(allPoints) == 0 {
		return Selection{Message: MsgNoData}
	}

	bounds := geometry.CalculateBounds(allPoints)
	return Selection{
		Valid:      true,
		Curves:     curves,
		Bounds:     bounds,
		Center:     bounds.Center(),
		PointCount: len(allPoints),
	}
}

// bezierSegments converts a Bezier spline to world-space MoveTo/CubicTo
// segments, appending each transformed anchor to anchors. Handles shape the
// path but never count toward bounds. A cyclic spline closes back to its
// first anchor with one more cubic.
func bezierSegments(spline document.Spline, world geometry.Matrix4, anchors []geometry.Point) ([]PathSegment, []geometry.Point) {
	if len(spline.Points) == 0 {
		return nil, anchors
	}

	type bezierPoint struct {
		co, hl, hr geometry.Point
	}
	pts := make([]bezierPoint, len(spline.Points))
	for i, cp := range spline.Points {
		pts[i] = bezierPoint{
			co: projectPoint(world, cp.Position),
			hl: projectPoint(world, cp.HandleLeft),
			hr: projectPoint(world, cp.HandleRight),
		}
	}

	segments := make([]PathSegment, 0, len(pts)+1)
	segments = append(segments, Move(pts[0].co))
	anchors = append(anchors, pts[0].co)

	for i := 1; i < len(pts); i++ {
		segments = append(segments, Cubic(pts[i-1].hr, pts[i].hl, pts[i].co))
		anchors = append(anchors, pts[i].co)
	}

	if spline.Cyclic {
		last := pts[len(pts)-1]
		segments = append(segments, Cubic(last.hr, pts[0].hl, pts[0].co))
	}

	return segments, anchors
}

// polySegments converts a polyline spline to world-space MoveTo/LineTo
// segments, appending every transformed point to points. A cyclic spline
// closes with a line back to the first point.
func polySegments(spline document.Spline, world geometry.Matrix4, points []geometry.Point) ([]PathSegment, []geometry.Point) {
	if len(spline.Points) == 0 {
		return nil, points
	}

	pts := make([]geometry.Point, len(spline.Points))
	for i, cp := range spline.Points {
		pts[i] = projectPoint(world, cp.Position)
	}

	segments := make([]PathSegment, 0, len(pts)+1)
	segments = append(segments, Move(pts[0]))
	points = append(points, pts[0])

	for i := 1; i < len(pts); i++ {
		segments = append(segments, Line(pts[i]))
		points = append(points, pts[i])
	}

	if spline.Cyclic {
		segments = append(segments, Line(pts[0]))
	}

	return segments, points
}

// projectPoint applies the world transform and flattens the result onto the
// output plane by dropping the height component.
func projectPoint(world geometry.Matrix4, v geometry.Vector3) geometry.Point {
	w := world.TransformVector3(v)
	return geometry.Pt(w.X, w.Y)
}
