package engine

import (
	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/geometry"
)

// SegmentKind identifies how a path segment reaches its end point.
type SegmentKind uint8

const (
	// MoveTo opens a new subpath at End.
	MoveTo SegmentKind = iota
	// LineTo draws a straight line to End.
	LineTo
	// CubicTo draws a cubic Bezier to End, shaped by Ctrl1 and Ctrl2.
	CubicTo
)

// String returns the SVG path command letter for the kind.
func (k SegmentKind) String() string {
	switch k {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CubicTo:
		return "C"
	default:
		return "?"
	}
}

// PathSegment is a single step of a 2D output path. Ctrl1 and Ctrl2 are
// meaningful only for CubicTo segments.
type PathSegment struct {
	Kind  SegmentKind
	Ctrl1 geometry.Point
	Ctrl2 geometry.Point
	End   geometry.Point
}

// Move returns a MoveTo segment ending at p.
func Move(p geometry.Point) PathSegment {
	return PathSegment{Kind: MoveTo, End: p}
}

// Line returns a LineTo segment ending at p.
func Line(p geometry.Point) PathSegment {
	return PathSegment{Kind: LineTo, End: p}
}

// Cubic returns a CubicTo segment from the current position to end.
func Cubic(c1, c2, end geometry.Point) PathSegment {
	return PathSegment{Kind: CubicTo, Ctrl1: c1, Ctrl2: c2, End: end}
}

// CurveData holds the extracted splines of one curve object together with
// the draw style resolved from its properties.
type CurveData struct {
	Name    string
	Splines [][]PathSegment
	Style   *document.CurveStyle
}

// SegmentCount returns the total number of path segments across all splines.
func (c CurveData) SegmentCount() int {
	n := 0
	for _, spline := range c.Splines {
		n += len(spline)
	}
	return n
}

// Selection is the result of extracting every curve object in a scene.
// When Valid is false, Message says what was missing and the remaining
// fields hold their zero values.
type Selection struct {
	Valid      bool
	Message    string
	Curves     []CurveData
	Bounds     geometry.Rect
	Center     geometry.Point
	PointCount int
}

// SegmentCount returns the total number of path segments in the selection.
func (s Selection) SegmentCount() int {
	n := 0
	for _, curve := range s.Curves {
		n += curve.SegmentCount()
	}
	return n
}

// Dimensions is the drawable size of a selection in editor units. Width and
// height are floored at MinDimension so degenerate selections stay visible.
// SVGWidth and SVGHeight carry the same values; the scale factor is applied
// at serialization time.
type Dimensions struct {
	Width     float64
	Height    float64
	SVGWidth  float64
	SVGHeight float64
	Center    geometry.Point
}
