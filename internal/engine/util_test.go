package engine

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/geometry"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 geometry.Point) bool {
	return p1.DistanceTo(p2) <= 1e-9
})

var rectComparer = cmp.Comparer(func(r1, r2 geometry.Rect) bool {
	return math.Abs(r1.Left-r2.Left) <= 1e-9 &&
		math.Abs(r1.Top-r2.Top) <= 1e-9 &&
		math.Abs(r1.Right-r2.Right) <= 1e-9 &&
		math.Abs(r1.Bottom-r2.Bottom) <= 1e-9
})

func polyObject(name string, world geometry.Matrix4, cyclic bool, positions ...geometry.Vector3) document.CurveObject {
	points := make([]document.ControlPoint, len(positions))
	for i, p := range positions {
		points[i] = document.ControlPoint{Position: p, HandleLeft: p, HandleRight: p}
	}
	return document.CurveObject{
		Name:  name,
		World: world,
		Splines: []document.Spline{
			{Kind: document.SplinePoly, Cyclic: cyclic, Points: points},
		},
	}
}

// squareObject is the canonical 10x10 closed square used across the
// pipeline tests.
func squareObject(name string) document.CurveObject {
	return polyObject(name, geometry.Identity4(), true,
		geometry.Vec3(0, 0, 0),
		geometry.Vec3(10, 0, 0),
		geometry.Vec3(10, 10, 0),
		geometry.Vec3(0, 10, 0),
	)
}

func sceneWith(objects ...document.CurveObject) *document.Scene {
	return &document.Scene{ID: "scene_test", Name: "test scene", Objects: objects}
}
