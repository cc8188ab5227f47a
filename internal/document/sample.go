package document

import (
	"github.com/curvemap/curvemap/internal/geometry"
	"github.com/curvemap/curvemap/internal/typeid"
)

// SampleScene builds a small scene exercising both spline kinds: a square
// polyline with redundant edge midpoints, a cyclic bezier blob, and two
// reference markers.
func SampleScene() *Scene {
	square := CurveObject{
		ID:    typeid.NewCurveID(),
		Name:  "Area Limits",
		World: geometry.Translation4(-2, -2, 0),
		Splines: []Spline{
			{
				Kind:   SplinePoly,
				Cyclic: true,
				Points: polyPoints(
					geometry.Vec3(0, 0, 0),
					geometry.Vec3(2, 0, 0),
					geometry.Vec3(4, 0, 0),
					geometry.Vec3(4, 2, 0),
					geometry.Vec3(4, 4, 0),
					geometry.Vec3(2, 4, 0),
					geometry.Vec3(0, 4, 0),
					geometry.Vec3(0, 2, 0),
				),
			},
		},
		Props: map[string]any{
			"fill_preset":  PresetLimits,
			"use_fill":     true,
			"fill_color":   []any{0.25, 0.25, 0.25, 1.0},
			"use_stroke":   true,
			"stroke_width": 0.5,
		},
	}

	blob := CurveObject{
		ID:    typeid.NewCurveID(),
		Name:  "Entity Blob",
		World: geometry.Identity4(),
		Splines: []Spline{
			{
				Kind:   SplineBezier,
				Cyclic: true,
				Points: []ControlPoint{
					{
						Position:    geometry.Vec3(10, 2, 0),
						HandleLeft:  geometry.Vec3(10, 0.9, 0),
						HandleRight: geometry.Vec3(10, 3.1, 0),
					},
					{
						Position:    geometry.Vec3(8, 4, 0),
						HandleLeft:  geometry.Vec3(9.1, 4, 0),
						HandleRight: geometry.Vec3(6.9, 4, 0),
					},
					{
						Position:    geometry.Vec3(6, 2, 0),
						HandleLeft:  geometry.Vec3(6, 3.1, 0),
						HandleRight: geometry.Vec3(6, 0.9, 0),
					},
					{
						Position:    geometry.Vec3(8, 0, 0),
						HandleLeft:  geometry.Vec3(6.9, 0, 0),
						HandleRight: geometry.Vec3(9.1, 0, 0),
					},
				},
			},
		},
		Props: map[string]any{
			"fill_preset": PresetEntities,
			"fill_color":  []any{0.435, 0.435, 0.435, 1.0},
		},
	}

	return &Scene{
		ID:      typeid.NewSceneID(),
		Name:    "Sample",
		Objects: []CurveObject{square, blob},
		Markers: []geometry.Vector3{
			geometry.Vec3(1000, 2000, 50),
			geometry.Vec3(-500, 1500, 30),
		},
	}
}

func polyPoints(positions ...geometry.Vector3) []ControlPoint {
	points := make([]ControlPoint, len(positions))
	for i, p := range positions {
		points[i] = ControlPoint{Position: p}
	}
	return points
}
