package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/curvemap/curvemap/internal/geometry"
	"github.com/curvemap/curvemap/internal/typeid"
)

// Scene is the unit handed over by the host editor: the authored curve
// objects plus any reference marker positions to overlay on the minimap.
type Scene struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Objects []CurveObject      `json:"objects"`
	Markers []geometry.Vector3 `json:"markers,omitempty"`
}

type SplineKind string

const (
	SplineBezier SplineKind = "bezier"
	SplinePoly   SplineKind = "poly"
)

// ControlPoint is one authored point of a spline. The handles are only
// meaningful for bezier splines and hold the point's tangent anchors.
type ControlPoint struct {
	Position    geometry.Vector3 `json:"position"`
	HandleLeft  geometry.Vector3 `json:"handleLeft"`
	HandleRight geometry.Vector3 `json:"handleRight"`
}

// Spline is an ordered run of control points. Anything not tagged bezier is
// treated as a polyline. Cyclic splines close back to their first point.
type Spline struct {
	Kind   SplineKind     `json:"kind"`
	Cyclic bool           `json:"cyclic"`
	Points []ControlPoint `json:"points"`
}

// CurveObject is one authored curve: its world transform, its splines, and a
// loosely-typed property bag carrying optional style attributes.
type CurveObject struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	World   geometry.Matrix4 `json:"world"`
	Splines []Spline         `json:"splines"`
	Props   map[string]any   `json:"props,omitempty"`
}

// PointCount returns the total number of control points across all splines.
func (o CurveObject) PointCount() int {
	n := 0
	for _, s := range o.Splines {
		n += len(s.Points)
	}
	return n
}

// Load decodes a scene from JSON. Missing or malformed scene and object IDs
// are replaced with generated ones, and objects without a world transform
// default to the identity.
func Load(r io.Reader) (*Scene, error) {
	var scene Scene
	if err := json.NewDecoder(r).Decode(&scene); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	normalize(&scene)
	return &scene, nil
}

// LoadFile reads and decodes a scene file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	scene, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return scene, nil
}

func normalize(scene *Scene) {
	if typeid.Validate(scene.ID, typeid.PrefixScene) != nil {
		scene.ID = typeid.NewSceneID()
	}
	var zero geometry.Matrix4
	for i := range scene.Objects {
		obj := &scene.Objects[i]
		if typeid.Validate(obj.ID, typeid.PrefixCurve) != nil {
			obj.ID = typeid.NewCurveID()
		}
		if obj.World == zero {
			obj.World = geometry.Identity4()
		}
	}
}
