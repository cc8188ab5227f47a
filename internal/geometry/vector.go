package geometry

import "math"

// Epsilon is the tolerance used for floating point comparisons throughout
// the package. Vectors, points and matrix determinants closer than this are
// treated as equal (or singular).
const Epsilon = 1e-6

// Vector2 is a 2D vector in world space.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec2 is shorthand for Vector2{x, y}.
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Dot returns the dot product with another vector.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the vector magnitude.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude, cheaper for comparisons.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the Euclidean distance to another vector.
func (v Vector2) DistanceTo(other Vector2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns a unit-length copy. Vectors shorter than Epsilon
// normalize to the zero vector instead of propagating a division blow-up.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length < Epsilon {
		return Vector2{}
	}
	return Vector2{v.X / length, v.Y / length}
}

// Perpendicular returns the vector rotated 90 degrees counterclockwise.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{-v.Y, v.X}
}

// Equal reports component-wise equality within Epsilon.
func (v Vector2) Equal(other Vector2) bool {
	return math.Abs(v.X-other.X) < Epsilon && math.Abs(v.Y-other.Y) < Epsilon
}

// Quantize rounds the components to three decimals and returns them as
// integer millis. Quantized values are the hashing companion to Equal and
// are what cache keys are built from.
func (v Vector2) Quantize() [2]int64 {
	return [2]int64{quantize(v.X), quantize(v.Y)}
}

// Vector3 is a 3D vector in editor or world space, used for control points
// and marker positions before projection to 2D.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3 is shorthand for Vector3{x, y, z}.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product with another vector.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product with another vector.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the vector magnitude.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude, cheaper for comparisons.
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit-length copy. Vectors shorter than Epsilon
// normalize to the zero vector.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length < Epsilon {
		return Vector3{}
	}
	inv := 1.0 / length
	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}
}

// XY drops the Z component.
func (v Vector3) XY() Vector2 {
	return Vector2{v.X, v.Y}
}

// Equal reports component-wise equality within Epsilon.
func (v Vector3) Equal(other Vector3) bool {
	return math.Abs(v.X-other.X) < Epsilon &&
		math.Abs(v.Y-other.Y) < Epsilon &&
		math.Abs(v.Z-other.Z) < Epsilon
}

// Quantize rounds the components to three decimals and returns them as
// integer millis.
func (v Vector3) Quantize() [3]int64 {
	return [3]int64{quantize(v.X), quantize(v.Y), quantize(v.Z)}
}

// quantize rounds to three decimals, expressed in integer millis.
func quantize(v float64) int64 {
	return int64(math.Round(v * 1000))
}
