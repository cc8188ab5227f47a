package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrSingularTransform is returned when inverting a matrix whose determinant
// is zero within Epsilon. Callers get the error, never a zeroed or identity
// stand-in.
var ErrSingularTransform = errors.New("singular transform is not invertible")

// Matrix2D is a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// Where:
// - a, d = scale
// - b, c = skew/rotation
// - e, f = translation
type Matrix2D [6]float64

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// Translation returns a translation matrix.
func Translation(tx, ty float64) Matrix2D {
	return Matrix2D{1, 0, 0, 1, tx, ty}
}

// Scaling returns a scale matrix.
func Scaling(sx, sy float64) Matrix2D {
	return Matrix2D{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a rotation matrix (angle in radians).
func Rotation(radians float64) Matrix2D {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return Matrix2D{cos, sin, -sin, cos, 0, 0}
}

// RotationDegrees returns a rotation matrix (angle in degrees).
func RotationDegrees(degrees float64) Matrix2D {
	return Rotation(degrees * math.Pi / 180.0)
}

// Multiply multiplies this matrix by another: result = m * other.
// This applies 'other' first, then 'm'.
func (m Matrix2D) Multiply(other Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*other[0] + m[2]*other[1],        // a
		m[1]*other[0] + m[3]*other[1],        // b
		m[0]*other[2] + m[2]*other[3],        // c
		m[1]*other[2] + m[3]*other[3],        // d
		m[0]*other[4] + m[2]*other[5] + m[4], // e
		m[1]*other[4] + m[3]*other[5] + m[5], // f
	}
}

// AppendTranslation applies a translation after everything the matrix
// already does, so Identity().AppendTranslation(5, 0).AppendScaling(2, 1)
// maps (0,0) to (10,0): the later scale acts on the translated result.
func (m Matrix2D) AppendTranslation(tx, ty float64) Matrix2D {
	return Translation(tx, ty).Multiply(m)
}

// AppendScaling applies a scale after everything the matrix already does.
func (m Matrix2D) AppendScaling(sx, sy float64) Matrix2D {
	return Scaling(sx, sy).Multiply(m)
}

// AppendRotation applies a rotation (radians) after everything the matrix
// already does.
func (m Matrix2D) AppendRotation(radians float64) Matrix2D {
	return Rotation(radians).Multiply(m)
}

// TransformPoint applies the matrix to a point.
func (m Matrix2D) TransformPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TransformVector applies only the linear part of the matrix, ignoring
// translation. Use it for directions.
func (m Matrix2D) TransformVector(v Vector2) Vector2 {
	return Vector2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// TransformPoints applies the matrix to every point, returning a new slice.
func (m Matrix2D) TransformPoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// TransformRect transforms a rectangle and returns its axis-aligned bounding box.
func (m Matrix2D) TransformRect(r Rect) Rect {
	p0 := m.TransformPoint(Point{r.Left, r.Top})
	p1 := m.TransformPoint(Point{r.Right, r.Top})
	p2 := m.TransformPoint(Point{r.Right, r.Bottom})
	p3 := m.TransformPoint(Point{r.Left, r.Bottom})

	return Rect{
		Left:   min(p0.X, min(p1.X, min(p2.X, p3.X))),
		Top:    min(p0.Y, min(p1.Y, min(p2.Y, p3.Y))),
		Right:  max(p0.X, max(p1.X, max(p2.X, p3.X))),
		Bottom: max(p0.Y, max(p1.Y, max(p2.Y, p3.Y))),
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix2D) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of the matrix, or ErrSingularTransform when the
// determinant vanishes within Epsilon.
func (m Matrix2D) Invert() (Matrix2D, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix2D{}, ErrSingularTransform
	}

	invDet := 1.0 / det
	return Matrix2D{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}, nil
}

// Scale returns the scale factors encoded in the matrix, the lengths of the
// transformed axis vectors.
func (m Matrix2D) Scale() (sx, sy float64) {
	return math.Sqrt(m[0]*m[0] + m[1]*m[1]), math.Sqrt(m[2]*m[2] + m[3]*m[3])
}

// Translation returns the translation components.
func (m Matrix2D) Translation() (tx, ty float64) {
	return m[4], m[5]
}

// Rotation returns the rotation angle in radians encoded in the matrix.
func (m Matrix2D) Rotation() float64 {
	return math.Atan2(m[1], m[0])
}

// ToSlice returns the matrix as a float64 slice for JSON serialization.
func (m Matrix2D) ToSlice() []float64 {
	return []float64{m[0], m[1], m[2], m[3], m[4], m[5]}
}

// IsIdentity checks if this is the identity matrix (within epsilon).
func (m Matrix2D) IsIdentity() bool {
	const eps = 1e-10
	return math.Abs(m[0]-1) < eps &&
		math.Abs(m[1]) < eps &&
		math.Abs(m[2]) < eps &&
		math.Abs(m[3]-1) < eps &&
		math.Abs(m[4]) < eps &&
		math.Abs(m[5]) < eps
}

// Matrix4 is a 4x4 affine transform in row-major order, the shape editor
// hosts hand over as an object's world transform. Only the affine part is
// applied; the projective row is assumed to be 0 0 0 1.
type Matrix4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a 4x4 translation matrix.
func Translation4(tx, ty, tz float64) Matrix4 {
	m := Identity4()
	m[3], m[7], m[11] = tx, ty, tz
	return m
}

// Scaling4 returns a 4x4 scale matrix.
func Scaling4(sx, sy, sz float64) Matrix4 {
	m := Identity4()
	m[0], m[5], m[10] = sx, sy, sz
	return m
}

// RotationZ4 returns a 4x4 rotation about the Z axis (angle in radians).
func RotationZ4(radians float64) Matrix4 {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	m := Identity4()
	m[0], m[1] = cos, -sin
	m[4], m[5] = sin, cos
	return m
}

// Multiply multiplies this matrix by another: result = m * other.
// This applies 'other' first, then 'm'.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// TransformVector3 applies the affine part of the matrix to a 3D vector.
func (m Matrix4) TransformVector3(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// IsIdentity checks if this is the identity matrix (within epsilon).
func (m Matrix4) IsIdentity() bool {
	const eps = 1e-10
	for i, v := range m {
		want := 0.0
		if i%5 == 0 {
			want = 1.0
		}
		if math.Abs(v-want) >= eps {
			return false
		}
	}
	return true
}

// UnmarshalJSON accepts a flat row-major array of 16 values, or of 12 values
// for a 3x4 affine transform whose projective row is filled in as 0 0 0 1.
func (m *Matrix4) UnmarshalJSON(data []byte) error {
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}

	switch len(vals) {
	case 16:
		copy(m[:], vals)
	case 12:
		copy(m[:12], vals)
		m[12], m[13], m[14], m[15] = 0, 0, 0, 1
	default:
		return fmt.Errorf("world transform needs 12 or 16 values, got %d", len(vals))
	}
	return nil
}
