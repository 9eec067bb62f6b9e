package vecmat

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3-component vector. It doubles as the homogeneous representation
// of a 2D point. The zero value is the zero vector.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float32) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y, and z coordinates.
func (v Vec3) Splat() (float32, float32, float32) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dim returns 3.
func (v Vec3) Dim() int { return 3 }

// At returns the i-th component. It panics if i is not in [0, 3).
func (v Vec3) At(i int) float32 {
	return [3]float32{v.X, v.Y, v.Z}[i]
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() float32 {
	return math32.Hypot(math32.Hypot(v.X, v.Y), v.Z)
}

// Len2 returns the squared length of the vector.
func (v Vec3) Len2() float32 {
	return v.Dot(v)
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float32) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float32) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return v.Add(o.Sub(v).Mul(t))
}

// TryNormalize returns a vector of length 1 with the same direction as v. It
// returns false if v is a null vector or not finite.
func (v Vec3) TryNormalize() (Vec3, bool) {
	return tryNormalize(v)
}

// Normalize is like [Vec3.TryNormalize] but panics if v is a null vector.
func (v Vec3) Normalize() Vec3 {
	return normalize(v)
}

// TryAngle returns the angle in radians between v and o. It returns false if
// either vector is null.
func (v Vec3) TryAngle(o Vec3) (float32, bool) {
	return tryAngle(v, o)
}

// Angle is like [Vec3.TryAngle] but panics if either vector is null.
func (v Vec3) Angle(o Vec3) float32 {
	return angle(v, o)
}

// IsOrthogonalTo reports whether v·o is within [Epsilon] of zero.
func (v Vec3) IsOrthogonalTo(o Vec3) bool {
	return isOrthogonal(v, o)
}

// TryReflectWith reflects v about the plane whose normal is axis. It returns
// false if axis is a null vector.
func (v Vec3) TryReflectWith(axis Vec3) (Vec3, bool) {
	return tryReflect(v, axis)
}

// ReflectWith is like [Vec3.TryReflectWith] but panics if axis is a null
// vector.
func (v Vec3) ReflectWith(axis Vec3) Vec3 {
	return reflect(v, axis)
}

// ApproxEqual reports whether all components of v and o differ by less than
// [Epsilon].
func (v Vec3) ApproxEqual(o Vec3) bool {
	return math32.Abs(v.X-o.X) < Epsilon &&
		math32.Abs(v.Y-o.Y) < Epsilon &&
		math32.Abs(v.Z-o.Z) < Epsilon
}

// Homogeneous returns the homogeneous coordinates ⟨x, y, z, 1⟩ of the point v.
func (v Vec3) Homogeneous() Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Dehomogenize interprets v as a 2D point in homogeneous coordinates and
// returns ⟨x/z, y/z⟩. It returns false if z is within [Epsilon] of zero, in
// which case v is a point at infinity.
func (v Vec3) Dehomogenize() (Vec2, bool) {
	if math32.Abs(v.Z) < Epsilon {
		return Vec2{}, false
	}
	return Vec2{v.X / v.Z, v.Y / v.Z}, true
}

// Transform returns m·v.
func (v Vec3) Transform(m Mat3) Vec3 {
	return m.MulVec(v)
}

// IsInf reports whether at least one component is infinite.
func (v Vec3) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) || math32.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}
