package vecmat

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a 4-component vector, most commonly a 3D point or direction in
// homogeneous coordinates. The zero value is the zero vector.
type Vec4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// V4 returns the vector ⟨x, y, z, w⟩.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{
		X: x,
		Y: y,
		Z: z,
		W: w,
	}
}

// Splat returns the vector's x, y, z, and w coordinates.
func (v Vec4) Splat() (float32, float32, float32, float32) {
	return v.X, v.Y, v.Z, v.W
}

func (v Vec4) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v.X, v.Y, v.Z, v.W)
}

// Dim returns 4.
func (v Vec4) Dim() int { return 4 }

// At returns the i-th component. It panics if i is not in [0, 4).
func (v Vec4) At(i int) float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}[i]
}

// Dot returns the dot product of v and o.
func (v Vec4) Dot(o Vec4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Len returns the Euclidean length of the vector.
func (v Vec4) Len() float32 {
	return math32.Hypot(math32.Hypot(math32.Hypot(v.X, v.Y), v.Z), v.W)
}

// Len2 returns the squared length of the vector.
func (v Vec4) Len2() float32 {
	return v.Dot(v)
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
		W: v.W + o.W,
	}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
		W: v.W - o.W,
	}
}

func (v Vec4) Mul(f float32) Vec4 {
	return Vec4{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
		W: v.W * f,
	}
}

func (v Vec4) Div(f float32) Vec4 {
	return Vec4{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
		W: v.W / f,
	}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
		W: -v.W,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return v.Add(o.Sub(v).Mul(t))
}

// TryNormalize returns a vector of length 1 with the same direction as v. It
// returns false if v is shorter than [Epsilon] or has infinite or NaN
// components.
func (v Vec4) TryNormalize() (Vec4, bool) {
	return tryNormalize(v)
}

// Normalize is like [Vec4.TryNormalize] but panics if v is a null vector.
func (v Vec4) Normalize() Vec4 {
	return normalize(v)
}

// TryAngle returns the angle in radians between v and o, in the range [0, π].
// It returns false if either vector is null.
func (v Vec4) TryAngle(o Vec4) (float32, bool) {
	return tryAngle(v, o)
}

// Angle is like [Vec4.TryAngle] but panics if either vector is null.
func (v Vec4) Angle(o Vec4) float32 {
	return angle(v, o)
}

// IsOrthogonalTo reports whether the dot product of v and o is within
// [Epsilon] of zero.
func (v Vec4) IsOrthogonalTo(o Vec4) bool {
	return isOrthogonal(v, o)
}

// TryReflectWith reflects v about the hyperplane whose normal is axis. It
// returns false if axis is a null vector.
func (v Vec4) TryReflectWith(axis Vec4) (Vec4, bool) {
	return tryReflect(v, axis)
}

// ReflectWith is like [Vec4.TryReflectWith] but panics if axis is a null
// vector.
func (v Vec4) ReflectWith(axis Vec4) Vec4 {
	return reflect(v, axis)
}

// ApproxEqual reports whether all components of v and o differ by less than
// [Epsilon].
func (v Vec4) ApproxEqual(o Vec4) bool {
	return math32.Abs(v.X-o.X) < Epsilon &&
		math32.Abs(v.Y-o.Y) < Epsilon &&
		math32.Abs(v.Z-o.Z) < Epsilon &&
		math32.Abs(v.W-o.W) < Epsilon
}

// Dehomogenize performs the perspective divide, returning ⟨x/w, y/w, z/w⟩. It
// returns false if w is within [Epsilon] of zero.
func (v Vec4) Dehomogenize() (Vec3, bool) {
	if math32.Abs(v.W) < Epsilon {
		return Vec3{}, false
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}, true
}

// Transform returns m·v.
func (v Vec4) Transform(m Mat4) Vec4 {
	return m.MulVec(v)
}

// IsInf reports whether at least one component is infinite.
func (v Vec4) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) || math32.IsInf(v.Z, 0) || math32.IsInf(v.W, 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec4) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z) || math32.IsNaN(v.W)
}
