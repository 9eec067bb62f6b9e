package vecmat

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2-component vector. The zero value is the zero vector.
type Vec2 struct {
	X float32
	Y float32
}

// V2 returns the vector ⟨x, y⟩.
func V2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float32, float32) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dim returns 2.
func (v Vec2) Dim() int { return 2 }

// At returns the i-th component. It panics if i is not 0 or 1.
func (v Vec2) At(i int) float32 {
	return [2]float32{v.X, v.Y}[i]
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o, treating both
// as 3D vectors in the xy plane.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Len2 returns the squared length of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Len].
func (v Vec2) Len2() float32 {
	return v.Dot(v)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float32) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float32) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// TryNormalize returns a vector of length 1 with the same direction as v. It
// returns false if v is shorter than [Epsilon], as the direction of a null
// vector is undefined. Vectors with infinite or NaN components can't be
// normalized either. Lengths that overflow float32 are handled.
func (v Vec2) TryNormalize() (Vec2, bool) {
	return tryNormalize(v)
}

// Normalize is like [Vec2.TryNormalize] but panics if v is a null vector.
func (v Vec2) Normalize() Vec2 {
	return normalize(v)
}

// TryAngle returns the angle in radians between v and o, in the range [0, π].
// It returns false if either vector is null.
func (v Vec2) TryAngle(o Vec2) (float32, bool) {
	return tryAngle(v, o)
}

// Angle is like [Vec2.TryAngle] but panics if either vector is null.
func (v Vec2) Angle(o Vec2) float32 {
	return angle(v, o)
}

// IsOrthogonalTo reports whether the dot product of v and o is within
// [Epsilon] of zero.
func (v Vec2) IsOrthogonalTo(o Vec2) bool {
	return isOrthogonal(v, o)
}

// TryReflectWith reflects v using axis as the normal of the mirror line,
// computing v - 2(v·n)n with n being axis normalized. It returns false if axis
// is a null vector.
func (v Vec2) TryReflectWith(axis Vec2) (Vec2, bool) {
	return tryReflect(v, axis)
}

// ReflectWith is like [Vec2.TryReflectWith] but panics if axis is a null
// vector.
func (v Vec2) ReflectWith(axis Vec2) Vec2 {
	return reflect(v, axis)
}

// ApproxEqual reports whether all components of v and o differ by less than
// [Epsilon].
func (v Vec2) ApproxEqual(o Vec2) bool {
	return math32.Abs(v.X-o.X) < Epsilon && math32.Abs(v.Y-o.Y) < Epsilon
}

// Homogeneous returns the homogeneous coordinates ⟨x, y, 1⟩ of the point v.
func (v Vec2) Homogeneous() Vec3 {
	return Vec3{v.X, v.Y, 1}
}

// Transform returns m·v.
func (v Vec2) Transform(m Mat2) Vec2 {
	return m.MulVec(v)
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}
