package vecmat

import (
	"iter"
)

// Scale scales x by a and y by b.
func (v Vec2) Scale(a, b float32) Vec2 {
	return Scale2(a, b).MulVec(v)
}

func (v Vec2) ScaleX(a float32) Vec2 { return v.Scale(a, 1) }
func (v Vec2) ScaleY(b float32) Vec2 { return v.Scale(1, b) }

// Rotate rotates v by phi radians about the origin.
func (v Vec2) Rotate(phi float32) Vec2 {
	return Rotate2(phi).MulVec(v)
}

// Translate translates the point v by ⟨a, b⟩.
func (v Vec2) Translate(a, b float32) Vec2 {
	return HomogeneousTranslate2(a, b).MulVec(v.Homogeneous()).xy()
}

// Shear applies [HomogeneousShear2] to the point v.
func (v Vec2) Shear(a, b float32) Vec2 {
	return HomogeneousShear2(a, b).MulVec(v.Homogeneous()).xy()
}

// Scale scales x by a, y by b, and z by c.
func (v Vec3) Scale(a, b, c float32) Vec3 {
	return Scale3(a, b, c).MulVec(v)
}

func (v Vec3) ScaleX(a float32) Vec3 { return v.Scale(a, 1, 1) }
func (v Vec3) ScaleY(b float32) Vec3 { return v.Scale(1, b, 1) }
func (v Vec3) ScaleZ(c float32) Vec3 { return v.Scale(1, 1, c) }

// RotateX rotates v by phi radians about the x axis.
func (v Vec3) RotateX(phi float32) Vec3 {
	return RotateX3(phi).MulVec(v)
}

// RotateY rotates v by psi radians about the y axis.
func (v Vec3) RotateY(psi float32) Vec3 {
	return RotateY3(psi).MulVec(v)
}

// RotateZ rotates v by xi radians about the z axis.
func (v Vec3) RotateZ(xi float32) Vec3 {
	return RotateZ3(xi).MulVec(v)
}

// Translate translates the point v by ⟨a, b, c⟩.
func (v Vec3) Translate(a, b, c float32) Vec3 {
	return HomogeneousTranslate3(a, b, c).MulVec(v.Homogeneous()).xyz()
}

// Shear applies [HomogeneousShear3] to the point v.
func (v Vec3) Shear(a, b, c float32) Vec3 {
	return HomogeneousShear3(a, b, c).MulVec(v.Homogeneous()).xyz()
}

// Project maps the point v through the homogeneous transform m, typically a
// projection built by [Perspective] or [Ortho], and performs the perspective
// divide. It returns false if the resulting w is within [Epsilon] of zero,
// which happens for points in the camera plane.
func (v Vec3) Project(m Mat4) (Vec3, bool) {
	return m.MulVec(v.Homogeneous()).Dehomogenize()
}

func (v Vec3) xy() Vec2  { return Vec2{v.X, v.Y} }
func (v Vec4) xyz() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Transform lazily applies m to each element of seq, for example a sequence of
// [Vec3] and a [Mat3].
func Transform[T interface{ Transform(M) T }, M any](seq iter.Seq[T], m M) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(m)) {
				break
			}
		}
	}
}
