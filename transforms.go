package vecmat

import (
	"github.com/chewxy/math32"
)

// The builders in this file return matrices that act on column vectors, so
// that (A·B)·v == A·(B·v) and the transform applied last is the leftmost
// factor. Homogeneous variants act on points with an additional coordinate
// fixed to 1.
//
// All builders assume well-formed parameters. Degenerate arguments, such as
// equal near and far planes, produce infinities or NaNs.
//
// Rotations follow the right-hand rule: a positive angle rotates the positive
// X direction into positive Y, Y into Z, and Z into X. Thus, in a y-down
// coordinate system, a 2D rotation is clockwise, and in y-up it is
// anti-clockwise. Angles are expressed in radians.

// Scale2 creates a matrix scaling x by a and y by b.
func Scale2(a, b float32) Mat2 {
	return Mat2{
		{a, 0},
		{0, b},
	}
}

// Scale3 creates a matrix scaling x by a, y by b, and z by c.
func Scale3(a, b, c float32) Mat3 {
	return Mat3{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, c},
	}
}

// HomogeneousScale2 is the homogeneous form of [Scale2].
func HomogeneousScale2(a, b float32) Mat3 {
	return Mat3{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, 1},
	}
}

// HomogeneousScale3 is the homogeneous form of [Scale3].
func HomogeneousScale3(a, b, c float32) Mat4 {
	return Mat4{
		{a, 0, 0, 0},
		{0, b, 0, 0},
		{0, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// Rotate2 creates a matrix rotating by phi about the origin.
func Rotate2(phi float32) Mat2 {
	s, c := math32.Sincos(phi)
	return Mat2{
		{c, -s},
		{s, c},
	}
}

// RotateX3 creates a matrix rotating by phi about the x axis.
func RotateX3(phi float32) Mat3 {
	s, c := math32.Sincos(phi)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotateY3 creates a matrix rotating by psi about the y axis.
func RotateY3(psi float32) Mat3 {
	s, c := math32.Sincos(psi)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotateZ3 creates a matrix rotating by xi about the z axis.
func RotateZ3(xi float32) Mat3 {
	s, c := math32.Sincos(xi)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// HomogeneousRotate2 is the homogeneous form of [Rotate2].
func HomogeneousRotate2(phi float32) Mat3 {
	return embed2(Rotate2(phi))
}

// HomogeneousRotateX3 is the homogeneous form of [RotateX3].
func HomogeneousRotateX3(phi float32) Mat4 {
	return embed3(RotateX3(phi))
}

// HomogeneousRotateY3 is the homogeneous form of [RotateY3].
func HomogeneousRotateY3(psi float32) Mat4 {
	return embed3(RotateY3(psi))
}

// HomogeneousRotateZ3 is the homogeneous form of [RotateZ3].
func HomogeneousRotateZ3(xi float32) Mat4 {
	return embed3(RotateZ3(xi))
}

// HomogeneousTranslate2 creates a matrix translating 2D points by ⟨a, b⟩.
//
// Translation isn't a linear map, so there is no non-homogeneous form.
func HomogeneousTranslate2(a, b float32) Mat3 {
	return Mat3{
		{1, 0, a},
		{0, 1, b},
		{0, 0, 1},
	}
}

// HomogeneousTranslate3 creates a matrix translating 3D points by ⟨a, b, c⟩.
func HomogeneousTranslate3(a, b, c float32) Mat4 {
	return Mat4{
		{1, 0, 0, a},
		{0, 1, 0, b},
		{0, 0, 1, c},
		{0, 0, 0, 1},
	}
}

// HomogeneousShear2 creates a matrix representing a shear, mapping ⟨x, y⟩ to
// ⟨x + a·y, y + b·x⟩.
func HomogeneousShear2(a, b float32) Mat3 {
	return Mat3{
		{1, a, 0},
		{b, 1, 0},
		{0, 0, 1},
	}
}

// HomogeneousShear3 creates a matrix representing a shear, mapping ⟨x, y, z⟩
// to ⟨x + a·y, y + b·z, z + c·x⟩.
func HomogeneousShear3(a, b, c float32) Mat4 {
	return Mat4{
		{1, a, 0, 0},
		{0, 1, b, 0},
		{c, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Perspective creates a perspective projection matrix, mapping view space,
// with the camera looking down the negative z axis, to clip space. fov is the
// vertical field of view and aspect is the ratio of width to height.
//
// Points between the near and far planes end up with z/w in [-1, 1] after the
// perspective divide.
func Perspective(far, near, aspect, fov float32) Mat4 {
	f := math32.Tan(Pi/2 - fov/2)
	rangeInv := 1 / (near - far)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (near + far) * rangeInv, 2 * near * far * rangeInv},
		{0, 0, -1, 0},
	}
}

// Ortho creates an orthographic projection matrix that maps the box
// [left, right] × [bottom, top] × [-near, -far] to the cube [-1, 1]³.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		{2 / rl, 0, 0, -(right + left) / rl},
		{0, 2 / tb, 0, -(top + bottom) / tb},
		{0, 0, -2 / fn, -(far + near) / fn},
		{0, 0, 0, 1},
	}
}

// embed2 places a 2×2 linear map in the upper left of a homogeneous 3×3 matrix.
func embed2(m Mat2) Mat3 {
	return Mat3{
		{m[0][0], m[0][1], 0},
		{m[1][0], m[1][1], 0},
		{0, 0, 1},
	}
}

// embed3 places a 3×3 linear map in the upper left of a homogeneous 4×4 matrix.
func embed3(m Mat3) Mat4 {
	return Mat4{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}
