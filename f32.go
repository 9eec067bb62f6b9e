package vecmat

import (
	"golang.org/x/image/math/f32"
)

// F32 returns v as an [f32.Vec2].
func (v Vec2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }

// F32 returns v as an [f32.Vec3].
func (v Vec3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// F32 returns v as an [f32.Vec4].
func (v Vec4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vec2FromF32 converts an [f32.Vec2].
func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2{v[0], v[1]} }

// Vec3FromF32 converts an [f32.Vec3].
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

// Vec4FromF32 converts an [f32.Vec4].
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4{v[0], v[1], v[2], v[3]} }

// F32 returns m as an [f32.Mat3]. Both use row-major order.
func (m Mat3) F32() f32.Mat3 {
	return f32.Mat3(m.Entries())
}

// F32 returns m as an [f32.Mat4]. Both use row-major order.
func (m Mat4) F32() f32.Mat4 {
	return f32.Mat4(m.Entries())
}

// Mat3FromF32 converts a row-major [f32.Mat3].
func Mat3FromF32(m f32.Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		copy(out[i][:], m[i*3:i*3+3])
	}
	return out
}

// Mat4FromF32 converts a row-major [f32.Mat4].
func Mat4FromF32(m f32.Mat4) Mat4 {
	var out Mat4
	for i := range 4 {
		copy(out[i][:], m[i*4:i*4+4])
	}
	return out
}
