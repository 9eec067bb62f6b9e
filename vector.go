package vecmat

import (
	"github.com/chewxy/math32"
)

// Vector describes the operations the geometric algorithms of this package
// need from a vector type. It is implemented by [Vec2], [Vec3], and [Vec4].
type Vector[V any] interface {
	Dim() int
	Sub(o V) V
	Mul(f float32) V
	Div(f float32) V
	Dot(o V) float32
	Len() float32
}

var (
	_ Vector[Vec2] = Vec2{}
	_ Vector[Vec3] = Vec3{}
	_ Vector[Vec4] = Vec4{}
)

func tryNormalize[V Vector[V]](v V) (V, bool) {
	l := v.Len()
	if math32.IsInf(l, 1) {
		// The length overflowed. Scaling by a power of two is exact and
		// keeps the direction.
		v = v.Mul(0x1p-64)
		l = v.Len()
	}
	// The negated comparison also rejects NaN lengths.
	if !(l >= Epsilon) || math32.IsInf(l, 1) {
		var zero V
		return zero, false
	}
	return v.Div(l), true
}

func normalize[V Vector[V]](v V) V {
	n, ok := tryNormalize(v)
	if !ok {
		panic("can't normalize null vector")
	}
	return n
}

func tryAngle[V Vector[V]](v, o V) (float32, bool) {
	vn, ok := tryNormalize(v)
	if !ok {
		return 0, false
	}
	on, ok := tryNormalize(o)
	if !ok {
		return 0, false
	}
	// Rounding can push the cosine slightly outside of [-1, 1].
	cos := clamp32(vn.Dot(on), -1, 1)
	return math32.Acos(cos), true
}

func angle[V Vector[V]](v, o V) float32 {
	th, ok := tryAngle(v, o)
	if !ok {
		panic("can't compute the angle between two vectors when one of them is null")
	}
	return th
}

func isOrthogonal[V Vector[V]](v, o V) bool {
	return math32.Abs(v.Dot(o)) < Epsilon
}

func tryReflect[V Vector[V]](v, axis V) (V, bool) {
	n, ok := tryNormalize(axis)
	if !ok {
		var zero V
		return zero, false
	}
	// v - 2(v·n)n
	return v.Sub(n.Mul(2 * v.Dot(n))), true
}

func reflect[V Vector[V]](v, axis V) V {
	r, ok := tryReflect(v, axis)
	if !ok {
		panic("can't reflect a vector with a null vector")
	}
	return r
}
