package vecmat

import (
	"github.com/chewxy/math32"
)

// Matrix describes the operations the algebraic algorithms of this package
// need from a square matrix type. It is implemented by [Mat2], [Mat3], and
// [Mat4].
type Matrix[M any] interface {
	Dim() int
	Det() float32
	Transpose() M
	Adjugate() M
	MulScalar(f float32) M
}

var (
	_ Matrix[Mat2] = Mat2{}
	_ Matrix[Mat3] = Mat3{}
	_ Matrix[Mat4] = Mat4{}
)

func tryInvert[M Matrix[M]](m M) (M, bool) {
	det := m.Det()
	if math32.Abs(det) < Epsilon {
		var zero M
		return zero, false
	}
	return m.Adjugate().MulScalar(1 / det), true
}

func invert[M Matrix[M]](m M) M {
	inv, ok := tryInvert(m)
	if !ok {
		panic("impossible to invert a singular matrix")
	}
	return inv
}

func isSingular[M Matrix[M]](m M) bool {
	_, ok := tryInvert(m)
	return !ok
}

// signed applies the checkerboard sign of the cofactor at (i, j) to d. It
// subtracts from zero rather than negating so that zero entries don't become
// -0.
func signed(i, j int, d float32) float32 {
	if (i+j)%2 != 0 {
		return 0 - d
	}
	return d
}

func approxEqual(a, b []float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) >= Epsilon {
			return false
		}
	}
	return true
}

func anyInf(entries []float32) bool {
	for _, e := range entries {
		if math32.IsInf(e, 0) {
			return true
		}
	}
	return false
}

func anyNaN(entries []float32) bool {
	for _, e := range entries {
		if math32.IsNaN(e) {
			return true
		}
	}
	return false
}
