package vecmat

import (
	"fmt"
)

// Mat2 is a 2×2 matrix, indexed as m[row][column]. The zero value is the zero
// matrix.
type Mat2 [2][2]float32

// Identity2 is the 2×2 identity matrix.
var Identity2 = Scalar2(1)

// NewMat2 creates a matrix from its rows.
func NewMat2(rows [2][2]float32) Mat2 {
	return Mat2(rows)
}

// Scalar2 returns the matrix with v on the diagonal and zeros elsewhere.
func Scalar2(v float32) Mat2 {
	return Mat2{
		{v, 0},
		{0, v},
	}
}

func (m Mat2) String() string {
	return fmt.Sprintf("[%g %g; %g %g]", m[0][0], m[0][1], m[1][0], m[1][1])
}

// Dim returns 2.
func (m Mat2) Dim() int { return 2 }

// At returns the entry in row i and column j.
func (m Mat2) At(i, j int) float32 {
	return m[i][j]
}

// Entries returns the entries of m in row-major order.
func (m Mat2) Entries() [4]float32 {
	return [4]float32{m[0][0], m[0][1], m[1][0], m[1][1]}
}

// Row returns the i-th row. It panics if i is out of range.
func (m Mat2) Row(i int) Vec2 {
	return Vec2{m[i][0], m[i][1]}
}

// Column returns the j-th column. It panics if j is out of range.
func (m Mat2) Column(j int) Vec2 {
	return Vec2{m[0][j], m[1][j]}
}

// Det computes the determinant.
func (m Mat2) Det() float32 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Cofactor returns the signed minor of the entry at (i, j).
func (m Mat2) Cofactor(i, j int) float32 {
	return signed(i, j, m[1-i][1-j])
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Mat2) Adjugate() Mat2 {
	return Mat2{
		{m[1][1], 0 - m[0][1]},
		{0 - m[1][0], m[0][0]},
	}
}

// Transpose returns m with rows and columns swapped.
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// TryInvert computes the inverse of m from its adjugate and determinant. It
// returns false if m is singular, that is, if the magnitude of its determinant
// is less than [Epsilon].
func (m Mat2) TryInvert() (Mat2, bool) {
	return tryInvert(m)
}

// Invert is like [Mat2.TryInvert] but panics if m is singular.
func (m Mat2) Invert() Mat2 {
	return invert(m)
}

// IsSingular reports whether m has no inverse.
func (m Mat2) IsSingular() bool {
	return isSingular(m)
}

// Mul returns the matrix product m·o.
func (m Mat2) Mul(o Mat2) Mat2 {
	var out Mat2
	for i := range 2 {
		for j := range 2 {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// MulScalar returns m with every entry multiplied by f.
func (m Mat2) MulScalar(f float32) Mat2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= f
		}
	}
	return m
}

// Add returns the entrywise sum m + o.
func (m Mat2) Add(o Mat2) Mat2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

// Sub returns the entrywise difference m - o.
func (m Mat2) Sub(o Mat2) Mat2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

// ApproxEqual reports whether all entries of m and o differ by less than
// [Epsilon].
func (m Mat2) ApproxEqual(o Mat2) bool {
	a, b := m.Entries(), o.Entries()
	return approxEqual(a[:], b[:])
}

// IsInf reports whether at least one entry is infinite.
func (m Mat2) IsInf() bool {
	e := m.Entries()
	return anyInf(e[:])
}

// IsNaN reports whether at least one entry is NaN.
func (m Mat2) IsNaN() bool {
	e := m.Entries()
	return anyNaN(e[:])
}
