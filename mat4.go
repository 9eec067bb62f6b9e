package vecmat

import (
	"fmt"
	"strings"
)

// Mat4 is a 4×4 matrix, indexed as m[row][column]. Besides 4D linear maps, it
// represents 3D affine transforms and projections in homogeneous coordinates.
// The zero value is the zero matrix.
type Mat4 [4][4]float32

// Identity4 is the 4×4 identity matrix.
var Identity4 = Scalar4(1)

// NewMat4 creates a matrix from its rows.
func NewMat4(rows [4][4]float32) Mat4 {
	return Mat4(rows)
}

// Scalar4 returns the matrix with v on the diagonal and zeros elsewhere.
func Scalar4(v float32) Mat4 {
	return Mat4{
		{v, 0, 0, 0},
		{0, v, 0, 0},
		{0, 0, v, 0},
		{0, 0, 0, v},
	}
}

func (m Mat4) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%g %g %g %g", row[0], row[1], row[2], row[3])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Dim returns 4.
func (m Mat4) Dim() int { return 4 }

// At returns the entry in row i and column j.
func (m Mat4) At(i, j int) float32 {
	return m[i][j]
}

// Entries returns the entries of m in row-major order.
func (m Mat4) Entries() [16]float32 {
	var out [16]float32
	for i := range 4 {
		copy(out[i*4:], m[i][:])
	}
	return out
}

// Row returns the i-th row. It panics if i is out of range.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i][0], m[i][1], m[i][2], m[i][3]}
}

// Column returns the j-th column. It panics if j is out of range.
func (m Mat4) Column(j int) Vec4 {
	return Vec4{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// Minor returns the 3×3 matrix that remains after removing row i and column j.
func (m Mat4) Minor(i, j int) Mat3 {
	var out Mat3
	r := 0
	for row := range 4 {
		if row == i {
			continue
		}
		c := 0
		for col := range 4 {
			if col == j {
				continue
			}
			out[r][c] = m[row][col]
			c++
		}
		r++
	}
	return out
}

// Cofactor returns the signed determinant of the minor at (i, j).
func (m Mat4) Cofactor(i, j int) float32 {
	return signed(i, j, m.Minor(i, j).Det())
}

// Det computes the determinant by cofactor expansion along the first row.
func (m Mat4) Det() float32 {
	var det float32
	for j := range 4 {
		det += m[0][j] * m.Cofactor(0, j)
	}
	return det
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Mat4) Adjugate() Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			out[j][i] = m.Cofactor(i, j)
		}
	}
	return out
}

// Transpose returns m with rows and columns swapped.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// TryInvert computes the inverse of m from its adjugate and determinant. It
// returns false if m is singular.
func (m Mat4) TryInvert() (Mat4, bool) {
	return tryInvert(m)
}

// Invert is like [Mat4.TryInvert] but panics if m is singular.
func (m Mat4) Invert() Mat4 {
	return invert(m)
}

// IsSingular reports whether m has no inverse.
func (m Mat4) IsSingular() bool {
	return isSingular(m)
}

// Mul returns the matrix product m·o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// MulScalar returns m with every entry multiplied by f.
func (m Mat4) MulScalar(f float32) Mat4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= f
		}
	}
	return m
}

// Add returns the entrywise sum m + o.
func (m Mat4) Add(o Mat4) Mat4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

// Sub returns the entrywise difference m - o.
func (m Mat4) Sub(o Mat4) Mat4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

// ApproxEqual reports whether all entries of m and o differ by less than
// [Epsilon].
func (m Mat4) ApproxEqual(o Mat4) bool {
	a, b := m.Entries(), o.Entries()
	return approxEqual(a[:], b[:])
}

// IsInf reports whether at least one entry is infinite.
func (m Mat4) IsInf() bool {
	e := m.Entries()
	return anyInf(e[:])
}

// IsNaN reports whether at least one entry is NaN.
func (m Mat4) IsNaN() bool {
	e := m.Entries()
	return anyNaN(e[:])
}
