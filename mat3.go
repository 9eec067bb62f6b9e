package vecmat

import (
	"fmt"
)

// Mat3 is a 3×3 matrix, indexed as m[row][column]. Besides 3D linear maps, it
// represents 2D affine transforms in homogeneous coordinates. The zero value is
// the zero matrix.
type Mat3 [3][3]float32

// Identity3 is the 3×3 identity matrix.
var Identity3 = Scalar3(1)

// NewMat3 creates a matrix from its rows.
func NewMat3(rows [3][3]float32) Mat3 {
	return Mat3(rows)
}

// Scalar3 returns the matrix with v on the diagonal and zeros elsewhere.
func Scalar3(v float32) Mat3 {
	return Mat3{
		{v, 0, 0},
		{0, v, 0},
		{0, 0, v},
	}
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// Dim returns 3.
func (m Mat3) Dim() int { return 3 }

// At returns the entry in row i and column j.
func (m Mat3) At(i, j int) float32 {
	return m[i][j]
}

// Entries returns the entries of m in row-major order.
func (m Mat3) Entries() [9]float32 {
	var out [9]float32
	for i := range 3 {
		copy(out[i*3:], m[i][:])
	}
	return out
}

// Row returns the i-th row. It panics if i is out of range.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i][0], m[i][1], m[i][2]}
}

// Column returns the j-th column. It panics if j is out of range.
func (m Mat3) Column(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// Minor returns the 2×2 matrix that remains after removing row i and column j.
func (m Mat3) Minor(i, j int) Mat2 {
	var out Mat2
	r := 0
	for row := range 3 {
		if row == i {
			continue
		}
		c := 0
		for col := range 3 {
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
func (m Mat3) Cofactor(i, j int) float32 {
	return signed(i, j, m.Minor(i, j).Det())
}

// Det computes the determinant by cofactor expansion along the first row.
func (m Mat3) Det() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Mat3) Adjugate() Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			out[j][i] = m.Cofactor(i, j)
		}
	}
	return out
}

// Transpose returns m with rows and columns swapped.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// TryInvert computes the inverse of m from its adjugate and determinant. It
// returns false if m is singular.
func (m Mat3) TryInvert() (Mat3, bool) {
	return tryInvert(m)
}

// Invert is like [Mat3.TryInvert] but panics if m is singular.
func (m Mat3) Invert() Mat3 {
	return invert(m)
}

// IsSingular reports whether m has no inverse.
func (m Mat3) IsSingular() bool {
	return isSingular(m)
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// MulScalar returns m with every entry multiplied by f.
func (m Mat3) MulScalar(f float32) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= f
		}
	}
	return m
}

// Add returns the entrywise sum m + o.
func (m Mat3) Add(o Mat3) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

// Sub returns the entrywise difference m - o.
func (m Mat3) Sub(o Mat3) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

// ApproxEqual reports whether all entries of m and o differ by less than
// [Epsilon].
func (m Mat3) ApproxEqual(o Mat3) bool {
	a, b := m.Entries(), o.Entries()
	return approxEqual(a[:], b[:])
}

// IsInf reports whether at least one entry is infinite.
func (m Mat3) IsInf() bool {
	e := m.Entries()
	return anyInf(e[:])
}

// IsNaN reports whether at least one entry is NaN.
func (m Mat3) IsNaN() bool {
	e := m.Entries()
	return anyNaN(e[:])
}
