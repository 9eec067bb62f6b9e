package vecmat

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/mat"
)

var (
	m2 = NewMat2([2][2]float32{
		{4, 7},
		{2, 6},
	})
	m3 = NewMat3([3][3]float32{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	m4 = NewMat4([4][4]float32{
		{4, 0, 0, 1},
		{0, 3, 1, 0},
		{2, 0, 5, 0},
		{0, 1, 0, 2},
	})
)

func TestMatDim(t *testing.T) {
	if d := m2.Dim(); d != 2 {
		t.Errorf("got %d, want 2", d)
	}
	if d := m3.Dim(); d != 3 {
		t.Errorf("got %d, want 3", d)
	}
	if d := m4.Dim(); d != 4 {
		t.Errorf("got %d, want 4", d)
	}
}

func TestScalar(t *testing.T) {
	diff(t, Mat2{{3, 0}, {0, 3}}, Scalar2(3))
	diff(t, Mat3{}, Scalar3(0))
	diff(t, Identity4, Scalar4(1))
	diff(t, V4(2, 4, 6, 8), Scalar4(2).MulVec(V4(1, 2, 3, 4)))
}

func TestDetIdentityAndZero(t *testing.T) {
	for _, tt := range []struct {
		name string
		got  float32
		want float32
	}{
		{"Identity2", Identity2.Det(), 1},
		{"Identity3", Identity3.Det(), 1},
		{"Identity4", Identity4.Det(), 1},
		{"Mat2{}", Mat2{}.Det(), 0},
		{"Mat3{}", Mat3{}.Det(), 0},
		{"Mat4{}", Mat4{}.Det(), 0},
	} {
		if tt.got != tt.want {
			t.Errorf("%s: got determinant %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestDet(t *testing.T) {
	if d := m2.Det(); d != 10 {
		t.Errorf("got %v, want 10", d)
	}
	if d := m3.Det(); d != 9 {
		t.Errorf("got %v, want 9", d)
	}
	if d, want := m4.Det(), float32(mat.Det(dense(m4))); math32.Abs(d-want) >= Epsilon {
		t.Errorf("got %v, want %v", d, want)
	}

	// The determinant of a product is the product of the determinants.
	if d, want := m3.Mul(m3.Transpose()).Det(), m3.Det()*m3.Det(); math32.Abs(d-want) >= Epsilon {
		t.Errorf("got %v, want %v", d, want)
	}
}

func TestRowsAndColumns(t *testing.T) {
	diff(t, V2(2, 6), m2.Row(1))
	diff(t, V2(7, 6), m2.Column(1))
	diff(t, V3(3, 6, 1), m3.Row(1))
	diff(t, V3(2, 1, 3), m3.Column(2))
	diff(t, V4(0, 1, 0, 2), m4.Row(3))
	diff(t, V4(1, 0, 0, 2), m4.Column(3))

	for i := range 4 {
		diff(t, m4.Row(i), m4.Transpose().Column(i))
	}
	if got := m3.At(2, 1); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestRowOutOfRange(t *testing.T) {
	for _, fn := range []func(){
		func() { m2.Row(2) },
		func() { m3.Column(-1) },
		func() { m4.Row(4) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected out of range index to panic")
				}
			}()
			fn()
		}()
	}
}

func TestTranspose(t *testing.T) {
	diff(t, Mat2{{4, 2}, {7, 6}}, m2.Transpose())
	diff(t, Mat3{{4, 3, 2}, {7, 6, 5}, {2, 1, 3}}, m3.Transpose())

	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		m := randomMat4(rng)
		diff(t, m, m.Transpose().Transpose())
	}
}

func TestMinorAndAdjugate(t *testing.T) {
	diff(t, Mat2{{7, 2}, {5, 3}}, m3.Minor(1, 0))
	diff(t, Mat3{{0, 0, 1}, {3, 1, 0}, {0, 5, 0}}, m4.Minor(3, 0))
	if c := m3.Cofactor(0, 1); c != -(3*3 - 1*2) {
		t.Errorf("got cofactor %v, want %v", c, -(3*3 - 1*2))
	}
	if c := m2.Cofactor(0, 1); c != -2 {
		t.Errorf("got cofactor %v, want -2", c)
	}

	// m·adj(m) = det(m)·I
	diff(t, Scalar2(m2.Det()), m2.Mul(m2.Adjugate()))
	diff(t, Scalar3(m3.Det()), m3.Mul(m3.Adjugate()), approx)
	diff(t, Scalar4(m4.Det()), m4.Mul(m4.Adjugate()), approx)
}

func TestInvert(t *testing.T) {
	inv2, ok := m2.TryInvert()
	if !ok {
		t.Fatal("couldn't invert m2")
	}
	diff(t, Mat2{{0.6, -0.7}, {-0.2, 0.4}}, inv2, approx)
	diff(t, Identity2, m2.Mul(inv2), approx)
	diff(t, m2, m2.Invert().Invert(), approx)

	inv3, ok := m3.TryInvert()
	if !ok {
		t.Fatal("couldn't invert m3")
	}
	diff(t, Identity3, m3.Mul(inv3), approx)
	diff(t, Identity3, inv3.Mul(m3), approx)
	diff(t, m3, m3.Invert().Invert(), approx)

	inv4, ok := m4.TryInvert()
	if !ok {
		t.Fatal("couldn't invert m4")
	}
	diff(t, Identity4, m4.Mul(inv4), approx)
	diff(t, m4, m4.Invert().Invert(), approx)

	diff(t, Identity3, Identity3.Invert())
}

func TestInvertAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		m := randomMat4(rng)

		// float32 rounding grows with the magnitude of the determinant.
		if got, want := m.Det(), mat.Det(dense(m)); math.Abs(float64(got)-want) >= float64(Epsilon)*math.Abs(want) {
			t.Errorf("determinant of %s: got %v, want %v", m, got, want)
		}

		var want mat.Dense
		if err := want.Inverse(dense(m)); err != nil {
			t.Fatalf("gonum couldn't invert %s: %s", m, err)
		}
		var wantM Mat4
		for i := range 4 {
			for j := range 4 {
				wantM[i][j] = float32(want.At(i, j))
			}
		}
		diff(t, wantM, m.Invert(), approx)
		diff(t, Identity4, m.Mul(m.Invert()), approx)
	}
}

func TestSingular(t *testing.T) {
	s := NewMat2([2][2]float32{
		{1, 2},
		{2, 4},
	})
	if _, ok := s.TryInvert(); ok {
		t.Error("inverted a singular matrix")
	}
	if !s.IsSingular() {
		t.Error("matrix with determinant 0 isn't singular")
	}
	if m2.IsSingular() {
		t.Error("invertible matrix is singular")
	}
	if !(Mat4{}).IsSingular() {
		t.Error("zero matrix isn't singular")
	}
	if !Scalar3(0.09).IsSingular() {
		t.Error("matrix with determinant below epsilon isn't singular")
	}
	if !m4.Minor(0, 0).Mul(Scale3(1, 0, 1)).IsSingular() {
		t.Error("matrix with a zero column isn't singular")
	}

	assertPanics(t, "impossible to invert a singular matrix", func() {
		s.Invert()
	})
	assertPanics(t, "impossible to invert a singular matrix", func() {
		Mat3{}.Invert()
	})
}

func TestMatArithmetic(t *testing.T) {
	diff(t, Scalar2(2).Add(m2), Mat2{{6, 7}, {2, 8}})
	diff(t, m3.Sub(m3), Mat3{})
	diff(t, m4.MulScalar(2), m4.Add(m4))
	diff(t, m3, Identity3.Mul(m3))
	diff(t, m4, m4.Mul(Identity4))

	// (A·B)·v == A·(B·v)
	v := V3(1, -2, 3)
	diff(t, m3.Mul(Identity3.MulScalar(2)).MulVec(v), m3.MulVec(Identity3.MulScalar(2).MulVec(v)))
}

func TestMulVec(t *testing.T) {
	diff(t, V2(11, 8), m2.MulVec(V2(1, 1)))
	diff(t, V3(4+14+6, 3+12+3, 2+10+9), m3.MulVec(V3(1, 2, 3)))
	diff(t, V4(8, 9, 17, 10), m4.MulVec(V4(1, 2, 3, 4)))
	diff(t, m4.MulVec(V4(1, 2, 3, 4)), V4(1, 2, 3, 4).Transform(m4))

	// Row i of m times v is component i of m·v.
	v := V4(-1, 0.5, 2, 3)
	mv := m4.MulVec(v)
	for i := range 4 {
		diff(t, m4.Row(i).Dot(v), mv.At(i), approx)
	}
}

func TestMatEntries(t *testing.T) {
	diff(t, [4]float32{4, 7, 2, 6}, m2.Entries())
	diff(t, [9]float32{4, 7, 2, 3, 6, 1, 2, 5, 3}, m3.Entries())
	e := m4.Entries()
	if e[4*2+0] != 2 {
		t.Errorf("got %v, want 2", e[8])
	}
}

func TestMatApproxEqual(t *testing.T) {
	if !m3.ApproxEqual(m3.Add(Scalar3(0.0005))) {
		t.Error("matrices within epsilon aren't equal")
	}
	if m4.ApproxEqual(m4.Add(Scalar4(0.01))) {
		t.Error("matrices more than epsilon apart are equal")
	}
}

func TestMatIsInfNaN(t *testing.T) {
	if m4.IsInf() || m4.IsNaN() {
		t.Error("finite matrix reported as infinite or NaN")
	}
	if !Ortho(1, 1, -1, 1, -1, 1).IsInf() {
		t.Error("degenerate projection isn't infinite")
	}
	var zero float32
	if !Scalar2(zero / zero).IsNaN() {
		t.Error("NaN matrix isn't NaN")
	}
}

func TestMatString(t *testing.T) {
	if s := m2.String(); s != "[4 7; 2 6]" {
		t.Errorf("got %q", s)
	}
	if s := Identity4.String(); s != "[1 0 0 0; 0 1 0 0; 0 0 1 0; 0 0 0 1]" {
		t.Errorf("got %q", s)
	}
}

// randomMat4 returns a diagonally dominant and thus well-conditioned matrix.
func randomMat4(rng *rand.Rand) Mat4 {
	var m Mat4
	for i := range 4 {
		for j := range 4 {
			m[i][j] = float32(rng.Float64()*2 - 1)
		}
		m[i][i] += 5
	}
	return m
}

func dense(m Mat4) *mat.Dense {
	e := m.Entries()
	data := make([]float64, len(e))
	for i, v := range e {
		data[i] = float64(v)
	}
	return mat.NewDense(4, 4, data)
}
