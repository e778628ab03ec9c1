package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Allocating operations. Operands are never modified.

// Dot returns the matrix product a·b with shape (a.Rows, b.Cols).
//
// Requires a.Cols == b.Rows.
func Dot(a, b *Matrix) (*Matrix, error) {
	if err := innerMatch("dot", a, b); err != nil {
		return nil, err
	}

	out := New(a.rows, b.cols)
	// gonum rejects zero-sized dense matrices; an empty shared
	// dimension leaves the product all zeros.
	if out.IsEmpty() || a.cols == 0 {
		return out, nil
	}

	dst := mat.NewDense(out.rows, out.cols, out.data)
	dst.Mul(a.dense(), b.dense())
	return out, nil
}

// dense wraps m's storage as a gonum matrix without copying.
// Callers must not pass an empty matrix.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// Add returns a + b element-wise.
func Add(a, b *Matrix) (*Matrix, error) {
	if err := sameShape("add", a, b); err != nil {
		return nil, err
	}
	out := New(a.rows, a.cols)
	floats.AddTo(out.data, a.data, b.data)
	return out, nil
}

// Sub returns a - b element-wise.
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := sameShape("sub", a, b); err != nil {
		return nil, err
	}
	out := New(a.rows, a.cols)
	floats.SubTo(out.data, a.data, b.data)
	return out, nil
}

// SubFrom returns s - m[i][j] for every cell.
func SubFrom(s float64, m *Matrix) *Matrix {
	out := New(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = s - v
	}
	return out
}

// Mult returns the element-wise (Hadamard) product of a and b.
func Mult(a, b *Matrix) (*Matrix, error) {
	if err := sameShape("mult", a, b); err != nil {
		return nil, err
	}
	out := New(a.rows, a.cols)
	floats.MulTo(out.data, a.data, b.data)
	return out, nil
}

// Scale returns m with every cell multiplied by s.
func Scale(m *Matrix, s float64) *Matrix {
	out := New(m.rows, m.cols)
	floats.ScaleTo(out.data, s, m.data)
	return out
}

// Transpose returns a new (m.Cols, m.Rows) matrix with out[j][i] = m[i][j].
func Transpose(m *Matrix) *Matrix {
	out := New(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*m.rows+r] = m.data[r*m.cols+c]
		}
	}
	return out
}

// Map returns a copy of m with f applied to every cell.
func Map(m *Matrix, f func(float64) float64) *Matrix {
	return m.Copy().Map(f)
}
