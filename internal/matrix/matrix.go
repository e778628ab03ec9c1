package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense rows x cols grid of float64 values stored row-major.
//
// A matrix with zero rows or zero cols is empty but valid.
// Two matrices with equal shape and equal values are interchangeable.
type Matrix struct {
	rows int
	cols int
	data []float64 // len == rows*cols
}

// New creates a zero-filled matrix with the given shape.
//
// Negative dimensions panic, matching make().
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions [%d,%d]", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromSlice creates a matrix by copying a 2D slice.
//
// Every row must have the same length; ragged input returns ErrRagged.
// An empty outer slice yields a 0x0 matrix.
func FromSlice(data [][]float64) (*Matrix, error) {
	rows := len(data)
	if rows == 0 {
		return New(0, 0), nil
	}
	cols := len(data[0])
	m := New(rows, cols)
	for r, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrRagged, r, len(row), cols)
		}
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m, nil
}

// FromVector creates a 1 x len(values) row vector.
func FromVector(values []float64) *Matrix {
	m := New(1, len(values))
	copy(m.data, values)
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// IsEmpty reports whether the matrix has no cells.
func (m *Matrix) IsEmpty() bool {
	return m.rows == 0 || m.cols == 0
}

// At returns the value at (r, c). Out-of-range indices panic.
func (m *Matrix) At(r, c int) float64 {
	m.checkIndex(r, c)
	return m.data[r*m.cols+c]
}

// Set stores v at (r, c). Out-of-range indices panic.
func (m *Matrix) Set(r, c int, v float64) {
	m.checkIndex(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Matrix) checkIndex(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Errorf("%w: (%d,%d) in [%d,%d]", ErrIndexOutOfRange, r, c, m.rows, m.cols))
	}
}

// Data returns the row-major backing slice.
//
// The slice aliases the matrix; writes through it are visible to the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

// ToSlice returns a freshly allocated 2D copy of the values.
func (m *Matrix) ToSlice() [][]float64 {
	out := make([][]float64, m.rows)
	for r := range out {
		out[r] = make([]float64, m.cols)
		copy(out[r], m.data[r*m.cols:(r+1)*m.cols])
	}
	return out
}

// Copy returns a deep copy with independent storage.
func (m *Matrix) Copy() *Matrix {
	out := New(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Equal reports whether o has the same shape and bit-identical values.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols && floats.Equal(m.data, o.data)
}

// EqualApprox reports whether o has the same shape and every value is
// within tol (absolute or relative) of the corresponding value in m.
func (m *Matrix) EqualApprox(o *Matrix, tol float64) bool {
	return m.rows == o.rows && m.cols == o.cols && floats.EqualApprox(m.data, o.data, tol)
}

// String formats the matrix one row per line, tab separated.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix[%d,%d]\n", m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%g", m.data[r*m.cols+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// In-place operations.

// Fill sets every cell to v and returns m.
func (m *Matrix) Fill(v float64) *Matrix {
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// Map replaces every cell x with f(x) and returns m.
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	for i, v := range m.data {
		m.data[i] = f(v)
	}
	return m
}

// Scale multiplies every cell by s and returns m.
func (m *Matrix) Scale(s float64) *Matrix {
	floats.Scale(s, m.data)
	return m
}

// Add adds o to m element-wise.
func (m *Matrix) Add(o *Matrix) error {
	if err := sameShape("add", m, o); err != nil {
		return err
	}
	floats.Add(m.data, o.data)
	return nil
}

// Sub subtracts o from m element-wise.
func (m *Matrix) Sub(o *Matrix) error {
	if err := sameShape("sub", m, o); err != nil {
		return err
	}
	floats.Sub(m.data, o.data)
	return nil
}

// Mult multiplies m by o element-wise (Hadamard product).
func (m *Matrix) Mult(o *Matrix) error {
	if err := sameShape("mult", m, o); err != nil {
		return err
	}
	floats.Mul(m.data, o.data)
	return nil
}

// Transpose swaps rows and columns of m in place and returns m.
func (m *Matrix) Transpose() *Matrix {
	t := Transpose(m)
	m.rows, m.cols, m.data = t.rows, t.cols, t.data
	return m
}

// Dot replaces m with the matrix product m·o.
//
// The receiver's shape becomes (m.Rows, o.Cols).
func (m *Matrix) Dot(o *Matrix) error {
	p, err := Dot(m, o)
	if err != nil {
		return err
	}
	m.rows, m.cols, m.data = p.rows, p.cols, p.data
	return nil
}
