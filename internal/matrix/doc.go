// Package matrix provides a dense, row-major float64 matrix.
//
// Operations come in two families:
//
//	Methods mutate the receiver:      m.Add(o), m.Scale(s), m.Map(f), m.Transpose()
//	Package functions allocate:       matrix.Add(a, b), matrix.Scale(m, s), matrix.Transpose(m)
//
// Shape violations never truncate or wrap; they return an error matching
// ErrDimensionMismatch.
//
// The product and element-wise kernels run on gonum (mat.Dense, floats)
// over the matrix's backing slice.
//
// Example:
//
//	w := matrix.New(3, 2).Randomize(-0.5, 0.5)
//	x, _ := matrix.FromSlice([][]float64{{1}, {0}})
//	y, err := matrix.Dot(w, x) // shape [3,1]
//	if err != nil {
//	    return err
//	}
//	y.Map(math.Tanh)
package matrix
