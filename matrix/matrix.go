// Copyright 2026 JavaNeuralNetwork Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense float64 matrices for the network engine.
//
// Methods on *Matrix mutate the receiver. Package-level functions leave
// their operands untouched and return a new Matrix.
//
// Example:
//
//	a, _ := matrix.FromSlice([][]float64{{1, 2}, {3, 4}})
//	b := matrix.Transpose(a)
//	c, err := matrix.Dot(a, b) // new matrix, a and b unchanged
//	a.Scale(2)                 // a changes in place
package matrix

import (
	"math/rand/v2"

	"github.com/JayPi4c/JavaNeuralNetwork/internal/matrix"
)

// Matrix is a dense row-major matrix of float64 values.
type Matrix = matrix.Matrix

// DimensionError describes operand shapes incompatible with an operation.
// It matches ErrDimensionMismatch under errors.Is.
type DimensionError = matrix.DimensionError

// Errors reported by matrix construction and arithmetic.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrRagged            = matrix.ErrRagged
	ErrIndexOutOfRange   = matrix.ErrIndexOutOfRange
)

// New returns a zero-filled rows x cols matrix. It panics on negative dimensions.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// FromSlice copies a rectangular 2D slice into a new matrix.
func FromSlice(data [][]float64) (*Matrix, error) {
	return matrix.FromSlice(data)
}

// FromVector copies values into a new 1 x len(values) row vector.
func FromVector(values []float64) *Matrix {
	return matrix.FromVector(values)
}

// Dot returns the matrix product a·b.
func Dot(a, b *Matrix) (*Matrix, error) {
	return matrix.Dot(a, b)
}

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	return matrix.Add(a, b)
}

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) {
	return matrix.Sub(a, b)
}

// Mult returns the element-wise product of a and b.
func Mult(a, b *Matrix) (*Matrix, error) {
	return matrix.Mult(a, b)
}

// SubFrom returns s - m for every element of m.
func SubFrom(s float64, m *Matrix) *Matrix {
	return matrix.SubFrom(s, m)
}

// Scale returns m with every element multiplied by s.
func Scale(m *Matrix, s float64) *Matrix {
	return matrix.Scale(m, s)
}

// Transpose returns the transpose of m.
func Transpose(m *Matrix) *Matrix {
	return matrix.Transpose(m)
}

// Map returns f applied to every element of m.
func Map(m *Matrix, f func(float64) float64) *Matrix {
	return matrix.Map(m, f)
}

// Uniform draws a value uniformly from [lo, hi]. A nil rng uses the global source.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return matrix.Uniform(rng, lo, hi)
}
