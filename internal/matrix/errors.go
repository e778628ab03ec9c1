package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	ErrRagged            = errors.New("matrix: rows have different lengths")
	ErrIndexOutOfRange   = errors.New("matrix: index out of range")
)

// DimensionError describes operands whose shapes are incompatible for an operation.
//
// It matches ErrDimensionMismatch with errors.Is.
type DimensionError struct {
	Op         string // Operation name (e.g., "dot", "add")
	ARows      int    // Left operand rows
	ACols      int    // Left operand cols
	BRows      int    // Right operand rows
	BCols      int    // Right operand cols
	Constraint string // What the operation requires
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix: %s: shapes [%d,%d] and [%d,%d]: %s",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols, e.Constraint)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func sameShape(op string, a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return &DimensionError{
			Op: op, ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols,
			Constraint: "shapes must be identical",
		}
	}
	return nil
}

func innerMatch(op string, a, b *Matrix) error {
	if a.cols != b.rows {
		return &DimensionError{
			Op: op, ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols,
			Constraint: "left cols must equal right rows",
		}
	}
	return nil
}
