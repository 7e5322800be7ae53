// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and structured error carriers.
// Every algorithm returns one of the sentinels below (possibly wrapped);
// tests and callers MUST match them via errors.Is. The structured types
// (DimensionError, PivotError, ArgumentError) carry the offending shapes,
// pivot index or argument value and unwrap to their sentinel, so
// errors.As gives access to the fields without losing errors.Is.
// No algorithm panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
	"strconv"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with an operation tag
// ("Mul: ...", "Inverse: ...") through matrixErrorf; the sentinel survives.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> non-square -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or vectors
	// of different length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during
	// Gauss-Jordan inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidArgument covers scalar arguments outside their domain:
	// p < 1 for Norm, upper <= lower for ScaleRange, division by zero,
	// width inference on an empty matrix, a nil generator.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Shape is a (rows, cols) pair used in error reports.
// Vectors are reported as n×1 columns.
type Shape struct {
	Rows, Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// shapeOf reads the shape of a Matrix.
func shapeOf(m Matrix) Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// vecShape reports a vector of length n as an n×1 column.
func vecShape(n int) Shape { return Shape{Rows: n, Cols: 1} }

// DimensionError reports two operand shapes that cannot be combined.
// Err is ErrDimensionMismatch, or ErrNonSquare when a single operand
// had to be square (Right then repeats Left transposed).
type DimensionError struct {
	Op    string // check or operation that detected the mismatch
	Left  Shape  // first operand (or the receiver)
	Right Shape  // second operand
	Err   error  // sentinel: ErrDimensionMismatch or ErrNonSquare
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s vs %s: %v", e.Op, e.Left, e.Right, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *DimensionError) Unwrap() error { return e.Err }

// PivotError reports the elimination step whose pivot was zero.
type PivotError struct {
	Op    string  // operation tag (Inverse)
	Index int     // row/column of the pivot
	Value float64 // pivot value observed (0, or within tolerance)
}

// Error implements error.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%s: pivot %d is %g: %v", e.Op, e.Index, e.Value, ErrSingular)
}

// Unwrap exposes ErrSingular for errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingular }

// ArgumentError reports a scalar argument outside its domain.
type ArgumentError struct {
	Op    string  // operation tag
	Name  string  // argument name as documented on the operation
	Value float64 // offending value
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %v", e.Op, e.Name, e.Value, ErrInvalidArgument)
}

// Unwrap exposes ErrInvalidArgument for errors.Is.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// mismatch builds a DimensionError for two shapes.
func mismatch(op string, left, right Shape) error {
	return &DimensionError{Op: op, Left: left, Right: right, Err: ErrDimensionMismatch}
}

// badArg builds an ArgumentError.
func badArg(op, name string, v float64) error {
	return &ArgumentError{Op: op, Name: name, Value: v}
}
