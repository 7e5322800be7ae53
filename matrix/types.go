// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// This file contains ONLY the public interfaces and function types
// (Matrix, RowFunc, RowGenerator). Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the canonical implementation; kernels take a fast path on it and
// fall back to At/Set for any other implementation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// RowFunc maps one row to a new row, possibly of a different width.
// It receives a copy of the row and must not retain shared state between calls.
type RowFunc func(row []float64) []float64

// RowGenerator produces fresh rows of a requested dimension for random
// initialisation. The distribution is owned by the implementation
// (see package rowgen); callers only rely on the returned length.
type RowGenerator interface {
	// Row returns a general-purpose random row of length dim.
	Row(dim int) []float64
	// ZeroBiasedRow returns a random row of length dim skewed toward zero.
	ZeroBiasedRow(dim int) []float64
}
