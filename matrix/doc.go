// Package matrix offers dense float64 matrices and the vector operations
// they are built on.
//
// The matrix package provides:
//
//   - Vector operations over []float64: inner/outer product, squared and
//     Euclidean distance, p-norms, sorted-set compaction, and a Vector type
//     with in-place scalar and elementwise arithmetic.
//   - Dense, a row-major grid that is rectangular by construction, with
//     safe accessors (At/Set/Row never panic) and an optional finite-only
//     numeric policy.
//   - Elementwise arithmetic (fresh and in-place), matrix and matrix-vector
//     products, the transposed-operand product A·Bᵀ, Xᵀ·X and transpose.
//   - Column composition (ZipColumns, AppendColumn, PrependColumn),
//     column-wise min-max scaling, per-row transforms, random
//     initialisation through a RowGenerator, and Gauss-Jordan inversion.
//   - A copy bridge to gonum.org/v1/gonum/mat.
//
// Every failure is a returned error that matches one of the package
// sentinels with errors.Is (ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ErrInvalidArgument, ...). Structured details are available
// through errors.As on *DimensionError, *PivotError and *ArgumentError.
//
// See the examples in this package for usage patterns.
package matrix
