// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition and subtraction, matrix multiplication,
// the transposed-operand product, Xᵀ·X, matrix-vector products and
// transpose. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a fixed-order
//     At/Set fallback for other Matrix implementations.
//   - Results are always freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opMulVec        = "MulVec"
	opMatVec        = "MatVec"
	opMulTransposed = "MulTransposed"
	opXTX           = "XTX"
	opTranspose     = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErr and setErr label fallback-path accessor failures with coordinates.
func atErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

func setErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newResultFor(a, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path: both operands are *Dense → one flat walk.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = da.data[k] + sign*db.data[k]
			}

			return res, nil
		}
	}

	// Fallback: fixed i→j order through the interface.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErr(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErr(opTag, i, j, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch ("not compatible" shapes).
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch, *DimensionError carries both shapes).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - If B is naturally stored transposed, call MulTransposed and skip the transpose pass.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newResultFor(a, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErr(opMul, i, k, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErr(opMul, k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x; y[r] is the inner
// product of row r with x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed row order; each row reduced by InnerProduct.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense rows are live slices of the flat buffer.
	if d, ok := m.(*Dense); ok {
		var err error
		for i := 0; i < rows; i++ {
			if y[i], err = InnerProduct(d.rowView(i), x); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
		}

		return y, nil
	}

	// Fallback: materialise each row through At, then reuse InnerProduct.
	row := make([]float64, cols)
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if row[j], err = m.At(i, j); err != nil {
				return nil, atErr(opMatVec, i, j, err)
			}
		}
		if y[i], err = InnerProduct(row, x); err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
	}

	return y, nil
}

// MulVec is the matrix × column-vector product returned as a rows×1 matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
func MulVec(m Matrix, x []float64) (*Dense, error) {
	y, err := MatVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	res, err := newResultFor(m, 0, 1)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	res.r, res.data = len(y), y

	return res, nil
}

// MulTransposed computes C = A · Bᵀ without materialising Bᵀ:
// C[m][n] = Σ_k A[m][k]*B[n][k].
//
// Implementation:
//   - Stage 1: validate non-nil operands and A.Cols == B.Cols.
//   - Stage 2: *Dense fast path takes one dot product of two contiguous rows per cell.
//
// Returns:
//   - *Dense of shape A.Rows × B.Rows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r_A*r_B*c), Space O(r_A*r_B). Both operands are read row-wise,
//     which is the cache-friendly direction for row-major storage.
//
// AI-Hints:
//   - Gram matrices (A·Aᵀ) and kernel evaluations between two sample sets map directly onto this primitive.
func MulTransposed(a, b Matrix) (*Dense, error) {
	if err := ValidateMulTransposedCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}
	aRows, bRows, inner := a.Rows(), b.Rows(), a.Cols()
	res, err := newResultFor(a, aRows, bRows)
	if err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}
	var m, n, k int

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA []float64
			for m = 0; m < aRows; m++ {
				rowA = da.rowView(m)
				for n = 0; n < bRows; n++ {
					res.data[m*bRows+n] = floats.Dot(rowA, db.rowView(n))
				}
			}

			return res, nil
		}
	}

	var av, bv, elem float64
	for m = 0; m < aRows; m++ {
		for n = 0; n < bRows; n++ {
			elem = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(m, k); err != nil {
					return nil, atErr(opMulTransposed, m, k, err)
				}
				if bv, err = b.At(n, k); err != nil {
					return nil, atErr(opMulTransposed, n, k, err)
				}
				elem += av * bv
			}
			res.data[m*bRows+n] = elem
		}
	}

	return res, nil
}

// XTX computes Xᵀ·X: entry (n,q) = Σ_m X[m][n]*X[m][q].
// The result is c×c and symmetric by construction: only the upper
// triangle is accumulated, then mirrored.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c²/2), Space O(c²).
func XTX(x Matrix) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opXTX, err)
	}
	rows, cols := x.Rows(), x.Cols()
	res, err := newResultFor(x, cols, cols)
	if err != nil {
		return nil, matrixErrorf(opXTX, err)
	}

	// Accumulate row by row: each sample row contributes its outer product.
	var m, n, q int
	var row []float64
	d, isDense := x.(*Dense)
	if !isDense {
		row = make([]float64, cols)
	}
	for m = 0; m < rows; m++ {
		if isDense {
			row = d.rowView(m)
		} else {
			for n = 0; n < cols; n++ {
				if row[n], err = x.At(m, n); err != nil {
					return nil, atErr(opXTX, m, n, err)
				}
			}
		}
		for n = 0; n < cols; n++ {
			if row[n] == 0 {
				continue
			}
			for q = n; q < cols; q++ {
				res.data[n*cols+q] += row[n] * row[q]
			}
		}
	}
	// Mirror the upper triangle.
	for n = 0; n < cols; n++ {
		for q = n + 1; q < cols; q++ {
			res.data[q*cols+n] = res.data[n*cols+q]
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newResultFor(m, cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErr(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul is the method form of Mul(m, b).
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// MulVec is the method form of MulVec(m, x).
func (m *Dense) MulVec(x []float64) (*Dense, error) { return MulVec(m, x) }

// MulTransposed is the method form of MulTransposed(m, other): m · otherᵀ.
func (m *Dense) MulTransposed(other Matrix) (*Dense, error) { return MulTransposed(m, other) }

// XTX is the method form of XTX(m): mᵀ · m.
func (m *Dense) XTX() (*Dense, error) { return XTX(m) }

// T returns the transpose of m.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }
