// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/length checks here.
//  - Return structured errors (DimensionError) that unwrap to plain sentinels
//    so call sites can wrap uniformly with an operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// AI-Hints:
//  - Use ValidateVecLen / ValidateSameLen for any vector-taking operation
//    instead of ad hoc length code.
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// Validator tags used as DimensionError.Op and in wrapped messages.
const (
	tagNotNil           = "ValidateNotNil"
	tagSameShape        = "ValidateSameShape"
	tagSquare           = "ValidateSquare"
	tagVecLen           = "ValidateVecLen"
	tagSameLen          = "ValidateSameLen"
	tagMulCompatible    = "ValidateMulCompatible"
	tagMulTCompatible   = "ValidateMulTransposedCompatible"
	tagBinarySameShape  = "ValidateBinarySameShape"
	tagSquareNonNil     = "ValidateSquareNonNil"
	tagFinite           = "ValidateFinite"
	tagRectangularInput = "ValidateRectangular"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or *DimensionError (ErrDimensionMismatch).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return mismatch(tagSameShape, shapeOf(a), shapeOf(b))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: *DimensionError unwrapping to ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		s := shapeOf(m)
		return &DimensionError{Op: tagSquare, Left: s, Right: Shape{Rows: s.Cols, Cols: s.Rows}, Err: ErrNonSquare}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is treated as length 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return mismatch(tagVecLen, vecShape(len(x)), vecShape(n))
	}

	return nil
}

// ValidateSameLen ensures two vectors have identical length.
// Time: O(1). Space: O(1).
func ValidateSameLen(a, b []float64) error {
	if len(a) != len(b) {
		return mismatch(tagSameLen, vecShape(len(a)), vecShape(len(b)))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tagBinarySameShape, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tagBinarySameShape, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf(tagBinarySameShape, err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagSquareNonNil, err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tagSquareNonNil, err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for general matrix multiplication compatibility.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tagMulCompatible, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tagMulCompatible, err)
	}
	if a.Cols() != b.Rows() {
		return mismatch(tagMulCompatible, shapeOf(a), shapeOf(b))
	}

	return nil
}

// ValidateMulTransposedCompatible – Ensures a.Cols == b.Cols, inputs non-nil.
// This is the contract of a·bᵀ: both operands share the inner (column) width.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulTransposedCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tagMulTCompatible, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tagMulTCompatible, err)
	}
	if a.Cols() != b.Cols() {
		return mismatch(tagMulTCompatible, shapeOf(a), shapeOf(b))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf scalars.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf(tagFinite, ErrNaNInf)
	}

	return nil
}

// ValidateRectangular ensures every row of a [][]float64 has the width of
// the first one. Returns the shared width.
// Errors: ErrInvalidDimensions for no rows or zero width; ErrDimensionMismatch for jagged input.
// Complexity: O(r).
func ValidateRectangular(rows [][]float64) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, validatorErrorf(tagRectangularInput, ErrInvalidDimensions)
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return 0, mismatch(tagRectangularInput, Shape{Rows: 1, Cols: width}, Shape{Rows: 1, Cols: len(rows[i])})
		}
	}

	return width, nil
}
