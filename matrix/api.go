// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

const (
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
	opGram         = "Gram"
	opScaled       = "Scaled"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// CloneMatrix returns a deep copy of m, or nil when m is nil.
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike allocates a zero matrix with the same shape as m.
// Errors: ErrNilMatrix, ErrInvalidDimensions (zero-sized m).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return d, nil
}

// IdentityLike returns the identity of the same order as square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	d, err := NewIdentity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return d, nil
}

// ---------- Algebra Facades ----------

// Sum is an alias of Add(a, b).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias of Sub(a, b).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias of Mul(a, b).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias of Transpose(m).
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// MatVecMul is an alias of MatVec(m, x).
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// InverseOf is an alias of Inverse(m, opts...).
func InverseOf(m Matrix, opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// Gram returns m·mᵀ (row-by-row inner products) through MulTransposed.
// Complexity: O(r²*c).
func Gram(m Matrix) (*Dense, error) {
	g, err := MulTransposed(m, m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return g, nil
}

// Scaled returns alpha*m as a new matrix; m is untouched.
// Errors: ErrNilMatrix, ErrNaNInf (non-finite alpha).
func Scaled(m Matrix, alpha float64) (*Dense, error) {
	src, err := asDense(m, opScaled)
	if err != nil {
		return nil, err
	}
	out := src.clone()
	if err = out.MulScalarInPlace(alpha); err != nil {
		return nil, matrixErrorf(opScaled, err)
	}

	return out, nil
}
