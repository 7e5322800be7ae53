// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place elementwise and scalar operators on *Dense (+=, -=, *=, /=).
//   - Tolerance-based comparison of two matrices (AllClose, Equal).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j through the interface).
//   - Every check runs before the first write: a failing call leaves the
//     receiver untouched.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - Use the fresh-result Add/Sub (impl_linear_algebra.go) when operands must stay intact.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for in-place operators and comparisons.
const (
	opAddInPlace       = "AddInPlace"
	opSubInPlace       = "SubInPlace"
	opMulScalarInPlace = "MulScalarInPlace"
	opDivScalarInPlace = "DivScalarInPlace"
	opAllClose         = "AllClose"
	opEqual            = "Equal"
)

// addSubInPlace performs m[i,j] += sign*b[i,j].
// Validation (nil, shape) happens before any write.
func (m *Dense) addSubInPlace(b Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}

	if db, ok := b.(*Dense); ok {
		if sign > 0 {
			floats.Add(m.data, db.data)
		} else {
			floats.Sub(m.data, db.data)
		}

		return nil
	}

	// Fallback: read the whole operand first so an At failure cannot leave m half-updated.
	buf := make([]float64, len(m.data))
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = b.At(i, j); err != nil {
				return atErr(opTag, i, j, err)
			}
			buf[i*m.c+j] = v
		}
	}
	floats.AddScaled(m.data, sign, buf)

	return nil
}

// AddInPlace performs m += b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is left unchanged).
// Complexity: O(r*c).
func (m *Dense) AddInPlace(b Matrix) error { return m.addSubInPlace(b, +1, opAddInPlace) }

// SubInPlace performs m -= b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is left unchanged).
// Complexity: O(r*c).
func (m *Dense) SubInPlace(b Matrix) error { return m.addSubInPlace(b, -1, opSubInPlace) }

// MulScalarInPlace multiplies every element by alpha.
// Errors: ErrNilMatrix; ErrNaNInf when alpha is NaN or ±Inf.
func (m *Dense) MulScalarInPlace(alpha float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMulScalarInPlace, err)
	}
	if err := ValidateFinite(alpha); err != nil {
		return matrixErrorf(opMulScalarInPlace, err)
	}
	floats.Scale(alpha, m.data)

	return nil
}

// DivScalarInPlace divides every element by alpha.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNaNInf when alpha is NaN or ±Inf.
//   - ErrInvalidArgument (*ArgumentError) when alpha == 0; the IEEE result
//     (±Inf, NaN) would break the finite-only grid, so nothing is written.
func (m *Dense) DivScalarInPlace(alpha float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opDivScalarInPlace, err)
	}
	if err := ValidateFinite(alpha); err != nil {
		return matrixErrorf(opDivScalarInPlace, err)
	}
	if alpha == 0 {
		return matrixErrorf(opDivScalarInPlace, badArg(opDivScalarInPlace, "alpha", alpha))
	}
	// Divide rather than scale by 1/alpha: x/alpha is correctly rounded, x*(1/alpha) is not.
	for k, v := range m.data {
		m.data[k] = v / alpha
	}

	return nil
}

// AllClose reports whether |a[i,j]-b[i,j]| ≤ atol + rtol*|b[i,j]| holds for every element.
//
// Inputs:
//   - rtol, atol: tolerances; negative values are taken by absolute value.
//
// Errors:
//   - ErrNaNInf for a NaN/Inf tolerance; ErrNilMatrix; ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1). Stops at the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within := func(av, bv float64) bool {
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var (
		av, bv float64
		err    error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErr(opAllClose, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErr(opAllClose, i, j, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and every element
// differs by at most the configured epsilon (WithEpsilon, DefaultEpsilon).
// A shape difference is a plain false, not an error.
//
// Errors: ErrNilMatrix.
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}
