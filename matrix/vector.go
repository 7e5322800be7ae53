// SPDX-License-Identifier: MIT
// Package matrix - vector operations over plain float64 slices.
//
// Purpose:
//   - Inner/outer products, squared and Euclidean distances, p-norms and
//     sorted-set compaction for one-dimensional data.
//   - Vector adds in-place scalar and elementwise arithmetic with a
//     canonical text form.
//
// Determinism & Performance:
//   - Reductions delegate to gonum/floats, which walks slices in index order.
//   - Every binary operation validates lengths before touching memory: a
//     mismatch is ErrDimensionMismatch, never a silent truncation.
//
// AI-Hints:
//   - Vector and []float64 are interchangeable at call sites; convert with Vector(s).
//   - MatVec (impl_linear_algebra.go) reuses InnerProduct per row.

package matrix

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for vector kernels.
const (
	opInnerProduct  = "InnerProduct"
	opOuterProduct  = "OuterProduct"
	opSquareDist    = "SquareDist"
	opEuclidean     = "EuclideanDist"
	opNorm          = "Norm"
	opVecAddInPlace = "Vector.AddInPlace"
	opVecSubInPlace = "Vector.SubInPlace"
)

// minNormOrder is the smallest p for which (Σ|x|^p)^(1/p) is a norm.
const minNormOrder = 1.0

// euclideanOrder is the default p of Norm2 / EuclideanDist.
const euclideanOrder = 2.0

// Vector is an ordered, fixed-length sequence of float64.
type Vector []float64

// InnerProduct returns Σ v1[i]*v2[i].
//
// Errors:
//   - ErrDimensionMismatch when len(v1) != len(v2).
//
// Complexity:
//   - Time O(n), Space O(1).
func InnerProduct(v1, v2 []float64) (float64, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return 0, matrixErrorf(opInnerProduct, err)
	}

	return floats.Dot(v1, v2), nil
}

// OuterProduct returns the |v1|×|v2| matrix with entry (i,j) = v1[i]*v2[j].
// Both vectors must have the same length (the historical contract of this
// operation); empty inputs yield a legal 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when len(v1) != len(v2).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func OuterProduct(v1, v2 []float64) (*Dense, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return nil, matrixErrorf(opOuterProduct, err)
	}
	out, err := newDenseZeroOK(len(v1), len(v2))
	if err != nil {
		return nil, matrixErrorf(opOuterProduct, err)
	}
	var row []float64
	for i, a := range v1 {
		row = out.rowView(i)
		for j, b := range v2 {
			row[j] = a * b
		}
	}

	return out, nil
}

// SquareDist returns Σ (v1[i]-v2[i])².
//
// Errors:
//   - ErrDimensionMismatch on length mismatch.
func SquareDist(v1, v2 []float64) (float64, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return 0, matrixErrorf(opSquareDist, err)
	}
	diff := floats.SubTo(make([]float64, len(v1)), v1, v2)

	return floats.Dot(diff, diff), nil
}

// EuclideanDist returns √SquareDist(v1, v2).
func EuclideanDist(v1, v2 []float64) (float64, error) {
	sq, err := SquareDist(v1, v2)
	if err != nil {
		return 0, matrixErrorf(opEuclidean, err)
	}

	return math.Sqrt(sq), nil
}

// Norm returns the p-norm (Σ|x|^p)^(1/p) of v.
// p = +Inf yields max|x|.
//
// Errors:
//   - ErrInvalidArgument (*ArgumentError) when p < 1 or p is NaN.
//
// Complexity:
//   - Time O(n), Space O(1).
func Norm(v []float64, p float64) (float64, error) {
	if math.IsNaN(p) || p < minNormOrder {
		return 0, matrixErrorf(opNorm, badArg(opNorm, "p", p))
	}

	return floats.Norm(v, p), nil
}

// Norm2 is the Euclidean length of v (Norm with p = 2).
func Norm2(v []float64) float64 {
	return floats.Norm(v, euclideanOrder)
}

// MakeVectorSet sorts v ascending in place and removes consecutive
// duplicates, returning the shortened slice (strictly increasing).
// Applying it twice is a no-op.
//
// Complexity:
//   - Time O(n log n), Space O(1) extra.
func MakeVectorSet(v []float64) []float64 {
	slices.Sort(v)

	return slices.Compact(v)
}

// MulScalar multiplies every element by s in place and returns v.
func (v Vector) MulScalar(s float64) Vector {
	floats.Scale(s, v)

	return v
}

// DivScalar divides every element by s in place and returns v.
// Elements equal to zero are left untouched so that 0/(-s) never turns
// into a negative zero.
func (v Vector) DivScalar(s float64) Vector {
	for i, x := range v {
		if x != 0 {
			v[i] = x / s
		}
	}

	return v
}

// AddInPlace performs v[i] += w[i] and returns v.
// On length mismatch v is left unchanged.
func (v Vector) AddInPlace(w []float64) (Vector, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return v, matrixErrorf(opVecAddInPlace, err)
	}
	floats.Add(v, w)

	return v, nil
}

// SubInPlace performs v[i] -= w[i] and returns v.
// On length mismatch v is left unchanged.
func (v Vector) SubInPlace(w []float64) (Vector, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return v, matrixErrorf(opVecSubInPlace, err)
	}
	floats.Sub(v, w)

	return v, nil
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// String renders elements separated by a single space (no brackets).
func (v Vector) String() string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(x, _fmtVerb, -1, _fmtBitSize))
	}

	return b.String()
}
