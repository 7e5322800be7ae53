// SPDX-License-Identifier: MIT
// Package matrix - Gauss-Jordan inversion.
//
// Algorithm (n×n):
//   - Start from a working copy W of A and an identity accumulator I.
//   - For each pivot i: for every row j != i, ratio = W[j][i]/W[i][i] and
//     row_j -= ratio*row_i, applied to both W and I.
//   - Finally divide each row of W and I by its pivot W[i][i]; I is A⁻¹.
//
// A pivot that is zero when it is used makes the matrix singular; the
// error carries the step index. Without pivoting the elimination order is
// fixed (0, 1, ..., n-1) and results are reproducible bit for bit.
// WithPartialPivoting swaps in the row with the largest |W[k][i]| (k ≥ i)
// first, which also inverts matrices like [[0 1] [1 0]].

package matrix

import "math"

const (
	opInverse = "Inverse"

	// ZeroPivot is the pivot value that always signals singularity.
	ZeroPivot = 0.0
)

// Inverse returns A⁻¹ computed by Gauss-Jordan elimination.
//
// Inputs:
//   - m: square matrix; not modified.
//   - opts: WithPartialPivoting / WithoutPivoting, WithPivotTolerance.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNonSquare (*DimensionError) when Rows != Cols.
//   - ErrSingular (*PivotError with the step index) on a zero pivot.
//   - ErrNaNInf when the result overflowed while the numeric policy is on.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy and the accumulator.
//
// AI-Hints:
//   - Solving A·x = b? Multiply by the inverse only for small n; it is the
//     clearest path here, not the cheapest one.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := asDense(m, opInverse)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	n := src.r

	w := src.clone()
	inv, err := newDenseLike(src, n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = 1
	}

	var (
		i, j, k        int
		pivot, ratio   float64
		rowI, rowJ     []float64
		invI, invJ     []float64
		singularAtStep = func(step int, v float64) error {
			return matrixErrorf(opInverse, &PivotError{Op: opInverse, Index: step, Value: v})
		}
	)

	// Stage 1: eliminate column i from every other row.
	for i = 0; i < n; i++ {
		if o.partialPivoting {
			swapRows(w, inv, i, pivotRow(w, i))
		}
		rowI, invI = w.rowView(i), inv.rowView(i)
		pivot = rowI[i]
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if isZeroPivot(pivot, o.pivotTol) {
				return nil, singularAtStep(i, pivot)
			}
			rowJ, invJ = w.rowView(j), inv.rowView(j)
			ratio = rowJ[i] / pivot
			for k = 0; k < n; k++ {
				rowJ[k] -= ratio * rowI[k]
				invJ[k] -= ratio * invI[k]
			}
		}
	}

	// Stage 2: normalise each row by its pivot.
	for i = 0; i < n; i++ {
		rowI, invI = w.rowView(i), inv.rowView(i)
		pivot = rowI[i]
		if isZeroPivot(pivot, o.pivotTol) {
			return nil, singularAtStep(i, pivot)
		}
		for k = 0; k < n; k++ {
			rowI[k] /= pivot
			invI[k] /= pivot
		}
	}

	if err = inv.checkFinite(opInverse); err != nil {
		return nil, err
	}

	return inv, nil
}

// Invert is the method form of Inverse(m, opts...).
func (m *Dense) Invert(opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// isZeroPivot reports |p| ≤ tol (tol = 0 means exactly zero).
func isZeroPivot(p, tol float64) bool {
	return p == ZeroPivot || math.Abs(p) <= tol
}

// pivotRow returns the row k ≥ i with the largest |w[k][i]|; ties keep the lowest k.
func pivotRow(w *Dense, i int) int {
	best, bestAbs := i, math.Abs(w.data[i*w.c+i])
	for k := i + 1; k < w.r; k++ {
		if a := math.Abs(w.data[k*w.c+i]); a > bestAbs {
			best, bestAbs = k, a
		}
	}

	return best
}

// swapRows exchanges rows a and b in both w and inv.
func swapRows(w, inv *Dense, a, b int) {
	if a == b {
		return
	}
	ra, rb := w.rowView(a), w.rowView(b)
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}
	ia, ib := inv.rowView(a), inv.rowView(b)
	for k := range ia {
		ia[k], ib[k] = ib[k], ia[k]
	}
}
