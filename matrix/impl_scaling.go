// SPDX-License-Identifier: MIT
// Package matrix - column-wise min-max scaling.
//
// Each column c is mapped from [min_c, max_c] onto [lower, upper]:
//
//	x == min_c → lower
//	x == max_c → upper
//	otherwise  → lower + (upper-lower)*(x-min_c)/(max_c-min_c)
//
// Constant columns (min_c == max_c) are left untouched. Exact endpoints are
// assigned, not interpolated, so rounding can never push them outside the
// target range.

package matrix

import "math"

const (
	opScaleRange   = "ScaleRange"
	opMinMaxScale  = "MinMaxScale"
	opColumnBounds = "ColumnBounds"
)

// ColumnBounds returns the per-column minimum and maximum of m.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument when m has no rows (bounds undefined).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnBounds(m Matrix) (mins, maxs []float64, err error) {
	d, err := asDense(m, opColumnBounds)
	if err != nil {
		return nil, nil, err
	}
	if d.r == 0 {
		return nil, nil, matrixErrorf(opColumnBounds, badArg(opColumnBounds, "rows", 0))
	}
	mins, maxs = columnBounds(d)

	return mins, maxs, nil
}

// columnBounds accumulates running min/max per column. The accumulators
// start at +Inf / -Inf so the first row always replaces them.
func columnBounds(d *Dense) (mins, maxs []float64) {
	mins = make([]float64, d.c)
	maxs = make([]float64, d.c)
	for j := range mins {
		mins[j] = math.Inf(1)
		maxs[j] = math.Inf(-1)
	}
	var row []float64
	for i := 0; i < d.r; i++ {
		row = d.rowView(i)
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs
}

// ScaleRange min-max normalises every column of m into [lower, upper] in place.
//
// Implementation:
//   - Stage 1: validate bounds (both finite, upper > lower).
//   - Stage 2: one pass for per-column bounds, one pass to rewrite values.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidArgument (*ArgumentError) when upper <= lower or either bound is not finite;
//     m is not modified.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func (m *Dense) ScaleRange(lower, upper float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScaleRange, err)
	}
	if math.IsNaN(lower) || math.IsInf(lower, 0) {
		return matrixErrorf(opScaleRange, badArg(opScaleRange, "lower", lower))
	}
	if math.IsNaN(upper) || math.IsInf(upper, 0) || upper <= lower {
		return matrixErrorf(opScaleRange, badArg(opScaleRange, "upper", upper))
	}
	if m.r == 0 {
		return nil
	}

	mins, maxs := columnBounds(m)
	span := upper - lower
	var row []float64
	for i := 0; i < m.r; i++ {
		row = m.rowView(i)
		for j, x := range row {
			lo, hi := mins[j], maxs[j]
			switch {
			case lo == hi:
				// constant column
			case x == lo:
				row[j] = lower
			case x == hi:
				row[j] = upper
			default:
				row[j] = lower + span*(x-lo)/(hi-lo)
			}
		}
	}

	return nil
}

// MinMaxScale returns a scaled copy of m; m itself is untouched.
// Errors: as ScaleRange.
func MinMaxScale(m Matrix, lower, upper float64) (*Dense, error) {
	src, err := asDense(m, opMinMaxScale)
	if err != nil {
		return nil, err
	}
	out := src.clone()
	if err = out.ScaleRange(lower, upper); err != nil {
		return nil, matrixErrorf(opMinMaxScale, err)
	}

	return out, nil
}
