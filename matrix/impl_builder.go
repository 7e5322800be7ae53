// SPDX-License-Identifier: MIT
// Package matrix - constructors and column composition for *Dense.
//
// Purpose:
//   - Build common grids (square, diagonal, identity, outer product,
//     column-broadcast, copy of [][]float64) with validated shapes.
//   - Compose vectors and matrices column-wise (ZipColumns, AppendColumn,
//     PrependColumn) into freshly allocated results.
//
// Contract:
//   - Operands are never mutated; every builder returns a new buffer.
//   - Row counts must agree for column composition; otherwise
//     ErrDimensionMismatch with both shapes in a *DimensionError.
//
// Complexity:
//   - All builders are O(output size) time and space.

package matrix

const (
	opNewSquare     = "NewSquare"
	opNewFromColumn = "NewFromColumn"
	opNewFromRows   = "NewFromRows"
	opDiag          = "Diag"
	opZipColumns    = "ZipColumns"
	opAppendColumn  = "AppendColumn"
	opPrependColumn = "PrependColumn"
)

// identityDiag is the diagonal value of NewIdentity.
const identityDiag = 1.0

// NewSquare returns an n×n zero matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewSquare(n int, opts ...Option) (*Dense, error) {
	d, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opNewSquare, err)
	}

	return d, nil
}

// NewOuter builds the outer product of v1 and v2 (see OuterProduct).
func NewOuter(v1, v2 []float64) (*Dense, error) { return OuterProduct(v1, v2) }

// NewFromColumn returns a len(values)×cols matrix whose row i is filled
// with values[i]. Empty values yield a legal 0×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when cols <= 0.
//   - ErrNaNInf when a value is NaN/±Inf (default numeric policy).
func NewFromColumn(cols int, values []float64) (*Dense, error) {
	if cols <= 0 {
		return nil, matrixErrorf(opNewFromColumn, ErrInvalidDimensions)
	}
	out, err := newDenseZeroOK(len(values), cols)
	if err != nil {
		return nil, matrixErrorf(opNewFromColumn, err)
	}
	var row []float64
	for i, v := range values {
		if err = ValidateFinite(v); err != nil {
			return nil, matrixErrorf(opNewFromColumn, err)
		}
		row = out.rowView(i)
		for j := range row {
			row[j] = v
		}
	}

	return out, nil
}

// Diag returns an n×n zero matrix with value on the main diagonal.
// Errors: ErrInvalidDimensions when n <= 0; ErrNaNInf for a non-finite value.
func Diag(n int, value float64) (*Dense, error) {
	if err := ValidateFinite(value); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	d, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = value
	}

	return d, nil
}

// NewIdentity creates an n×n identity matrix (Diag(n, 1)).
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) { return Diag(n, identityDiag) }

// NewFromRows copies a rectangular [][]float64 into a new Dense.
//
// Implementation:
//   - Stage 1: ValidateRectangular (non-empty, equal widths).
//   - Stage 2: allocate with opts, copy row by row, enforce the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (no rows, zero width), ErrDimensionMismatch (jagged),
//     ErrNaNInf (non-finite value while the policy is on).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	width, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	d, err := NewDense(len(rows), width, opts...)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	for i, src := range rows {
		copy(d.rowView(i), src)
	}
	if err = d.checkFinite(opNewFromRows); err != nil {
		return nil, err
	}

	return d, nil
}

// ZipColumns builds the n×2 matrix whose row i is [v1[i], v2[i]].
// Errors: ErrDimensionMismatch when len(v1) != len(v2).
func ZipColumns(v1, v2 []float64) (*Dense, error) {
	if err := ValidateSameLen(v1, v2); err != nil {
		return nil, matrixErrorf(opZipColumns, err)
	}
	out, err := newDenseZeroOK(len(v1), 2)
	if err != nil {
		return nil, matrixErrorf(opZipColumns, err)
	}
	for i := range v1 {
		out.data[2*i] = v1[i]
		out.data[2*i+1] = v2[i]
	}

	return out, nil
}

// AppendColumn returns m with v attached as a new last column: row i
// becomes m[i] followed by v[i]. m is not modified.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when len(v) != m.Rows().
func AppendColumn(m Matrix, v []float64) (*Dense, error) {
	return withExtraColumn(m, v, false, opAppendColumn)
}

// PrependColumn returns m with v attached as a new first column: row i
// becomes v[i] followed by m[i]. m is not modified.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when len(v) != m.Rows().
func PrependColumn(v []float64, m Matrix) (*Dense, error) {
	return withExtraColumn(m, v, true, opPrependColumn)
}

// withExtraColumn copies m into a (r × c+1) grid, placing v in column 0
// (front) or column c (back).
func withExtraColumn(m Matrix, v []float64, front bool, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if len(v) != rows {
		return nil, matrixErrorf(opTag, mismatch(opTag, shapeOf(m), vecShape(len(v))))
	}
	out, err := newDenseZeroOK(rows, cols+1)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if d, ok := m.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
	}

	// Source columns start at 1 when v goes first.
	shift, vCol := 0, cols
	if front {
		shift, vCol = 1, 0
	}
	stride := cols + 1
	var (
		i, j int
		av   float64
	)
	for i = 0; i < rows; i++ {
		out.data[i*stride+vCol] = v[i]
		if d, ok := m.(*Dense); ok {
			copy(out.data[i*stride+shift:i*stride+shift+cols], d.rowView(i))
			continue
		}
		for j = 0; j < cols; j++ {
			if av, err = m.At(i, j); err != nil {
				return nil, atErr(opTag, i, j, err)
			}
			out.data[i*stride+shift+j] = av
		}
	}

	return out, nil
}
