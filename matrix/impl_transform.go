// SPDX-License-Identifier: MIT
// Package matrix - per-row functional transforms.
//
// A RowFunc maps each row (passed as a copy) to a new row. The output
// width is taken from the first transformed row; every later row must
// match it. Transform returns a new matrix, TransformInPlace replaces the
// receiver's contents (and possibly its column count) only after all rows
// succeeded.

package matrix

const (
	opTransform        = "Transform"
	opTransformInPlace = "TransformInPlace"
)

// Transform applies f to every row of m and returns the resulting matrix.
//
// Behavior highlights:
//   - nil f returns a clone of m.
//   - The result keeps m's numeric policy.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidArgument when m has no rows (the output width cannot be inferred).
//   - ErrDimensionMismatch when a row's output width differs from the first row's.
//   - ErrNaNInf when f produced a non-finite value while the policy is on.
//
// Complexity:
//   - Time O(r*(c + cost(f))), Space O(r*c').
func (m *Dense) Transform(f RowFunc) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTransform, err)
	}
	if f == nil {
		return m.clone(), nil
	}
	if m.r == 0 {
		return nil, matrixErrorf(opTransform, badArg(opTransform, "rows", 0))
	}

	return m.transformRows(f, opTransform)
}

// TransformInPlace applies f to every row of m, replacing m's contents.
// nil f and a zero-row receiver are no-ops. On any error m is unchanged.
//
// Errors: as Transform (except the zero-row case).
func (m *Dense) TransformInPlace(f RowFunc) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTransformInPlace, err)
	}
	if f == nil || m.r == 0 {
		return nil
	}
	out, err := m.transformRows(f, opTransformInPlace)
	if err != nil {
		return err
	}
	m.c, m.data = out.c, out.data

	return nil
}

// transformRows builds the transformed grid. m.r must be > 0.
func (m *Dense) transformRows(f RowFunc, opTag string) (*Dense, error) {
	in := make([]float64, m.c)
	copy(in, m.rowView(0))
	first := f(in)
	width := len(first)

	out, err := newDenseLike(m, m.r, width)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	copy(out.rowView(0), first)

	var next []float64
	for i := 1; i < m.r; i++ {
		in = make([]float64, m.c)
		copy(in, m.rowView(i))
		next = f(in)
		if len(next) != width {
			return nil, matrixErrorf(opTag, mismatch(opTag, Shape{Rows: 1, Cols: width}, Shape{Rows: 1, Cols: len(next)}))
		}
		copy(out.rowView(i), next)
	}
	if err = out.checkFinite(opTag); err != nil {
		return nil, err
	}

	return out, nil
}
