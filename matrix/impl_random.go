// SPDX-License-Identifier: MIT
// Package matrix - random initialisation through a RowGenerator.
//
// The distribution belongs to the generator (see package rowgen); the
// matrix only asks for rows of its column count and checks the length of
// what comes back. Generation happens into a scratch buffer first, so a
// bad row leaves the receiver untouched.

package matrix

import "reflect"

const (
	opRandomInit           = "RandomInit"
	opRandomInitZeroBiased = "RandomInitZeroBiased"
)

// RandomInit fills every row of m with g.Row(m.Cols()).
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument for a nil generator.
//   - ErrDimensionMismatch when a generated row has the wrong length.
//   - ErrNaNInf when a generated value is not finite (policy on).
func (m *Dense) RandomInit(g RowGenerator) error {
	if isNilGenerator(g) {
		return m.fillRows(nil, opRandomInit)
	}

	return m.fillRows(g.Row, opRandomInit)
}

// RandomInitZeroBiased fills every row of m with g.ZeroBiasedRow(m.Cols()).
// Errors: as RandomInit.
func (m *Dense) RandomInitZeroBiased(g RowGenerator) error {
	if isNilGenerator(g) {
		return m.fillRows(nil, opRandomInitZeroBiased)
	}

	return m.fillRows(g.ZeroBiasedRow, opRandomInitZeroBiased)
}

// isNilGenerator reports a nil interface or a typed nil pointer, map, func,
// chan or slice behind it.
func isNilGenerator(g RowGenerator) bool {
	if g == nil {
		return true
	}
	switch v := reflect.ValueOf(g); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// fillRows requests one row per matrix row and commits all of them at once.
func (m *Dense) fillRows(gen func(dim int) []float64, opTag string) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTag, err)
	}
	if gen == nil {
		return matrixErrorf(opTag, badArg(opTag, "generator", 0))
	}

	scratch := make([]float64, len(m.data))
	var row []float64
	for i := 0; i < m.r; i++ {
		row = gen(m.c)
		if err := ValidateVecLen(row, m.c); err != nil {
			return matrixErrorf(opTag, err)
		}
		copy(scratch[i*m.c:(i+1)*m.c], row)
	}
	if m.validateNaNInf {
		for _, v := range scratch {
			if err := ValidateFinite(v); err != nil {
				return matrixErrorf(opTag, err)
			}
		}
	}
	m.data = scratch

	return nil
}
