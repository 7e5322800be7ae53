// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"match", dense(2, 3), dense(2, 3), nil},
		{"rows differ", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"cols differ", dense(2, 3), dense(2, 2), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 3, 3)))

	err := matrix.ValidateSquareNonNil(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.NotErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
}

func TestValidateMulCompatibility(t *testing.T) {
	t.Parallel()
	a, b := MustDense(t, 2, 3), MustDense(t, 3, 4)
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	assert.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulTransposedCompatible(a, MustDense(t, 5, 3)))
	err := matrix.ValidateMulTransposedCompatible(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	var de *matrix.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "ValidateMulTransposedCompatible: 2x3 vs 3x4: matrix: dimension mismatch", de.Error())
}

func TestValidateVectors(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameLen([]float64{1}, []float64{2}))
	assert.ErrorIs(t, matrix.ValidateSameLen(nil, []float64{2}), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateFinite(1))
	assert.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
}

func TestStructuredErrorsMessages(t *testing.T) {
	t.Parallel()
	pe := &matrix.PivotError{Op: "Inverse", Index: 2, Value: 0}
	assert.Equal(t, "Inverse: pivot 2 is 0: matrix: singular matrix", pe.Error())
	assert.ErrorIs(t, pe, matrix.ErrSingular)

	ae := &matrix.ArgumentError{Op: "Norm", Name: "p", Value: 0.5}
	assert.Equal(t, "Norm: p=0.5: matrix: invalid argument", ae.Error())
	assert.ErrorIs(t, ae, matrix.ErrInvalidArgument)
}

func TestPrivateHelpers(t *testing.T) {
	t.Parallel()
	assert.True(t, matrix.ExportedIsZeroPivot(0, 0))
	assert.False(t, matrix.ExportedIsZeroPivot(1e-300, 0))
	assert.True(t, matrix.ExportedIsZeroPivot(-1e-10, 1e-9))

	m := MustFromRows(t, [][]float64{{0, 1}, {-5, 2}, {3, 3}})
	assert.Equal(t, 1, matrix.ExportedPivotRow(m, 0))

	mins, maxs := matrix.ExportedColumnBounds(m)
	assert.Equal(t, []float64{-5, 1}, mins)
	assert.Equal(t, []float64{3, 3}, maxs)

	empty, err := matrix.NewFromColumn(2, nil)
	require.NoError(t, err)
	mins, maxs = matrix.ExportedColumnBounds(empty)
	assert.True(t, math.IsInf(mins[0], 1), "seed survives when no row exists")
	assert.True(t, math.IsInf(maxs[1], -1))
}
