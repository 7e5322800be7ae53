// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

func TestNewSquareAndDiag(t *testing.T) {
	sq, err := matrix.NewSquare(3)
	require.NoError(t, err)
	assert.True(t, sq.IsSquare())
	assert.Equal(t, 3, sq.Rows())

	_, err = matrix.NewSquare(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	d, err := matrix.Diag(3, 2.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2.5, 0, 0}, {0, 2.5, 0}, {0, 0, 2.5}}, d)

	_, err = matrix.Diag(2, math.NaN())
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, id)
}

func TestNewOuter(t *testing.T) {
	m, err := matrix.NewOuter([]float64{1, 2, 3}, []float64{1, 0, -1})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, -1}, {2, 0, -2}, {3, 0, -3}}, m)
}

func TestNewFromColumn(t *testing.T) {
	m, err := matrix.NewFromColumn(3, []float64{1, 2})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 1, 1}, {2, 2, 2}}, m)

	empty, err := matrix.NewFromColumn(4, nil)
	require.NoError(t, err)
	r, c := empty.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 4, c)

	_, err = matrix.NewFromColumn(0, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromColumn(2, []float64{math.Inf(1)})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 42
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "input must be copied")

	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	loose, err := matrix.NewFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, loose, 0, 0)))
}

func TestZipColumns(t *testing.T) {
	m, err := matrix.ZipColumns([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m)

	_, err = matrix.ZipColumns([]float64{1, 2}, []float64{4})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAppendPrependColumn(t *testing.T) {
	base := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, tc := range []struct {
		name string
		m    matrix.Matrix
	}{
		{"dense", base},
		{"fallback", hide{base}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			app, err := matrix.AppendColumn(tc.m, []float64{9, 8})
			require.NoError(t, err)
			CompareExact(t, [][]float64{{1, 2, 9}, {3, 4, 8}}, app)

			pre, err := matrix.PrependColumn([]float64{9, 8}, tc.m)
			require.NoError(t, err)
			CompareExact(t, [][]float64{{9, 1, 2}, {8, 3, 4}}, pre)
		})
	}
	// Operand untouched.
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, base)

	_, err := matrix.AppendColumn(base, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	var de *matrix.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, de.Left)

	_, err = matrix.PrependColumn([]float64{1, 2, 3}, base)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AppendColumn(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFacades(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, z)

	id, err := matrix.IdentityLike(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, id)
	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	assert.Nil(t, matrix.CloneMatrix(nil))
	CompareExact(t, m.RawRows(), matrix.CloneMatrix(m))

	g, err := matrix.Gram(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 11}, {11, 25}}, g)

	zeros, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, zeros)
	_, err = matrix.NewZeros(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	d, err := matrix.Diff(m, id)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 2}, {3, 3}}, d)

	y, err := matrix.MatVecMul(m, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)
	_, err = matrix.MatVecMul(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s, err := matrix.Scaled(hide{m}, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 4}, {6, 8}}, s)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
}
