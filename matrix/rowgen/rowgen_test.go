// SPDX-License-Identifier: MIT
package rowgen_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrix/rowgen"
)

func TestRowLengthAndRange(t *testing.T) {
	g := rowgen.New(rowgen.WithSeed(42), rowgen.WithBounds(-3, 5))
	for _, dim := range []int{1, 7, 64} {
		row := g.Row(dim)
		require.Len(t, row, dim)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, -3.0)
			assert.LessOrEqual(t, v, 5.0)
		}
		zb := g.ZeroBiasedRow(dim)
		require.Len(t, zb, dim)
		for _, v := range zb {
			assert.GreaterOrEqual(t, v, -3.0)
			assert.LessOrEqual(t, v, 5.0)
		}
	}
	assert.Empty(t, g.Row(0))
	assert.Empty(t, g.ZeroBiasedRow(-1))
}

func TestSeedReproducible(t *testing.T) {
	a := rowgen.New(rowgen.WithSeed(7))
	b := rowgen.New(rowgen.WithSeed(7))
	c := rowgen.New(rowgen.WithSeed(8))
	ra, rb, rc := a.Row(16), b.Row(16), c.Row(16)
	assert.Equal(t, ra, rb)
	assert.NotEqual(t, ra, rc)
}

func TestZeroBiasedConcentratesNearZero(t *testing.T) {
	const n = 4000
	g := rowgen.New(rowgen.WithSeed(3))
	uni := g.Row(n)
	zb := g.ZeroBiasedRow(n)

	meanAbs := func(v []float64) float64 {
		s := 0.0
		for _, x := range v {
			s += math.Abs(x)
		}
		return s / float64(len(v))
	}
	// Uniform[-1,1] has E|x| = 0.5; Laplace(0, 0.1) has E|x| = 0.1.
	assert.InDelta(t, 0.5, meanAbs(uni), 0.05)
	assert.InDelta(t, rowgen.DefaultZeroScale, meanAbs(zb), 0.02)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { rowgen.WithBounds(1, 1) })
	assert.Panics(t, func() { rowgen.WithBounds(math.NaN(), 1) })
	assert.Panics(t, func() { rowgen.WithZeroScale(0) })
	assert.Panics(t, func() { rowgen.WithZeroScale(math.Inf(1)) })
}

func TestDrivesRandomInit(t *testing.T) {
	m, err := matrix.NewDense(5, 3)
	require.NoError(t, err)
	g := rowgen.New(rowgen.WithSeed(11), rowgen.WithBounds(2, 4))
	require.NoError(t, m.RandomInit(g))
	m.Do(func(_, _ int, v float64) bool {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.LessOrEqual(t, v, 4.0)
		return true
	})

	require.NoError(t, m.RandomInitZeroBiased(g))
	m.Do(func(_, _ int, v float64) bool {
		assert.GreaterOrEqual(t, v, 2.0, "zero-biased values are clamped into the bounds")
		return true
	})

	var unset *rowgen.Generator
	assert.ErrorIs(t, m.RandomInit(unset), matrix.ErrInvalidArgument)
}

func TestConcurrentUse(t *testing.T) {
	g := rowgen.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				assert.Len(t, g.Row(10), 10)
				assert.Len(t, g.ZeroBiasedRow(10), 10)
			}
		}()
	}
	wg.Wait()
}
