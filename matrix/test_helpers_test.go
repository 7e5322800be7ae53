// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for builders/kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense fallback paths of kernels.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows BUILDS a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err, "NewFromRows(%v)", rows)

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%g)", i, j, v)
}

// RandFilledDense BUILDS an r×c *Dense with values in [-1,1) from a fixed seed.
func RandFilledDense(t testing.TB, r, c int, seed uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(seed, seed^0x5bd1e995))
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))

	return m
}

// DiagDominant BUILDS a random n×n matrix with |a_ii| > Σ_{j≠i}|a_ij|,
// which is always invertible without pivoting.
func DiagDominant(t testing.TB, n int, seed uint64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 {
		if i == j {
			return float64(n) + 1
		}

		return v
	}))

	return m
}

// CompareExact ASSERTS m equals want element-for-element (bitwise ==).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "(%d,%d)", i, j)
		}
	}
}

// CompareClose ASSERTS AllClose(a,b,rtol,atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// fixedGen is a RowGenerator returning constant rows (or a broken length).
type fixedGen struct {
	value     float64
	zero      float64
	lengthFix int // added to the requested dim
	calls     int
}

func (g *fixedGen) Row(dim int) []float64 {
	g.calls++

	return fill(dim+g.lengthFix, g.value)
}

func (g *fixedGen) ZeroBiasedRow(dim int) []float64 {
	g.calls++

	return fill(dim+g.lengthFix, g.zero)
}

func fill(n int, v float64) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
