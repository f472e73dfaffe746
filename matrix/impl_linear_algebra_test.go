// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symeig/matrix"
)

func TestSub_FastPathAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	want := [][]float64{{4, 4}, {4, 4}}

	fast, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, want, slow)

	_, err = matrix.Sub(a, MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_FastPathAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{
		1, 0, 2,
		-1, 3, 1,
	})
	b := NewFilledDense(t, 3, 2, []float64{
		3, 1,
		2, 1,
		1, 0,
	})
	want := [][]float64{{5, 1}, {4, 2}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Mul(a, hide{b})
	require.NoError(t, err)
	CompareExact(t, want, slow)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_RandomPathsAgree(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 6, 4, 1)
	b := RandFilledDense(t, 4, 5, 2)
	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	ok, err := matrix.AllClose(fast, slow, 0, 1e-14)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	fast, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareExact(t, want, slow)

	back, err := matrix.Transpose(fast)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, back)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, x)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 100})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-9, 100 + 1e-6})

	ok, err := matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	assert.False(t, ok, "absolute tolerance alone is too tight for the second entry")

	ok, err = matrix.AllClose(a, b, 1e-7, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose(a, b, -1, 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, b, 0, math.Inf(1))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxAbs(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, -7, 3, 2})
	v, err := matrix.MaxAbs(m)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	v, err = matrix.MaxAbs(hide{m})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = matrix.MaxAbs(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
