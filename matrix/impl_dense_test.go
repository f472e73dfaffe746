// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and the in-place
// rotation/reflection kernels.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symeig/matrix"
)

func TestNewDense_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			r, c := m.Shape()
			assert.Equal(t, tc.rows, r)
			assert.Equal(t, tc.cols, c)
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j), "element [%d,%d]", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
	_, err := matrix.NewIdentity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	CompareExact(t, rows, m)

	rows[0][0] = 42
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "input must not be retained")

	_, err = matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewFromRows([][]float64{{math.Inf(-1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.5))
	assert.Equal(t, 7.5, MustAt(t, m, 1, 2))

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err := m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", idx)
		assert.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange, "Set%v", idx)
	}

	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	assert.Equal(t, 0.0, MustAt(t, m, 0, 0), "rejected write must not land")
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cl := m.Clone()
	MustSet(t, cl, 0, 0, -1)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, -1.0, MustAt(t, cl, 0, 0))
}

func TestDense_StringAndColumn(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2.5, -3, 4, 5, 6})
	assert.Equal(t, "[1, 2.5, -3]\n[4, 5, 6]\n", m.String())

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 5}, col)
	col[0] = 99
	assert.Equal(t, 2.5, MustAt(t, m, 0, 1), "Column must return a copy")

	_, err = m.Column(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_RotateColumns(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	c, s := 0.6, 0.8
	require.NoError(t, m.RotateColumns(0, 2, c, s))
	// col0' = c·col0 − s·col2, col2' = s·col0 + c·col2
	want := [][]float64{
		{0.6*1 - 0.8*3, 2, 0.8*1 + 0.6*3},
		{0.6*4 - 0.8*6, 5, 0.8*4 + 0.6*6},
	}
	var i, j int
	for i = range want {
		for j = range want[i] {
			assert.InDelta(t, want[i][j], MustAt(t, m, i, j), 1e-15, "[%d,%d]", i, j)
		}
	}

	// Matches right-multiplication by Gᵗ with G[i,i]=c, G[i,j]=−s, G[j,i]=s, G[j,j]=c.
	base := RandFilledDense(t, 4, 4, 3)
	rotated := base.Clone().(*matrix.Dense)
	require.NoError(t, rotated.RotateColumns(1, 2, c, s))
	gt := MustDense(t, 4, 4)
	for i = 0; i < 4; i++ {
		MustSet(t, gt, i, i, 1)
	}
	MustSet(t, gt, 1, 1, c)
	MustSet(t, gt, 2, 1, -s)
	MustSet(t, gt, 1, 2, s)
	MustSet(t, gt, 2, 2, c)
	prod, err := matrix.Mul(base, gt)
	require.NoError(t, err)
	ok, err := matrix.AllClose(rotated, prod, 0, 1e-15)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, m.RotateColumns(0, 3, c, s), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.RotateColumns(-1, 1, c, s), matrix.ErrOutOfRange)
}

func TestDense_ReflectRows(t *testing.T) {
	t.Parallel()

	// Reflector for w = [1, 1] on columns 1..2 swaps them and flips signs.
	m := NewFilledDense(t, 2, 3, []float64{
		9, 1, 2,
		8, 3, 4,
	})
	require.NoError(t, m.ReflectRows(1, []float64{1, 1}))
	CompareExact(t, [][]float64{{9, -2, -1}, {8, -4, -3}}, m)

	// Applying the same reflector twice is the identity.
	base := RandFilledDense(t, 5, 5, 9)
	twice := base.Clone().(*matrix.Dense)
	w := []float64{0.3, -1.2, 0.7}
	require.NoError(t, twice.ReflectRows(2, w))
	require.NoError(t, twice.ReflectRows(2, w))
	ok, err := matrix.AllClose(twice, base, 0, 1e-14)
	require.NoError(t, err)
	assert.True(t, ok)

	// A zero reflector leaves the matrix untouched.
	before := base.String()
	require.NoError(t, base.ReflectRows(0, []float64{0, 0}))
	assert.Equal(t, before, base.String())

	assert.ErrorIs(t, base.ReflectRows(4, w), matrix.ErrOutOfRange)
	assert.ErrorIs(t, base.ReflectRows(-1, w), matrix.ErrOutOfRange)
}
