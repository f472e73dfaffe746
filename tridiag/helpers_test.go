// SPDX-License-Identifier: MIT
// Package tridiag_test contains shared fixtures and property assertions.
//
// Purpose:
//   - Keep fixtures deterministic (fixed seeds, literal matrices).
//   - Centralize the eigendecomposition properties every solver test checks:
//     orthonormal basis, eigen equation, similarity A = H·T·Hᵗ.

package tridiag_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/symeig/matrix"
	"github.com/katalvlaran/symeig/tridiag"
)

// hide masks the concrete *Dense type to force At-based fallback paths.
type hide struct{ matrix.Matrix }

// denseSample is the 4×4 symmetric matrix with spectrum {7, 2, −1, −2}.
var denseSample = [][]float64{
	{2, 4, 1, 1},
	{4, 2, 1, 1},
	{1, 1, 1, 2},
	{1, 1, 2, 1},
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandSymmetric returns an n×n symmetric matrix with entries in [−5, 5).
func RandSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = rng.Float64()*10 - 5
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

// RandBands returns random tridiagonal bands of size n.
func RandBands(n int, seed int64) ([]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	d := make([]float64, n)
	e := make([]float64, n-1)
	for i := range d {
		d[i] = rng.Float64()*4 - 2
	}
	for i := range e {
		e[i] = rng.Float64()*2 - 1
	}

	return d, e
}

// gonumEigenvalues is the independent oracle: eigenvalues of a, ascending.
func gonumEigenvalues(t testing.TB, a matrix.Matrix) []float64 {
	t.Helper()
	n := a.Rows()
	data := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j] = MustAt(t, a, i, j)
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(mat.NewSymDense(n, data), false), "gonum EigenSym failed")

	return es.Values(nil)
}

// ascending returns a sorted copy.
func ascending(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)

	return out
}

// propOrthonormal asserts Qᵗ·Q ≈ I and Q·Qᵗ ≈ I within delta.
func propOrthonormal(t testing.TB, q matrix.Matrix, delta float64) {
	t.Helper()
	n := q.Rows()
	require.Equal(t, n, q.Cols(), "basis must be square")
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	ok, err := matrix.AllClose(qtq, id, 0, delta)
	require.NoError(t, err)
	require.True(t, ok, "QᵗQ != I within %.1e:\n%v", delta, qtq)

	qqt, err := matrix.Mul(q, qt)
	require.NoError(t, err)
	ok, err = matrix.AllClose(qqt, id, 0, delta)
	require.NoError(t, err)
	require.True(t, ok, "QQᵗ != I within %.1e:\n%v", delta, qqt)
}

// propEigenEquation asserts ‖A·v_j − λ_j·v_j‖₂ ≤ delta for every column j.
func propEigenEquation(t testing.TB, a matrix.Matrix, res *tridiag.Result, delta float64) {
	t.Helper()
	r, err := res.Residual(a)
	require.NoError(t, err)
	require.LessOrEqual(t, r, delta, "eigen residual %.3g exceeds %.1e", r, delta)
}

// propSimilarity asserts H·T·Hᵗ ≈ A within delta.
func propSimilarity(t testing.TB, a matrix.Matrix, tri *tridiag.SymTridiagonal, h matrix.Matrix, delta float64) {
	t.Helper()
	td, err := tri.Dense()
	require.NoError(t, err)
	ht, err := matrix.Transpose(h)
	require.NoError(t, err)
	left, err := matrix.Mul(h, td)
	require.NoError(t, err)
	back, err := matrix.Mul(left, ht)
	require.NoError(t, err)
	ok, err := matrix.AllClose(back, a, 0, delta)
	require.NoError(t, err)
	require.True(t, ok, "H·T·Hᵗ != A within %.1e:\n%v", delta, back)
}
