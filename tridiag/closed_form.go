// SPDX-License-Identifier: MIT

package tridiag

import (
	"math"

	"github.com/katalvlaran/symeig/matrix"
)

// ConstantEigenvalues returns the exact eigenvalues of the n×n tridiagonal
// Toeplitz matrix with every diagonal entry diag and every off-diagonal entry
// off:
//
//	λ_i = diag + 2·off·cos(iπ/(n+1)),  i = 1..n
//
// in that order (descending for off > 0, ascending for off < 0).
// Returns nil for n ≤ 0.
func ConstantEigenvalues(n int, diag, off float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	var i int
	for i = 1; i <= n; i++ {
		out[i-1] = diag + 2*off*math.Cos(float64(i)*math.Pi/float64(n+1))
	}

	return out
}

// ConstantEigenvectors returns the orthonormal eigenvectors of every n×n
// tridiagonal Toeplitz matrix (they do not depend on diag or off). Column
// i−1 pairs with ConstantEigenvalues(..)[i−1]:
//
//	v_i[j] = √(2/(n+1))·sin(i·j·π/(n+1)),  i, j = 1..n
//
// Errors: matrix.ErrInvalidDimensions for n ≤ 0.
func ConstantEigenvectors(n int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	scale := math.Sqrt(2 / float64(n+1))
	var i, j int
	for i = 1; i <= n; i++ {
		for j = 1; j <= n; j++ {
			if err = out.Set(j-1, i-1, scale*math.Sin(float64(i*j)*math.Pi/float64(n+1))); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Constant builds the n×n tridiagonal Toeplitz matrix as band storage.
// Errors: ErrDimensionMismatch for n ≤ 0.
func Constant(n int, diag, off float64) (*SymTridiagonal, error) {
	if n <= 0 {
		return nil, tridiagErrorf(opNewTridiagonal, validateBands(nil, nil))
	}
	t := &SymTridiagonal{Diagonal: make([]float64, n), OffDiagonal: make([]float64, n-1)}
	var k int
	for k = range t.Diagonal {
		t.Diagonal[k] = diag
	}
	for k = range t.OffDiagonal {
		t.OffDiagonal[k] = off
	}

	return t, nil
}
