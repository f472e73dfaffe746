// SPDX-License-Identifier: MIT

// Package tridiag: Householder reduction of a dense symmetric matrix to
// symmetric tridiagonal form.
package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symeig/matrix"
)

// NormZero is the initial value for squared-norm accumulations.
const NormZero = 0.0

// Tridiagonalize reduces a symmetric matrix A to tridiagonal form T and
// returns T together with the orthogonal accumulator H such that A = H·T·Hᵗ.
//
// Implementation:
//   - Stage 1: validate A non-nil and square; copy it into a flat row-major
//     work buffer (A itself is never mutated).
//   - Stage 2: for k = 0..n−3 build the reflector w that collapses the
//     sub-column work[k+1:n, k] onto ±‖x‖·e₁, using the cancellation-free
//     target −Sign(x₀)·‖x‖. x is divided by max|x| first, so ‖x‖ stays
//     finite for entries near the float64 limit.
//   - Stage 3: apply P = I − 2wwᵗ/(wᵗw) to the active block in two one-sided
//     passes (columns, then rows) and accumulate H ← H·P.
//   - Stage 4: record diagonal[k] and offDiagonal[k]; append the trailing 2×2
//     (or 1×1) block, which is already tridiagonal.
//
// Behavior highlights:
//   - n ≤ 2 performs no reflections; H is the identity.
//   - A sub-column that is already zero yields offDiagonal[k] = 0 and skips
//     the reflection instead of dividing by wᵗw = 0.
//   - Entries of order 1e200 and beyond reduce without overflow as long as
//     T itself is representable.
//   - Symmetry of A is assumed, not checked: only the lower triangle drives
//     the reflectors, so non-symmetric input produces a meaningless T without
//     failing. Use Decompose with WithSymmetryCheck to reject it.
//
// Inputs:
//   - a: square matrix (any Matrix implementation; read through At).
//
// Returns:
//   - *SymTridiagonal with len(Diagonal) = n, len(OffDiagonal) = n−1.
//   - *matrix.Dense H (n×n, orthogonal).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Determinism:
//   - Fixed k→i→j loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Tridiagonalize(a matrix.Matrix) (*SymTridiagonal, *matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, tridiagErrorf(opTridiagonalize, err)
	}
	n := a.Rows()

	// Stage 1: private row-major copy.
	work := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, nil, tridiagErrorf(opTridiagonalize, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			work[i*n+j] = v
		}
	}

	h, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, tridiagErrorf(opTridiagonalize, err)
	}
	diagonal := make([]float64, n)
	offDiagonal := make([]float64, n-1)

	// Stages 2-4: one reflector per column.
	w := make([]float64, n) // reused; w[:size] is the live part
	var (
		k, size      int
		norm, target float64
		scale, wtw   float64
	)
	for k = 0; k < n-2; k++ {
		size = n - k - 1
		scale = NormZero
		for i = 0; i < size; i++ {
			w[i] = work[(k+1+i)*n+k]
			scale = math.Max(scale, math.Abs(w[i]))
		}
		diagonal[k] = work[k*n+k]
		if scale == NormZero {
			offDiagonal[k] = 0 // column already reduced
			continue
		}
		// P depends only on the direction of w, so build it from x/max|x|
		// and keep every square below overflow.
		norm = NormZero
		for i = 0; i < size; i++ {
			w[i] /= scale
			norm += w[i] * w[i]
		}
		norm = math.Sqrt(norm)
		target = -Sign(w[0]) * norm
		offDiagonal[k] = target * scale
		w[0] -= target

		wtw = NormZero
		for i = 0; i < size; i++ {
			wtw += w[i] * w[i]
		}
		reflectColumns(work, n, k, w[:size], wtw)
		reflectRows(work, n, k, w[:size], wtw)

		if err = h.ReflectRows(k+1, w[:size]); err != nil {
			return nil, nil, tridiagErrorf(opTridiagonalize, err)
		}
	}

	if n >= 2 {
		diagonal[n-2] = work[(n-2)*n+n-2]
		diagonal[n-1] = work[(n-1)*n+n-1]
		offDiagonal[n-2] = work[(n-1)*n+n-2]
	} else {
		diagonal[0] = work[0]
	}

	return &SymTridiagonal{Diagonal: diagonal, OffDiagonal: offDiagonal}, h, nil
}

// reflectColumns right-multiplies rows k..n−1 of the active block by P,
// touching columns k+1..n−1 only.
func reflectColumns(work []float64, n, k int, w []float64, wtw float64) {
	var (
		row, t, base int
		dot, factor  float64
	)
	for row = k; row < n; row++ {
		base = row*n + k + 1
		dot = NormZero
		for t = range w {
			dot += w[t] * work[base+t]
		}
		factor = 2 * dot / wtw
		for t = range w {
			work[base+t] -= factor * w[t]
		}
	}
}

// reflectRows left-multiplies columns k..n−1 of the active block by P,
// touching rows k+1..n−1 only.
func reflectRows(work []float64, n, k int, w []float64, wtw float64) {
	var (
		col, t      int
		dot, factor float64
	)
	for col = k; col < n; col++ {
		dot = NormZero
		for t = range w {
			dot += w[t] * work[(k+1+t)*n+col]
		}
		factor = 2 * dot / wtw
		for t = range w {
			work[(k+1+t)*n+col] -= factor * w[t]
		}
	}
}
