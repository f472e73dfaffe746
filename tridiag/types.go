// SPDX-License-Identifier: MIT

// Package tridiag: domain types shared by the tridiagonalizer, the Givens
// factorization and the QR driver.
package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symeig/matrix"
)

// SymTridiagonal is a symmetric tridiagonal matrix of size n stored losslessly
// as its main diagonal (length n) and the shared sub/super-diagonal
// (length n−1): OffDiagonal[k] sits between rows k and k+1.
type SymTridiagonal struct {
	Diagonal    []float64
	OffDiagonal []float64
}

// NewSymTridiagonal validates the lengths and returns a copy-backed matrix.
// Errors: ErrDimensionMismatch when len(diagonal) == 0 or
// len(offDiagonal) != len(diagonal)−1.
func NewSymTridiagonal(diagonal, offDiagonal []float64) (*SymTridiagonal, error) {
	if err := validateBands(diagonal, offDiagonal); err != nil {
		return nil, tridiagErrorf(opNewTridiagonal, err)
	}

	return &SymTridiagonal{
		Diagonal:    append([]float64(nil), diagonal...),
		OffDiagonal: append([]float64{}, offDiagonal...),
	}, nil
}

// Size returns n.
func (t *SymTridiagonal) Size() int { return len(t.Diagonal) }

// Clone returns a deep copy.
func (t *SymTridiagonal) Clone() *SymTridiagonal {
	return &SymTridiagonal{
		Diagonal:    append([]float64(nil), t.Diagonal...),
		OffDiagonal: append([]float64{}, t.OffDiagonal...),
	}
}

// Dense expands the band storage into a full n×n matrix
// diag(Diagonal) + diag(OffDiagonal, 1) + diag(OffDiagonal, −1).
// Complexity: O(n²) time and memory.
func (t *SymTridiagonal) Dense() (*matrix.Dense, error) {
	if err := validateBands(t.Diagonal, t.OffDiagonal); err != nil {
		return nil, err
	}
	n := len(t.Diagonal)
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var k int
	for k = 0; k < n; k++ {
		if err = out.Set(k, k, t.Diagonal[k]); err != nil {
			return nil, err
		}
	}
	for k = 0; k < n-1; k++ {
		if err = out.Set(k, k+1, t.OffDiagonal[k]); err != nil {
			return nil, err
		}
		if err = out.Set(k+1, k, t.OffDiagonal[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Rotation is one Givens rotation (C, S) with C² + S² = 1, chosen to zero a
// single sub-diagonal entry. As a row operation on rows k and k+1 it acts as
//
//	row_k, row_k+1 = C·row_k − S·row_k+1, S·row_k + C·row_k+1
type Rotation struct {
	C float64
	S float64
}

// Factorization is the Givens QR factorization of one tridiagonal window:
// Qᵗ = G_{m−1}···G_0 with G_k = Rotations[k], and the upper-triangular R kept
// as its Diagonal (length m+1) and first Super-diagonal (length m). R's second
// super-diagonal is not stored; Reconstruct never needs it.
type Factorization struct {
	Rotations []Rotation
	Diagonal  []float64
	Super     []float64
}

// Result is the outcome of a QR eigendecomposition.
//
// Fields:
//   - Eigenvalues: the final diagonal, in the order the deflation produced
//     (not sorted).
//   - OffDiagonal: the final off-diagonal; every |entry| < epsilon when Converged.
//   - Vectors: n×n orthogonal matrix; column j is the eigenvector of Eigenvalues[j].
//   - Iterations: number of QR sweeps performed.
//   - Converged: false only when an iteration ceiling stopped the run.
type Result struct {
	Eigenvalues []float64
	OffDiagonal []float64
	Vectors     *matrix.Dense
	Iterations  int
	Converged   bool
}

// Sweep describes one completed QR sweep and is passed to the sweep hook.
//
// Diagonal and OffDiagonal alias the solver's working buffers: hooks may read
// them during the call but must neither retain nor modify them.
type Sweep struct {
	Iteration   int     // 1-based sweep counter
	Window      int     // index m of the active window [0, m]
	Shift       float64 // μ used for this sweep (0 when shifting is disabled)
	Trailing    float64 // |OffDiagonal[m−1]| after the sweep
	Diagonal    []float64
	OffDiagonal []float64
}

// validateBands checks n ≥ 1 and len(off) == n−1.
func validateBands(diagonal, offDiagonal []float64) error {
	if len(diagonal) == 0 {
		return fmt.Errorf("empty diagonal: %w", ErrDimensionMismatch)
	}
	if len(offDiagonal) != len(diagonal)-1 {
		return fmt.Errorf("len(diagonal)=%d, len(offDiagonal)=%d: %w",
			len(diagonal), len(offDiagonal), ErrDimensionMismatch)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf entries, which would either stall the
// deflation loop (Inf) or end it silently with garbage (NaN).
func validateFinite(bands ...[]float64) error {
	var k int
	for _, band := range bands {
		for k = range band {
			if math.IsNaN(band[k]) || math.IsInf(band[k], 0) {
				return fmt.Errorf("entry %d = %g: %w", k, band[k], matrix.ErrNaNInf)
			}
		}
	}

	return nil
}
