// SPDX-License-Identifier: MIT

// Package tridiag: dense facade and result helpers.
package tridiag

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/symeig/matrix"
)

// Decompose computes the full eigendecomposition of a dense symmetric matrix:
// Tridiagonalize, then QREigen seeded with the Householder accumulator H, so
// Result.Vectors holds eigenvectors of A itself (not of T).
//
// Implementation:
//   - Stage 1: validate A (non-nil, square); with WithSymmetryCheck also
//     reject |A[i,j] − A[j,i]| > tol.
//   - Stage 2: (T, H) = Tridiagonalize(A); reject T if the reduction left a
//     NaN or ±Inf band entry (non-finite A, or A beyond float64 range).
//   - Stage 3: run the QR driver on T with H as the initial basis.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch, matrix.ErrNaNInf,
//     matrix.ErrAsymmetry (only with WithSymmetryCheck), ErrNotConverged
//     (only with WithMaxIterations; the partial Result is returned alongside).
//
// Complexity:
//   - O(n³) for the reduction plus O(n²) per eigenvalue for the QR phase
//     (a few sweeps each with the Wilkinson shift).
func Decompose(a matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, tridiagErrorf(opDecompose, err)
	}
	if o.symmetryTol >= 0 {
		if err := matrix.ValidateSymmetric(a, o.symmetryTol); err != nil {
			return nil, tridiagErrorf(opDecompose, err)
		}
	}

	t, h, err := Tridiagonalize(a)
	if err != nil {
		return nil, tridiagErrorf(opDecompose, err)
	}
	if err = validateFinite(t.Diagonal, t.OffDiagonal); err != nil {
		return nil, tridiagErrorf(opDecompose, err)
	}
	res, err := newSolver(t.Diagonal, t.OffDiagonal, h, o).run()
	if err != nil {
		return res, tridiagErrorf(opDecompose, err)
	}

	return res, nil
}

// Sorted returns a copy of r with eigenvalues in descending order and the
// columns of Vectors permuted alongside. Ties keep their deflation order.
// OffDiagonal, Iterations and Converged are copied unchanged; a nil Vectors
// stays nil.
//
// Errors:
//   - ErrDimensionMismatch when Vectors does not have one column per
//     eigenvalue.
//
// Complexity: O(n log n + n²).
func (r *Result) Sorted() (*Result, error) {
	n := len(r.Eigenvalues)
	if r.Vectors != nil && r.Vectors.Cols() != n {
		return nil, tridiagErrorf(opSorted, fmt.Errorf("V has %d columns for %d eigenvalues: %w",
			r.Vectors.Cols(), n, ErrDimensionMismatch))
	}
	order := make([]int, n)
	var i, j int
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return r.Eigenvalues[order[x]] > r.Eigenvalues[order[y]]
	})

	out := &Result{
		Eigenvalues: make([]float64, n),
		OffDiagonal: append([]float64{}, r.OffDiagonal...),
		Iterations:  r.Iterations,
		Converged:   r.Converged,
	}
	for i = range order {
		out.Eigenvalues[i] = r.Eigenvalues[order[i]]
	}
	if r.Vectors == nil {
		return out, nil
	}

	rows := r.Vectors.Rows()
	vec, err := matrix.NewDense(rows, n)
	if err != nil {
		return nil, tridiagErrorf(opSorted, err)
	}
	var x float64
	for j = 0; j < n; j++ {
		for i = 0; i < rows; i++ {
			if x, err = r.Vectors.At(i, order[j]); err != nil {
				return nil, tridiagErrorf(opSorted, err)
			}
			if err = vec.Set(i, j, x); err != nil {
				return nil, tridiagErrorf(opSorted, err)
			}
		}
	}
	out.Vectors = vec

	return out, nil
}

// Residual returns max_j ‖A·v_j − λ_j·v_j‖₂ over all eigenpairs of r, the
// defining check of an eigendecomposition of a.
//
// Implementation:
//   - Stage 1: R = A·V − V·diag(λ) via matrix.Mul, ScaleCols and Sub.
//   - Stage 2: column norms of R/max|R|, rescaled, so huge inputs do not
//     overflow the squares.
//
// Errors:
//   - matrix.ErrNilMatrix (a or r.Vectors), ErrDimensionMismatch when a is not
//     n×n for n = len(r.Eigenvalues).
//
// Complexity: O(n³).
func (r *Result) Residual(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, tridiagErrorf(opResidual, err)
	}
	if r.Vectors == nil {
		return 0, tridiagErrorf(opResidual, matrix.ErrNilMatrix)
	}
	n := len(r.Eigenvalues)
	if a.Rows() != n || a.Cols() != n || r.Vectors.Rows() != n || r.Vectors.Cols() != n {
		return 0, tridiagErrorf(opResidual, fmt.Errorf("A %dx%d, V %dx%d, %d eigenvalues: %w",
			a.Rows(), a.Cols(), r.Vectors.Rows(), r.Vectors.Cols(), n, ErrDimensionMismatch))
	}

	av, err := matrix.Mul(a, r.Vectors)
	if err != nil {
		return 0, tridiagErrorf(opResidual, err)
	}
	vl, err := matrix.ScaleCols(r.Vectors, r.Eigenvalues)
	if err != nil {
		return 0, tridiagErrorf(opResidual, err)
	}
	res, err := matrix.Sub(av, vl)
	if err != nil {
		return 0, tridiagErrorf(opResidual, err)
	}
	scale, err := matrix.MaxAbs(res)
	if err != nil {
		return 0, tridiagErrorf(opResidual, err)
	}
	if scale == NormZero {
		return 0, nil
	}

	var (
		i, j   int
		v, sum float64
		worst  float64
	)
	for j = 0; j < n; j++ {
		sum = NormZero
		for i = 0; i < n; i++ {
			if v, err = res.At(i, j); err != nil {
				return 0, tridiagErrorf(opResidual, err)
			}
			v /= scale
			sum += v * v
		}
		worst = math.Max(worst, math.Sqrt(sum))
	}

	return worst * scale, nil
}
