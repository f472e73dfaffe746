// SPDX-License-Identifier: MIT

// Package tridiag: implicit-shift QR driver with deflation.
package tridiag

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symeig/matrix"
)

// QREigen diagonalizes the symmetric tridiagonal matrix (diagonal, offDiagonal)
// by QR iteration, accumulating every rotation into the basis v0.
//
// Implementation:
//   - Stage 1: validate bands and v0 (nil → identity, otherwise n×n); copy
//     everything so caller-owned data is never modified.
//   - Stage 2: for the active window [0, m], m = n−1 down to 1, sweep while
//     |offDiagonal[m−1]| ≥ epsilon. One sweep:
//     factorize diagonal[0..m] − μ (Factorize); form R·Q (Reconstruct);
//     add μ back; rotate columns (i, i+1) of V by every rotation; then
//     μ = WilkinsonShift of the new trailing 2×2 block (0 without shifting).
//   - Stage 3: return the final diagonal as eigenvalues, column-aligned with V.
//
// Behavior highlights:
//   - Eigenvalues come out in deflation order, not sorted (see Result.Sorted).
//   - Deflated entries are never touched again: the trailing |offDiagonal[k]|
//     stays below epsilon once window k+1 has been left.
//   - μ starts at 0, so the first sweep is unshifted. μ carries across a
//     deflation: the first sweep on window m−1 uses the shift computed from
//     the trailing block of window m.
//   - n = 1 returns immediately with zero iterations.
//
// Inputs:
//   - diagonal (len n ≥ 1), offDiagonal (len n−1).
//   - v0: initial orthogonal basis, typically H from Tridiagonalize; nil for identity.
//   - opts: WithEpsilon, WithSpectralShift / WithoutSpectralShift,
//     WithMaxIterations, WithSweepHook.
//
// Returns:
//   - *Result with Converged = true, or the partial Result plus
//     ErrNotConverged when WithMaxIterations stopped the run.
//
// Errors:
//   - ErrDimensionMismatch (band lengths, v0 shape), matrix.ErrNaNInf,
//     ErrNotConverged.
//
// Determinism:
//   - Purely sequential; no allocation inside the sweep loop.
//
// Complexity:
//   - Per sweep O(m) for the bands plus O(n·m) for the basis update.
//
// AI-Hints:
//   - Unshifted iteration converges linearly and can stall completely on
//     eigenvalues of equal magnitude and opposite sign; pair
//     WithoutSpectralShift with WithMaxIterations.
func QREigen(diagonal, offDiagonal []float64, v0 matrix.Matrix, opts ...Option) (*Result, error) {
	if err := validateBands(diagonal, offDiagonal); err != nil {
		return nil, tridiagErrorf(opQREigen, err)
	}
	if err := validateFinite(diagonal, offDiagonal); err != nil {
		return nil, tridiagErrorf(opQREigen, err)
	}
	n := len(diagonal)
	v, err := basisFrom(v0, n)
	if err != nil {
		return nil, tridiagErrorf(opQREigen, err)
	}
	s := newSolver(diagonal, offDiagonal, v, gatherOptions(opts...))
	res, err := s.run()
	if err != nil {
		return res, tridiagErrorf(opQREigen, err)
	}

	return res, nil
}

// basisFrom returns a private *Dense copy of v0, or the identity when v0 is nil.
func basisFrom(v0 matrix.Matrix, n int) (*matrix.Dense, error) {
	if v0 == nil {
		return matrix.NewIdentity(n)
	}
	if err := matrix.ValidateNotNil(v0); err != nil {
		return matrix.NewIdentity(n) // typed nil *Dense behaves like nil
	}
	if v0.Rows() != n || v0.Cols() != n {
		return nil, fmt.Errorf("V0 is %dx%d, want %dx%d: %w", v0.Rows(), v0.Cols(), n, n, ErrDimensionMismatch)
	}
	if d, ok := v0.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = v0.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, x); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// solver owns the working state of one QREigen call. All buffers are sized
// once for the full problem; a sweep on window m uses their first m+1 slots.
type solver struct {
	d, e    []float64 // current diagonal / off-diagonal
	shifted []float64 // d[0..m] − μ, overwritten by R then by R·Q
	super   []float64 // e[0..m−1], overwritten by R's super-diagonal then by R·Q
	rots    []Rotation
	v       *matrix.Dense
	opts    Options
	iter    int
	mu      float64 // shift for the next sweep
}

func newSolver(diagonal, offDiagonal []float64, v *matrix.Dense, opts Options) *solver {
	n := len(diagonal)

	return &solver{
		d:       append([]float64(nil), diagonal...),
		e:       append([]float64{}, offDiagonal...),
		shifted: make([]float64, n),
		super:   make([]float64, n-1),
		rots:    make([]Rotation, n-1),
		v:       v,
		opts:    opts,
	}
}

// run executes the deflation loop.
func (s *solver) run() (*Result, error) {
	var m int
	for m = len(s.d) - 1; m >= 1; m-- {
		for math.Abs(s.e[m-1]) >= s.opts.eps {
			if s.opts.maxIter > 0 && s.iter >= s.opts.maxIter {
				return s.result(false), fmt.Errorf("window %d, |offDiagonal[%d]|=%g after %d sweeps: %w",
					m, m-1, math.Abs(s.e[m-1]), s.iter, ErrNotConverged)
			}
			if err := s.sweep(m); err != nil {
				return s.result(false), err
			}
		}
	}

	return s.result(true), nil
}

// sweep performs one shifted QR step on the window [0, m].
func (s *solver) sweep(m int) error {
	mu := s.mu

	var i int
	for i = 0; i <= m; i++ {
		s.shifted[i] = s.d[i] - mu
	}
	copy(s.super[:m], s.e[:m])

	factorizeInto(s.shifted[:m+1], s.super[:m], s.rots[:m], nil)
	reconstructInto(s.shifted[:m+1], s.super[:m], s.rots[:m])

	for i = 0; i <= m; i++ {
		s.d[i] = s.shifted[i] + mu
	}
	copy(s.e[:m], s.super[:m])

	for i = 0; i < m; i++ {
		if err := s.v.RotateColumns(i, i+1, s.rots[i].C, s.rots[i].S); err != nil {
			return err
		}
	}
	s.iter++
	if s.opts.shift {
		s.mu = wilkinson(s.d[m-1], s.d[m], s.e[m-1])
	}

	if s.opts.hasSweepHook {
		s.opts.onSweep(Sweep{
			Iteration:   s.iter,
			Window:      m,
			Shift:       mu,
			Trailing:    math.Abs(s.e[m-1]),
			Diagonal:    s.d,
			OffDiagonal: s.e,
		})
	}

	return nil
}

// result snapshots the solver state; the solver is not used afterwards, so
// the bands are handed over without copying.
func (s *solver) result(converged bool) *Result {
	return &Result{
		Eigenvalues: s.d,
		OffDiagonal: s.e,
		Vectors:     s.v,
		Iterations:  s.iter,
		Converged:   converged,
	}
}
