// SPDX-License-Identifier: MIT

package tridiag

// Test bridge for unexported kernels.
//
// Purpose:
//   - Let tridiag_test reach the single-rotation constructor, the raw shift
//     and the factorization variant that also returns R's second
//     super-diagonal, without widening the production API.

var (
	// ExportedGivens exposes givens.
	ExportedGivens = givens

	// ExportedWilkinson exposes wilkinson(a, c, b).
	ExportedWilkinson = wilkinson
)

// ExportedFactorizeWithOuter runs factorizeInto on copies of the bands and
// returns the factorization plus R's second super-diagonal (len m).
func ExportedFactorizeWithOuter(diagonal, offDiagonal []float64) (*Factorization, []float64) {
	d := append([]float64(nil), diagonal...)
	e := append([]float64{}, offDiagonal...)
	rots := make([]Rotation, len(e))
	outer := make([]float64, len(e))
	factorizeInto(d, e, rots, outer)

	return &Factorization{Rotations: rots, Diagonal: d, Super: e}, outer
}

// ExportedOptionsSnapshot returns the resolved symmetry tolerance and hook flag.
func ExportedOptionsSnapshot(opts ...Option) (symmetryTol float64, hasHook bool) {
	o := gatherOptions(opts...)

	return o.symmetryTol, o.hasSweepHook
}
