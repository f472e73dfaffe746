// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"
	"math"
)

// Sign returns −1 for x < 0 and +1 otherwise. Zero (either sign) and NaN map
// to +1; this is not math.Copysign and not a three-valued signum.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}

// WilkinsonShift returns the eigenvalue of the trailing 2×2 block
//
//	[ a  b ]    a = diagonal[m−1], c = diagonal[m], b = offDiagonal[m−1]
//	[ b  c ]
//
// closest to c, i.e. μ = c + d − Sign(d)·√(d² + b²) with d = (a − c)/2.
//
// Implementation:
//   - Evaluated as μ = c − b²/(d + Sign(d)·hypot(d, b)), which is the same
//     value without the cancellation of c + d − Sign(d)·√(..) when |b| ≪ |d|.
//     The quotient is taken before the product (|b/(..)| ≤ 1), so b² never
//     overflows for large blocks.
//   - b = 0 returns c exactly.
//
// Errors:
//   - ErrDimensionMismatch for invalid bands or a 1×1 matrix (no 2×2 block).
func WilkinsonShift(diagonal, offDiagonal []float64) (float64, error) {
	if err := validateBands(diagonal, offDiagonal); err != nil {
		return 0, tridiagErrorf(opShift, err)
	}
	m := len(diagonal) - 1
	if m < 1 {
		return 0, tridiagErrorf(opShift, fmt.Errorf("size 1 has no trailing 2x2 block: %w", ErrDimensionMismatch))
	}

	return wilkinson(diagonal[m-1], diagonal[m], offDiagonal[m-1]), nil
}

// wilkinson is WilkinsonShift on the raw block entries.
func wilkinson(a, c, b float64) float64 {
	if b == 0 {
		return c
	}
	d := (a - c) / 2

	return c - b*(b/(d+Sign(d)*math.Hypot(d, b)))
}
