// SPDX-License-Identifier: MIT

// Package tridiag: Givens QR factorization of a symmetric tridiagonal window.
package tridiag

import "math"

// Factorize computes the QR factorization T = Q·R of the symmetric tridiagonal
// matrix T given by (diagonal, offDiagonal) using m = len(offDiagonal) Givens
// rotations. The inputs are not modified.
//
// Implementation:
//   - Stage 1: validate band lengths; copy both bands.
//   - Stage 2: for k = 0..m−1 choose the rotation zeroing T[k+1,k] against the
//     current pivot, with the larger-magnitude entry as the denominator.
//   - Stage 3: update R's diagonal and first super-diagonal in place. The
//     second super-diagonal that each rotation creates is not stored.
//
// Behavior highlights:
//   - A pivot pair that is exactly (0, 0) yields the identity rotation.
//   - The result feeds Reconstruct, which needs only R's two stored bands.
//
// Errors:
//   - ErrDimensionMismatch (empty diagonal, len(offDiagonal) ≠ len(diagonal)−1).
//
// Complexity:
//   - Time O(m), Space O(m).
func Factorize(diagonal, offDiagonal []float64) (*Factorization, error) {
	if err := validateBands(diagonal, offDiagonal); err != nil {
		return nil, tridiagErrorf(opFactorize, err)
	}
	d := append([]float64(nil), diagonal...)
	e := append([]float64{}, offDiagonal...)
	rots := make([]Rotation, len(e))
	factorizeInto(d, e, rots, nil)

	return &Factorization{Rotations: rots, Diagonal: d, Super: e}, nil
}

// givens returns the rotation (c, s) with s·a + c·b = 0, where a is the
// current pivot T[k,k] and b the sub-diagonal entry T[k+1,k].
func givens(a, b float64) Rotation {
	var tau, c, s float64
	switch {
	case a == 0 && b == 0:
		return Rotation{C: 1, S: 0}
	case math.Abs(a) > math.Abs(b):
		tau = -b / a
		c = 1 / math.Sqrt(1+tau*tau)
		s = tau * c
	default:
		tau = -a / b
		s = 1 / math.Sqrt(1+tau*tau)
		c = tau * s
	}

	return Rotation{C: c, S: s}
}

// factorizeInto overwrites d with R's diagonal and e with R's first
// super-diagonal, storing the rotations into rots (len(rots) ≥ len(e)).
// When outer is non-nil (len ≥ len(e)), outer[k] receives R[k,k+2]; the last
// entry is always zero for a tridiagonal input.
//
// Before step k the rows k and k+1 read
//
//	row k   : [.. d[k]    u            0        ..]   u = c_{k−1}·e[k]
//	row k+1 : [.. e[k]    d[k+1]       e[k+1]   ..]
//
// and the rotation maps them to R's row k and the next pivot row.
func factorizeInto(d, e []float64, rots []Rotation, outer []float64) {
	var (
		k     int
		rot   Rotation
		prevC = 1.0
		sub   float64
		u     float64
	)
	for k = 0; k < len(e); k++ {
		sub = e[k]
		rot = givens(d[k], sub)
		rots[k] = rot

		d[k] = rot.C*d[k] - rot.S*sub
		u = prevC * sub
		d[k+1], e[k] = rot.S*u+rot.C*d[k+1], rot.C*u-rot.S*d[k+1]
		if outer != nil {
			outer[k] = 0
			if k+1 < len(e) {
				outer[k] = -rot.S * e[k+1]
			}
		}
		prevC = rot.C
	}
}
