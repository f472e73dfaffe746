// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"

	"github.com/katalvlaran/symeig/matrix"
)

// Reconstruct forms the next QR iterate A' = R·Q from a Factorization,
// returning it as fresh (diagonal, offDiagonal) bands. A' is similar to the
// factorized T, so it stays symmetric tridiagonal with the same spectrum.
//
// For each rotation i in order:
//
//	diagonal[i]    = c·diagonal[i] − s·super[i]
//	offDiagonal[i] = −s·diagonal[i+1]
//	diagonal[i+1]  = c·diagonal[i+1]
//
// Errors:
//   - matrix.ErrNilMatrix when f is nil.
//   - ErrDimensionMismatch when the bands and the rotation count disagree.
//
// Complexity: O(m) time and memory.
func Reconstruct(f *Factorization) ([]float64, []float64, error) {
	if f == nil {
		return nil, nil, tridiagErrorf(opReconstruct, matrix.ErrNilMatrix)
	}
	if err := validateBands(f.Diagonal, f.Super); err != nil {
		return nil, nil, tridiagErrorf(opReconstruct, err)
	}
	if len(f.Rotations) != len(f.Super) {
		return nil, nil, tridiagErrorf(opReconstruct, fmt.Errorf("%d rotations for %d super entries: %w",
			len(f.Rotations), len(f.Super), ErrDimensionMismatch))
	}
	d := append([]float64(nil), f.Diagonal...)
	e := append([]float64{}, f.Super...)
	reconstructInto(d, e, f.Rotations)

	return d, e, nil
}

// reconstructInto overwrites (d, e) holding R's bands with the bands of R·Q.
func reconstructInto(d, e []float64, rots []Rotation) {
	var (
		i   int
		rot Rotation
	)
	for i = 0; i < len(e); i++ {
		rot = rots[i]
		d[i] = rot.C*d[i] - rot.S*e[i]
		e[i] = -rot.S * d[i+1]
		d[i+1] = rot.C * d[i+1]
	}
}
