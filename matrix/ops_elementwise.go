// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast element-wise kernel that scales the columns of a matrix by a vector.
//
// Determinism & Performance:
//   - Fixed i→j loop order.
//   - Dense fast-path operates on the flat row-major buffer.
//   - One output allocation; O(r*c) time and space.

package matrix

const opScaleCols = "ScaleCols"

// ScaleCols computes out[i,j] = X[i,j] * scale[j], i.e. X·diag(scale).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(scale) != X.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hint: with X = V (eigenvectors as columns) and scale = Vᵗ·x this yields the
// per-mode contributions to x.
func ScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != c {
		return nil, matrixErrorf(opScaleCols, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	var (
		i, j, base int
		v          float64
	)
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}
		return out, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleCols, err)
			}
			out.data[i*c+j] = v * scale[j]
		}
	}
	return out, nil
}
