// SPDX-License-Identifier: MIT

package tridiag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symeig/matrix"
)

var (
	// ErrDimensionMismatch reports inconsistent vector/matrix sizes at a public
	// entry point. It is the same sentinel as matrix.ErrDimensionMismatch, so
	// errors.Is matches either name.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNotConverged is returned by QREigen and Decompose when an iteration
	// ceiling was configured (WithMaxIterations) and reached before every
	// off-diagonal entry deflated. The partial Result is returned alongside it.
	ErrNotConverged = errors.New("tridiag: iteration ceiling reached before convergence")
)

// Operation tags for error wrapping.
const (
	opTridiagonalize = "Tridiagonalize"
	opFactorize      = "Factorize"
	opReconstruct    = "Reconstruct"
	opShift          = "WilkinsonShift"
	opQREigen        = "QREigen"
	opDecompose      = "Decompose"
	opResidual       = "Residual"
	opSorted         = "Sorted"
	opNewTridiagonal = "NewSymTridiagonal"
)

// tridiagErrorf wraps err with an operation tag, keeping errors.Is intact.
func tridiagErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
