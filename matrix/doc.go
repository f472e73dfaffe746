// Package matrix provides the dense linear-algebra substrate used by the
// symmetric eigensolver in package tridiag.
//
// The matrix package provides:
//
//   - Matrix, a small interface over mutable two-dimensional float64 arrays.
//   - Dense, a row-major implementation with bounds-checked At/Set and
//     in-place kernels for orthogonal updates (RotateColumns, ReflectRows).
//   - Allocation-returning kernels: Mul, Transpose, MatVec, Sub, ScaleCols,
//     AllClose, MaxAbs.
//   - Validators shared by every public entry point (square, symmetric,
//     vector length) returning sentinel errors matched via errors.Is.
//
// Kernels never mutate their inputs. The in-place methods on *Dense exist for
// the solver's hot loop, where the caller owns the matrix being updated.
package matrix
