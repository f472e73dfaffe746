// Package tridiag computes the full eigendecomposition of real symmetric
// matrices with the implicit-shift QR algorithm on symmetric tridiagonal form.
//
// 🚀 Pipeline
//
//	dense symmetric A ──Tridiagonalize──▶ (T, H)  with A = H·T·Hᵗ
//	(T, V0 = H)       ──QREigen───────▶ (Λ, V)  with A·V ≈ V·diag(Λ)
//
// Tridiagonalize applies n−2 Householder reflections and accumulates them into
// an orthogonal basis H. QREigen then runs Givens-based QR sweeps on the
// leading unconverged window of T, deflating the trailing row/column as soon as
// its off-diagonal entry drops below epsilon, and rotates V by every Givens
// rotation so that its columns end up as eigenvectors aligned with the final
// diagonal (not sorted; use Result.Sorted for a descending view).
//
// ✨ Key features:
//   - Wilkinson spectral shift (default) for quadratic convergence, or no
//     shift for the linear-rate baseline; Result.Iterations lets callers
//     compare both.
//   - Magnitude-based Givens tie-break: the larger of diagonal/off-diagonal is
//     always the denominator; two exact zeros give the identity rotation.
//   - Optional iteration ceiling reported through ErrNotConverged together
//     with the partial Result.
//   - Per-sweep hook (WithSweepHook) and ErrorTracker for convergence curves
//     against known eigenvalues.
//
// ⚙️ Usage:
//
//	res, err := tridiag.Decompose(a)                      // dense input
//	res, err := tridiag.QREigen(diag, off, nil,           // tridiagonal input, V0 = I
//	        tridiag.WithoutSpectralShift(),
//	        tridiag.WithEpsilon(1e-10))
//
// Performance:
//
//   - Tridiagonalize: O(n³) time, O(n²) memory.
//   - Each QR sweep on a window of size m+1: O(m) for T and O(n·m) for V.
//
// Every public entry copies its inputs; caller-owned slices and matrices are
// never mutated.
package tridiag
