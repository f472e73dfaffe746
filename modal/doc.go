// Package modal solves the free vibration of a fixed-fixed spring-mass chain
// by eigendecomposition of its stiffness matrix.
//
// A Chain of n equal masses m joined by n+1 springs k_0..k_n (both ends
// anchored) obeys X'' = −A·X with the symmetric tridiagonal
//
//	A[i,i]   = (k_i + k_{i+1}) / m
//	A[i,i+1] = A[i+1,i] = −k_{i+1} / m
//
// Solve diagonalizes A with tridiag.QREigen; the eigenvalues are the squared
// angular frequencies ω_j² and the eigenvectors are the mode shapes. For an
// initial displacement X(0) at rest, the modal coordinates are Y(0) = Vᵗ·X(0)
// and
//
//	X(t)_i = Σ_j V[i,j]·Y(0)_j·cos(ω_j·t)
//
// Usage:
//
//	modes, err := modal.Solve(modal.Chain{Mass: 2, Springs: k})
//	x, err := modes.Displacement(x0, 5.0)
package modal
