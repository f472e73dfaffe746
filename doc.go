// Package symeig is your toolkit for the eigenvalues and eigenvectors of real
// symmetric matrices, built the classical way: Householder reduction to
// tridiagonal form, then implicit QR sweeps with Givens rotations.
//
// 🚀 What is symeig?
//
//	A small, deterministic, pure-Go numerical library that brings together:
//		• Dense primitives: row-major matrices, validators, rotations, reflections
//		• Householder tridiagonalization with the accumulated orthogonal factor
//		• Givens QR factorization and the RQ reconstruction of a tridiagonal
//		• QR eigen-iteration with Wilkinson shift and trailing deflation
//		• Closed forms and error tracking for the constant tridiagonal matrix
//		• Spring-mass vibration modes on top of the eigensolver
//
// ✨ Why choose symeig?
//
//   - Beginner-friendly: every stage is a public function you can call alone
//   - Observable: a per-sweep hook exposes shift, window and bands
//   - Predictable: no goroutines, no randomness, one result for one input
//
// Under the hood, everything is organized under these packages:
//
//	matrix/       — Matrix interface, Dense, validators, rotations & kernels
//	tridiag/      — Householder, Givens, Wilkinson shift, QR driver, closed forms
//	modal/        — fixed-fixed spring-mass chains and their modes
//	internal/cli/ — the symeig command (solve, chain, compare)
//	cmd/symeig/   — command entry point
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 2}})
//	res, err := tridiag.Decompose(a)
//	// res.Eigenvalues ≈ [3 1] (deflation order), res.Vectors columns are the eigenvectors
//
//	go get github.com/katalvlaran/symeig/tridiag
package symeig
