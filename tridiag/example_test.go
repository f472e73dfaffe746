// SPDX-License-Identifier: MIT

package tridiag_test

import (
	"fmt"

	"github.com/katalvlaran/symeig/matrix"
	"github.com/katalvlaran/symeig/tridiag"
)

// ExampleDecompose reduces a dense symmetric matrix and diagonalizes it.
func ExampleDecompose() {
	a, _ := matrix.NewFromRows([][]float64{
		{2, 4, 1, 1},
		{4, 2, 1, 1},
		{1, 1, 1, 2},
		{1, 1, 2, 1},
	})
	res, err := tridiag.Decompose(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sorted, err := res.Sorted()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range sorted.Eigenvalues {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// 7.0000
	// 2.0000
	// -1.0000
	// -2.0000
}

// ExampleQREigen diagonalizes a tridiagonal matrix given as two bands.
func ExampleQREigen() {
	res, err := tridiag.QREigen([]float64{2, 2}, []float64{1}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sorted, err := res.Sorted()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("eigenvalues %.4f, converged %v\n", sorted.Eigenvalues, sorted.Converged)
	// Output:
	// eigenvalues [3.0000 1.0000], converged true
}

// ExampleWilkinsonShift picks the root of the trailing 2×2 block nearest its corner.
func ExampleWilkinsonShift() {
	mu, _ := tridiag.WilkinsonShift([]float64{5, 2, 2}, []float64{0.3, 1})
	fmt.Println(mu)
	// Output:
	// 1
}

// ExampleSign shows the zero-is-positive convention.
func ExampleSign() {
	fmt.Println(tridiag.Sign(-2), tridiag.Sign(0), tridiag.Sign(3))
	// Output:
	// -1 1 1
}

// ExampleConstantEigenvalues lists the analytic spectrum of tridiag(−1, 2, −1).
func ExampleConstantEigenvalues() {
	fmt.Printf("%.6f\n", tridiag.ConstantEigenvalues(4, 2, -1))
	// Output:
	// [0.381966 1.381966 2.618034 3.618034]
}
