// SPDX-License-Identifier: MIT

package tridiag_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/symeig/tridiag"
)

var sinkRes *tridiag.Result

func BenchmarkQREigen(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 64, 128} {
		d, e := RandBands(n, int64(n))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				res, err := tridiag.QREigen(d, e, nil)
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
	}
}

// BenchmarkQREigen_Unshifted shows the cost of linear convergence on tridiag(−1, 2, −1).
func BenchmarkQREigen_Unshifted(b *testing.B) {
	b.ReportAllocs()
	tri, _ := tridiag.Constant(16, 2, -1)
	for i := 0; i < b.N; i++ {
		res, err := tridiag.QREigen(tri.Diagonal, tri.OffDiagonal, nil, tridiag.WithoutSpectralShift())
		if err != nil {
			b.Fatal(err)
		}
		sinkRes = res
	}
}

func BenchmarkDecompose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 32, 64} {
		a := RandSymmetric(b, n, 606)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				res, err := tridiag.Decompose(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
	}
}
