// SPDX-License-Identifier: MIT

package modal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symeig/matrix"
	"github.com/katalvlaran/symeig/tridiag"
)

// Modes is the modal decomposition of a Chain. Column j of Shapes is the mode
// shape that oscillates at Frequencies[j] = √Eigenvalues[j] rad/s.
type Modes struct {
	Eigenvalues []float64
	Frequencies []float64
	Shapes      *matrix.Dense
	Iterations  int
}

// Solve builds the stiffness matrix of c and diagonalizes it with
// tridiag.QREigen, forwarding opts. Modes keep the solver's deflation order.
//
// Eigenvalues of a valid chain are positive; a rounding-level negative value
// is clamped to a zero frequency.
//
// Errors: ErrInvalidChain, tridiag.ErrNotConverged (with a nil Modes).
func Solve(c Chain, opts ...tridiag.Option) (*Modes, error) {
	t, err := c.Stiffness()
	if err != nil {
		return nil, err
	}
	res, err := tridiag.QREigen(t.Diagonal, t.OffDiagonal, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}

	freq := make([]float64, len(res.Eigenvalues))
	for j, lambda := range res.Eigenvalues {
		freq[j] = math.Sqrt(math.Max(lambda, 0))
	}

	return &Modes{
		Eigenvalues: res.Eigenvalues,
		Frequencies: freq,
		Shapes:      res.Vectors,
		Iterations:  res.Iterations,
	}, nil
}

// ModalCoordinates returns Y(0) = Vᵗ·X(0).
// Errors: ErrDimensionMismatch.
func (m *Modes) ModalCoordinates(x0 []float64) ([]float64, error) {
	vt, err := matrix.Transpose(m.Shapes)
	if err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}
	y0, err := matrix.MatVec(vt, x0)
	if err != nil {
		return nil, fmt.Errorf("modal: initial displacement: %w", err)
	}

	return y0, nil
}

// Amplitudes returns the n×n table a[i][j] = V[i,j]·Y(0)_j, so that
// X(t)_i = Σ_j a[i][j]·cos(ω_j·t).
// Errors: ErrDimensionMismatch.
func (m *Modes) Amplitudes(x0 []float64) ([][]float64, error) {
	amp, err := m.amplitudes(x0)
	if err != nil {
		return nil, err
	}
	n := amp.Rows()
	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if out[i][j], err = amp.At(i, j); err != nil {
				return nil, fmt.Errorf("modal: %w", err)
			}
		}
	}

	return out, nil
}

// amplitudes is V·diag(Y(0)).
func (m *Modes) amplitudes(x0 []float64) (*matrix.Dense, error) {
	y0, err := m.ModalCoordinates(x0)
	if err != nil {
		return nil, err
	}
	amp, err := matrix.ScaleCols(m.Shapes, y0)
	if err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}

	return amp, nil
}

// Displacement returns X(t) for the chain released at rest from x0.
// X(0) reproduces x0 up to rounding.
// Errors: ErrDimensionMismatch.
func (m *Modes) Displacement(x0 []float64, t float64) ([]float64, error) {
	amp, err := m.amplitudes(x0)
	if err != nil {
		return nil, err
	}
	phase := make([]float64, len(m.Frequencies))
	for j, w := range m.Frequencies {
		phase[j] = math.Cos(w * t)
	}
	x, err := matrix.MatVec(amp, phase)
	if err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}

	return x, nil
}
