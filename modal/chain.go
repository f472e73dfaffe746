// SPDX-License-Identifier: MIT

package modal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/symeig/matrix"
	"github.com/katalvlaran/symeig/tridiag"
)

var (
	// ErrInvalidChain reports a physically meaningless chain: fewer than two
	// springs, a non-positive or non-finite mass, or a non-positive or
	// non-finite spring constant.
	ErrInvalidChain = errors.New("modal: invalid spring-mass chain")

	// ErrDimensionMismatch reports an initial condition whose length differs
	// from the number of masses. Same sentinel as matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// Chain is a fixed-fixed spring-mass chain: len(Springs)−1 equal masses of
// Mass kilograms, with Springs[i] (N/m) between mass i−1 and mass i and the
// first and last springs anchored to walls.
type Chain struct {
	Mass    float64   `yaml:"mass"`
	Springs []float64 `yaml:"springs"`
}

// Masses returns the number of masses, len(Springs)−1 (0 for an empty chain).
func (c Chain) Masses() int {
	if len(c.Springs) == 0 {
		return 0
	}

	return len(c.Springs) - 1
}

// Validate checks the chain is physically meaningful.
// Errors: ErrInvalidChain.
func (c Chain) Validate() error {
	if len(c.Springs) < 2 {
		return fmt.Errorf("%d springs, need at least 2: %w", len(c.Springs), ErrInvalidChain)
	}
	if !(c.Mass > 0) || math.IsInf(c.Mass, 0) {
		return fmt.Errorf("mass %g: %w", c.Mass, ErrInvalidChain)
	}
	for i, k := range c.Springs {
		if !(k > 0) || math.IsInf(k, 0) {
			return fmt.Errorf("spring %d constant %g: %w", i, k, ErrInvalidChain)
		}
	}

	return nil
}

// Stiffness returns A = K/m as band storage:
// diagonal[i] = (k_i + k_{i+1})/m, offDiagonal[i] = −k_{i+1}/m.
//
// Errors: ErrInvalidChain.
func (c Chain) Stiffness() (*tridiag.SymTridiagonal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n := c.Masses()
	t := &tridiag.SymTridiagonal{
		Diagonal:    make([]float64, n),
		OffDiagonal: make([]float64, n-1),
	}
	var i int
	for i = 0; i < n; i++ {
		t.Diagonal[i] = (c.Springs[i] + c.Springs[i+1]) / c.Mass
	}
	for i = 0; i < n-1; i++ {
		t.OffDiagonal[i] = -c.Springs[i+1] / c.Mass
	}

	return t, nil
}

// AscendingChain returns the five-mass chain with m = 2 kg and
// k_i = 40 + 2i N/m, i = 1..6.
func AscendingChain() Chain {
	k := make([]float64, 6)
	for i := range k {
		k[i] = 40 + 2*float64(i+1)
	}

	return Chain{Mass: 2, Springs: k}
}

// AlternatingChain returns the ten-mass chain with m = 2 kg and
// k_i = 40 + 2·(−1)^i N/m, i = 1..11.
func AlternatingChain() Chain {
	k := make([]float64, 11)
	for i := range k {
		if (i+1)%2 == 0 {
			k[i] = 42
		} else {
			k[i] = 38
		}
	}

	return Chain{Mass: 2, Springs: k}
}
