// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symeig/matrix"
	"github.com/katalvlaran/symeig/modal"
	"github.com/katalvlaran/symeig/tridiag"
)

// Problem is the YAML input of the solve command. Exactly one form is set:
// a dense symmetric Matrix, or the Diagonal/OffDiagonal bands of a symmetric
// tridiagonal matrix.
type Problem struct {
	Matrix      [][]float64 `yaml:"matrix,omitempty"`
	Diagonal    []float64   `yaml:"diagonal,omitempty"`
	OffDiagonal []float64   `yaml:"offDiagonal,omitempty"`
}

// IsDense reports whether the problem carries a dense matrix.
func (p *Problem) IsDense() bool { return len(p.Matrix) > 0 }

// Dense returns the problem as a matrix, expanding the bands when needed.
func (p *Problem) Dense() (*matrix.Dense, error) {
	if p.IsDense() {
		return matrix.NewFromRows(p.Matrix)
	}
	t, err := tridiag.NewSymTridiagonal(p.Diagonal, p.OffDiagonal)
	if err != nil {
		return nil, err
	}
	return t.Dense()
}

// Validate checks that exactly one of the two forms is present.
func (p *Problem) Validate() error {
	hasBands := len(p.Diagonal) > 0 || len(p.OffDiagonal) > 0
	switch {
	case p.IsDense() && hasBands:
		return NewExitError(ExitCommandError, "problem sets both matrix and diagonal/offDiagonal")
	case !p.IsDense() && !hasBands:
		return NewExitError(ExitCommandError, "problem sets neither matrix nor diagonal")
	}
	return nil
}

// readInput returns the bytes at path, or all of stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "read stdin", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read %s", path), err)
	}
	return data, nil
}

// decodeStrict unmarshals YAML into out, rejecting unknown keys.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return NewExitError(ExitCommandError, "empty input")
		}
		return WrapExitError(ExitCommandError, "decode yaml", err)
	}
	return nil
}

// LoadProblem reads and validates a solve problem from path ("-" for stdin).
func LoadProblem(path string, stdin io.Reader) (*Problem, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	var p Problem
	if err = decodeStrict(data, &p); err != nil {
		return nil, err
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadChain reads a spring-mass chain from path ("-" for stdin).
func LoadChain(path string, stdin io.Reader) (modal.Chain, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return modal.Chain{}, err
	}
	var c modal.Chain
	if err = decodeStrict(data, &c); err != nil {
		return modal.Chain{}, err
	}
	if err = c.Validate(); err != nil {
		return modal.Chain{}, WrapExitError(ExitCommandError, "invalid chain", err)
	}
	return c, nil
}
