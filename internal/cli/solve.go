// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/symeig/tridiag"
)

// SolverFlags are the tridiag options shared by solve and chain.
type SolverFlags struct {
	Epsilon     float64
	NoShift     bool
	MaxIter     int
	SymmetryTol float64
}

func (f *SolverFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.Epsilon, "epsilon", tridiag.DefaultEpsilon, "deflation threshold on |offDiagonal|")
	cmd.Flags().BoolVar(&f.NoShift, "no-shift", false, "disable the Wilkinson shift")
	cmd.Flags().IntVar(&f.MaxIter, "max-iter", tridiag.DefaultMaxIterations, "sweep ceiling (0 = unlimited)")
}

// options validates the flags and converts them to tridiag options.
func (f *SolverFlags) options(log *zap.Logger) ([]tridiag.Option, error) {
	if !(f.Epsilon > 0) || math.IsInf(f.Epsilon, 0) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("--epsilon %g: must be finite and > 0", f.Epsilon))
	}
	if f.MaxIter < 0 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("--max-iter %d: must be >= 0", f.MaxIter))
	}
	if math.IsNaN(f.SymmetryTol) || math.IsInf(f.SymmetryTol, 0) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("--symmetry-tol %g: must be finite", f.SymmetryTol))
	}

	opts := []tridiag.Option{
		tridiag.WithEpsilon(f.Epsilon),
		tridiag.WithSpectralShift(!f.NoShift),
		tridiag.WithMaxIterations(f.MaxIter),
		sweepLogger(log),
	}
	if f.SymmetryTol >= 0 {
		opts = append(opts, tridiag.WithSymmetryCheck(f.SymmetryTol))
	}
	return opts, nil
}

// SolveReport is the output of the solve command.
type SolveReport struct {
	Size        int         `yaml:"size"`
	Eigenvalues []float64   `yaml:"eigenvalues"`
	Vectors     [][]float64 `yaml:"vectors"`
	Iterations  int         `yaml:"iterations"`
	Converged   bool        `yaml:"converged"`
	Residual    float64     `yaml:"residual"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &SolverFlags{SymmetryTol: tridiag.DefaultSymmetryTolerance}
	var sorted bool

	cmd := &cobra.Command{
		Use:   "solve <problem.yaml|->",
		Short: "Eigendecomposition of a symmetric matrix",
		Long: `Compute eigenvalues and eigenvectors of a real symmetric matrix.

The problem file is YAML with either a dense matrix:

  matrix:
    - [2, 4, 1, 1]
    - [4, 2, 1, 1]
    - [1, 1, 1, 2]
    - [1, 1, 2, 1]

or the bands of a symmetric tridiagonal matrix:

  diagonal: [2, 2, 2]
  offDiagonal: [-1, -1]

Use "-" to read the problem from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, flags, sorted, args[0], cmd)
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64Var(&flags.SymmetryTol, "symmetry-tol", tridiag.DefaultSymmetryTolerance,
		"reject dense input with |A[i,j]-A[j,i]| above this (negative = off)")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order eigenpairs by descending eigenvalue")

	return cmd
}

func runSolve(rootOpts *RootOptions, flags *SolverFlags, sorted bool, path string, cmd *cobra.Command) error {
	log := newLogger(rootOpts.Verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	opts, err := flags.options(log)
	if err != nil {
		return err
	}
	p, err := LoadProblem(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	a, err := p.Dense()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid problem", err)
	}

	var res *tridiag.Result
	if p.IsDense() {
		res, err = tridiag.Decompose(a, opts...)
	} else {
		res, err = tridiag.QREigen(p.Diagonal, p.OffDiagonal, nil, opts...)
	}
	var failure error
	switch {
	case errors.Is(err, tridiag.ErrNotConverged) && res != nil:
		log.Warn("iteration ceiling reached", zap.Int("sweeps", res.Iterations), zap.Error(err))
		failure = WrapExitError(ExitFailure, "not converged", err)
	case err != nil:
		return WrapExitError(ExitCommandError, "solve", err)
	}

	if sorted {
		if res, err = res.Sorted(); err != nil {
			return WrapExitError(ExitFailure, "sort", err)
		}
	}
	residual, err := res.Residual(a)
	if err != nil {
		return WrapExitError(ExitFailure, "residual", err)
	}
	log.Info("solved",
		zap.Int("size", len(res.Eigenvalues)),
		zap.Int("sweeps", res.Iterations),
		zap.Bool("converged", res.Converged),
		zap.Float64("residual", residual),
	)

	report := SolveReport{
		Size:        len(res.Eigenvalues),
		Eigenvalues: res.Eigenvalues,
		Vectors:     denseRows(res.Vectors),
		Iterations:  res.Iterations,
		Converged:   res.Converged,
		Residual:    residual,
	}
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	if err = formatter.Emit(report, report.writeText); err != nil {
		return err
	}

	return failure
}

func (r SolveReport) writeText(w io.Writer) error {
	fmt.Fprintf(w, "eigenvalues: n=%d sweeps=%d converged=%t\n", r.Size, r.Iterations, r.Converged)
	for j, lambda := range r.Eigenvalues {
		fmt.Fprintf(w, "%4d %12.6f\n", j, lambda)
	}
	fmt.Fprintln(w, "eigenvectors:")
	for _, row := range r.Vectors {
		if err := writeVector(w, row); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "residual: %.3e\n", r.Residual)
	return err
}
