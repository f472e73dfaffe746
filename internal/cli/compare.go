// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/symeig/tridiag"
)

// RunReport is one QR run on the constant tridiagonal matrix.
type RunReport struct {
	Iterations int     `yaml:"iterations"`
	Converged  bool    `yaml:"converged"`
	MaxError   float64 `yaml:"maxError"`
	MeanError  float64 `yaml:"meanError"`
}

// CompareRow pairs the shifted and unshifted runs for one size.
type CompareRow struct {
	Size      int       `yaml:"size"`
	Shifted   RunReport `yaml:"shifted"`
	Unshifted RunReport `yaml:"unshifted"`
}

// CompareReport is the output of the compare command.
type CompareReport struct {
	Diagonal    float64      `yaml:"diagonal"`
	OffDiagonal float64      `yaml:"offDiagonal"`
	Epsilon     float64      `yaml:"epsilon"`
	Rows        []CompareRow `yaml:"rows"`
}

type compareFlags struct {
	sizes   []int
	diag    float64
	off     float64
	epsilon float64
	maxIter int
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Shifted vs unshifted QR on the constant tridiagonal matrix",
		Long: `Run QR with and without the Wilkinson shift on the n×n symmetric
tridiagonal matrix with constant diagonal and off-diagonal, and report the
sweep count and the final eigenvalue error against the closed form
diag + 2·off·cos(iπ/(n+1)).

Unshifted runs that hit --max-iter are reported as not converged.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(rootOpts, flags, cmd)
		},
	}
	cmd.Flags().IntSliceVar(&flags.sizes, "sizes", []int{4, 8, 16, 32}, "matrix sizes")
	cmd.Flags().Float64Var(&flags.diag, "diag", 2, "constant diagonal")
	cmd.Flags().Float64Var(&flags.off, "off", -1, "constant off-diagonal")
	cmd.Flags().Float64Var(&flags.epsilon, "epsilon", tridiag.DefaultEpsilon, "deflation threshold")
	cmd.Flags().IntVar(&flags.maxIter, "max-iter", 100000, "sweep ceiling per run")

	return cmd
}

func runCompare(rootOpts *RootOptions, flags *compareFlags, cmd *cobra.Command) error {
	log := newLogger(rootOpts.Verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	solver := SolverFlags{Epsilon: flags.epsilon, MaxIter: flags.maxIter}
	if _, err := solver.options(log); err != nil {
		return err
	}

	report := CompareReport{Diagonal: flags.diag, OffDiagonal: flags.off, Epsilon: flags.epsilon}
	for _, n := range flags.sizes {
		if n < 1 {
			return NewExitError(ExitCommandError, fmt.Sprintf("--sizes: %d must be >= 1", n))
		}
		row := CompareRow{Size: n}
		var err error
		if row.Shifted, err = compareRun(n, flags, true); err != nil {
			return err
		}
		if row.Unshifted, err = compareRun(n, flags, false); err != nil {
			return err
		}
		log.Debug("compared",
			zap.Int("size", n),
			zap.Int("shifted", row.Shifted.Iterations),
			zap.Int("unshifted", row.Unshifted.Iterations),
		)
		report.Rows = append(report.Rows, row)
	}

	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(report, report.writeText)
}

// compareRun diagonalizes the constant matrix of size n and tracks the error
// against the closed-form eigenvalues after every sweep.
func compareRun(n int, flags *compareFlags, shift bool) (RunReport, error) {
	t, err := tridiag.Constant(n, flags.diag, flags.off)
	if err != nil {
		return RunReport{}, WrapExitError(ExitCommandError, "constant matrix", err)
	}
	tracker := tridiag.NewErrorTracker(tridiag.ConstantEigenvalues(n, flags.diag, flags.off))
	res, err := tridiag.QREigen(t.Diagonal, t.OffDiagonal, nil,
		tridiag.WithEpsilon(flags.epsilon),
		tridiag.WithSpectralShift(shift),
		tridiag.WithMaxIterations(flags.maxIter),
		tridiag.WithSweepHook(tracker.Hook()),
	)
	if err != nil && !errors.Is(err, tridiag.ErrNotConverged) {
		return RunReport{}, WrapExitError(ExitFailure, "qr", err)
	}

	out := RunReport{Iterations: res.Iterations, Converged: res.Converged}
	if samples := tracker.Samples(); len(samples) > 0 {
		last := samples[len(samples)-1]
		out.MaxError, out.MeanError = last.Max, last.Mean
	}
	return out, nil
}

func (r CompareReport) writeText(w io.Writer) error {
	fmt.Fprintf(w, "constant tridiagonal: diag=%g off=%g epsilon=%g\n", r.Diagonal, r.OffDiagonal, r.Epsilon)
	fmt.Fprintf(w, "%6s %10s %12s %10s %12s\n", "n", "shifted", "max error", "unshifted", "max error")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%6d %10s %12.3e %10s %12.3e\n",
			row.Size,
			sweepsLabel(row.Shifted), row.Shifted.MaxError,
			sweepsLabel(row.Unshifted), row.Unshifted.MaxError,
		)
	}
	return nil
}

// sweepsLabel prints the sweep count, starred when the run hit the ceiling.
func sweepsLabel(r RunReport) string {
	if r.Converged {
		return fmt.Sprintf("%d", r.Iterations)
	}
	return fmt.Sprintf("%d*", r.Iterations)
}
