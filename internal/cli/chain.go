// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/symeig/modal"
	"github.com/katalvlaran/symeig/tridiag"
)

// ChainPresets maps --preset names to the built-in chains.
var ChainPresets = map[string]func() modal.Chain{
	"ascending":   modal.AscendingChain,
	"alternating": modal.AlternatingChain,
}

// ModeReport is one vibration mode.
type ModeReport struct {
	Eigenvalue float64   `yaml:"eigenvalue"`
	Frequency  float64   `yaml:"frequency"`
	Shape      []float64 `yaml:"shape"`
}

// DisplacementReport is X(t) at one time.
type DisplacementReport struct {
	Time float64   `yaml:"time"`
	X    []float64 `yaml:"x"`
}

// ChainReport is the output of the chain command. Modes are ordered by
// ascending frequency; ModalCoordinates and the columns of Amplitudes follow
// the same order. Amplitudes[i][j] is the share of mode j in x0[i], so each
// row sums to x0[i].
type ChainReport struct {
	Masses           int                  `yaml:"masses"`
	Mass             float64              `yaml:"mass"`
	Springs          []float64            `yaml:"springs"`
	Iterations       int                  `yaml:"iterations"`
	Modes            []ModeReport         `yaml:"modes"`
	X0               []float64            `yaml:"x0,omitempty"`
	ModalCoordinates []float64            `yaml:"modalCoordinates,omitempty"`
	Amplitudes       [][]float64          `yaml:"amplitudes,omitempty"`
	Displacements    []DisplacementReport `yaml:"displacements,omitempty"`
}

type chainFlags struct {
	preset string
	file   string
	x0     []float64
	times  []float64
}

// NewChainCommand creates the chain command.
func NewChainCommand(rootOpts *RootOptions) *cobra.Command {
	solver := &SolverFlags{SymmetryTol: tridiag.DefaultSymmetryTolerance}
	flags := &chainFlags{}

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Vibration modes of a fixed-fixed spring-mass chain",
		Long: `Solve the free vibration of n equal masses joined by n+1 springs.

The chain is a built-in preset (--preset ascending|alternating) or a YAML
file (--file) of the form:

  mass: 2
  springs: [42, 44, 46, 48, 50, 52]

With --x0 the initial displacement is split into modal coordinates
y0 = Vᵗ·x0 and the amplitude table V·diag(y0), whose rows sum back to x0.
Adding --time evaluates the displacement X(t) of the chain released at rest
from x0 at each time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChain(rootOpts, solver, flags, cmd)
		},
	}
	solver.register(cmd)
	cmd.Flags().StringVar(&flags.preset, "preset", "ascending", "built-in chain (ascending|alternating)")
	cmd.Flags().StringVar(&flags.file, "file", "", "YAML chain file, \"-\" for stdin (overrides --preset)")
	cmd.Flags().Float64SliceVar(&flags.x0, "x0", nil, "initial displacement, one value per mass")
	cmd.Flags().Float64SliceVar(&flags.times, "time", nil, "times at which to evaluate X(t)")

	return cmd
}

func (f *chainFlags) chain(cmd *cobra.Command) (modal.Chain, error) {
	if f.file != "" {
		return LoadChain(f.file, cmd.InOrStdin())
	}
	preset, ok := ChainPresets[f.preset]
	if !ok {
		return modal.Chain{}, NewExitError(ExitCommandError,
			fmt.Sprintf("unknown preset %q: must be ascending or alternating", f.preset))
	}
	return preset(), nil
}

func runChain(rootOpts *RootOptions, solver *SolverFlags, flags *chainFlags, cmd *cobra.Command) error {
	log := newLogger(rootOpts.Verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	opts, err := solver.options(log)
	if err != nil {
		return err
	}
	c, err := flags.chain(cmd)
	if err != nil {
		return err
	}
	if (len(flags.times) > 0 || len(flags.x0) > 0) && len(flags.x0) != c.Masses() {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("--x0 has %d values, chain has %d masses", len(flags.x0), c.Masses()))
	}

	modes, err := modal.Solve(c, opts...)
	if err != nil {
		if errors.Is(err, tridiag.ErrNotConverged) {
			return WrapExitError(ExitFailure, "not converged", err)
		}
		return WrapExitError(ExitCommandError, "solve chain", err)
	}
	log.Info("chain solved", zap.Int("masses", c.Masses()), zap.Int("sweeps", modes.Iterations))

	report := ChainReport{
		Masses:     c.Masses(),
		Mass:       c.Mass,
		Springs:    c.Springs,
		Iterations: modes.Iterations,
		Modes:      make([]ModeReport, len(modes.Eigenvalues)),
	}
	order := make([]int, len(modes.Eigenvalues))
	var i, j int
	for j = range order {
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool {
		return modes.Frequencies[order[x]] < modes.Frequencies[order[y]]
	})
	for j = range order {
		shape, err := modes.Shapes.Column(order[j])
		if err != nil {
			return WrapExitError(ExitFailure, "mode shape", err)
		}
		report.Modes[j] = ModeReport{
			Eigenvalue: modes.Eigenvalues[order[j]],
			Frequency:  modes.Frequencies[order[j]],
			Shape:      shape,
		}
	}

	if len(flags.x0) > 0 {
		y0, err := modes.ModalCoordinates(flags.x0)
		if err != nil {
			return WrapExitError(ExitCommandError, "modal coordinates", err)
		}
		amp, err := modes.Amplitudes(flags.x0)
		if err != nil {
			return WrapExitError(ExitCommandError, "amplitudes", err)
		}
		report.X0 = flags.x0
		report.ModalCoordinates = make([]float64, len(order))
		report.Amplitudes = make([][]float64, len(amp))
		for j = range order {
			report.ModalCoordinates[j] = y0[order[j]]
		}
		for i = range amp {
			report.Amplitudes[i] = make([]float64, len(order))
			for j = range order {
				report.Amplitudes[i][j] = amp[i][order[j]]
			}
		}
	}

	for _, t := range flags.times {
		x, err := modes.Displacement(flags.x0, t)
		if err != nil {
			return WrapExitError(ExitCommandError, "displacement", err)
		}
		report.Displacements = append(report.Displacements, DisplacementReport{Time: t, X: x})
	}

	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(report, report.writeText)
}

func (r ChainReport) writeText(w io.Writer) error {
	fmt.Fprintf(w, "chain: masses=%d mass=%g sweeps=%d\n", r.Masses, r.Mass, r.Iterations)
	for j, m := range r.Modes {
		fmt.Fprintf(w, "mode %2d: omega^2=%12.6f omega=%10.6f\n", j, m.Eigenvalue, m.Frequency)
		fmt.Fprint(w, "  shape")
		if err := writeVector(w, m.Shape); err != nil {
			return err
		}
	}
	if len(r.ModalCoordinates) > 0 {
		fmt.Fprint(w, "x0     ")
		if err := writeVector(w, r.X0); err != nil {
			return err
		}
		fmt.Fprint(w, "y0     ")
		if err := writeVector(w, r.ModalCoordinates); err != nil {
			return err
		}
		fmt.Fprintln(w, "amplitudes (row: mass, column: mode):")
	}
	for i, row := range r.Amplitudes {
		fmt.Fprintf(w, "  m%-4d", i)
		if err := writeVector(w, row); err != nil {
			return err
		}
	}
	if len(r.Displacements) > 0 {
		fmt.Fprintln(w, "displacement:")
	}
	for _, d := range r.Displacements {
		fmt.Fprintf(w, "  t=%8.3f", d.Time)
		if err := writeVector(w, d.X); err != nil {
			return err
		}
	}
	return nil
}
