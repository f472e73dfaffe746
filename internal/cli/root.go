// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// NewRootCommand creates the root command for the symeig CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "symeig",
		Short: "symeig - symmetric eigensolver",
		Long: `Eigenvalues and eigenvectors of real symmetric matrices.

Dense input is reduced to tridiagonal form by Householder reflections, then
diagonalized by implicit QR sweeps with Givens rotations, Wilkinson shift
and deflation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every QR sweep to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewChainCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))

	return cmd
}
