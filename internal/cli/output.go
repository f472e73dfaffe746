// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symeig/matrix"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Solver failure (iteration ceiling reached)
	ExitCommandError = 2 // Command error (bad flags, unreadable or invalid input)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command reports as text or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Emit writes report as YAML, or calls text for the human-readable form.
func (f *OutputFormatter) Emit(report any, text func(io.Writer) error) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return WrapExitError(ExitFailure, "encode yaml", err)
		}
		return enc.Close()
	}

	return text(f.Writer)
}

// writeVector prints one row of fixed-width values.
func writeVector(w io.Writer, values []float64) error {
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "%12.6f", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// denseRows converts an r×c matrix to [][]float64 for reporting.
func denseRows(m *matrix.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.Rows())
	var i, j int
	for i = range out {
		out[i] = make([]float64, m.Cols())
		for j = range out[i] {
			out[i][j], _ = m.At(i, j)
		}
	}
	return out
}
