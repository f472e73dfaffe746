// SPDX-License-Identifier: MIT

// Command symeig computes eigendecompositions of real symmetric matrices.
//
//	symeig solve problem.yaml --sorted
//	symeig chain --preset alternating --x0 1,0,0,0,0,0,0,0,0,0 --time 0,1,2
//	symeig compare --sizes 4,8,16
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/symeig/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "symeig:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
