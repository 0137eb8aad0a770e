// Command cluesolver is the command-line front end for the deduction solver.
package main

import (
	"fmt"
	"os"

	"github.com/kulgod/clues-solver/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
