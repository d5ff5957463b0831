// Command percolationstats estimates the percolation threshold of an n×n
// grid over repeated random trials.
//
//	percolationstats [flags] <n> <trials>
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/percolation/internal/cli"
)

func main() {
	if err := cli.NewStatsCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "percolationstats:", err)
		os.Exit(1)
	}
}
