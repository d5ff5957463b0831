// Command permutation prints k items chosen uniformly at random from the
// whitespace-separated strings on standard input.
//
//	permutation [flags] <k> < items.txt
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/percolation/internal/cli"
)

func main() {
	if err := cli.NewPermutationCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "permutation:", err)
		os.Exit(1)
	}
}
