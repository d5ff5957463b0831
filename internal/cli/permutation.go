package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/randqueue"
)

// ErrNegativeCount indicates a negative k for the permutation command.
var ErrNegativeCount = errors.New("cli: item count must be non-negative")

// NewPermutationCommand returns the permutation command:
//
//	permutation <k> < items.txt
//
// It reads whitespace-separated strings from stdin and prints k of them,
// uniformly at random, each at most once.
func NewPermutationCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "permutation [flags] [--] <k>",
		Short:         "Print k random items from standard input",
		Long: `permutation reads whitespace-separated strings from standard input and
prints k of them, uniformly at random, each at most once.

Arguments that start with a dash are read as flags; put them after "--",
as in: permutation -- -1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPermutation(cmd, v, args)
		},
	}
	addCommonFlags(cmd, v)

	return cmd
}

func runPermutation(cmd *cobra.Command, v *viper.Viper, args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("item count: %w", err)
	}
	if k < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, k)
	}

	env, err := prepare(cmd, v)
	if err != nil {
		return err
	}

	q := randqueue.New[string](env.newRand())
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		q.Enqueue(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	env.logger.Debug("input read", "items", q.Len(), "k", k, "seed", env.seed)

	out := cmd.OutOrStdout()
	for i := 0; i < k; i++ {
		item, err := q.Dequeue()
		if err != nil {
			return fmt.Errorf("item %d of %d: %w", i+1, k, err)
		}
		fmt.Fprintln(out, item)
	}

	return nil
}
