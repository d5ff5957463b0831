package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/threshold"
)

// NewStatsCommand returns the percolationstats command:
//
//	percolationstats <n> <trials>
//
// It prints the mean, standard deviation and 95% confidence interval of the
// percolation threshold over trials experiments on an n×n grid.
func NewStatsCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "percolationstats [flags] [--] <n> <trials>",
		Short: "Estimate the percolation threshold by Monte-Carlo simulation",
		Long: `percolationstats opens random sites of an n-by-n grid until it percolates,
repeats the experiment the given number of times, and reports the mean,
standard deviation and 95% confidence interval of the open-site fraction.

Arguments that start with a dash are read as flags; put them after "--",
as in: percolationstats -- -5 3`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, v, args)
		},
	}
	addCommonFlags(cmd, v)
	cmd.Flags().String("sampler", "", "site sampler: rejection or shuffled")
	_ = v.BindPFlag("simulation.sampler", cmd.Flags().Lookup("sampler"))

	return cmd
}

func runStats(cmd *cobra.Command, v *viper.Viper, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("grid dimension: %w", err)
	}
	trials, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("trial count: %w", err)
	}

	env, err := prepare(cmd, v)
	if err != nil {
		return err
	}
	sampler, err := threshold.ParseSampler(env.cfg.Simulation.Sampler)
	if err != nil {
		return err
	}

	start := time.Now()
	env.logger.Info("simulation started",
		"n", n,
		"trials", trials,
		"sampler", sampler.String(),
		"seed", env.seed,
	)

	est, err := threshold.New(n, trials,
		threshold.WithSeed(env.seed),
		threshold.WithSampler(sampler),
		threshold.WithLogger(env.logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mean = %f\n", est.Mean())
	fmt.Fprintf(out, "stddev = %f\n", est.StdDev())
	fmt.Fprintf(out, "95%% confidence interval = %f, %f\n", est.ConfidenceLo(), est.ConfidenceHi())

	env.logger.Info("simulation finished",
		"mean", est.Mean(),
		"stddev", est.StdDev(),
		"elapsed", time.Since(start),
	)

	return nil
}
