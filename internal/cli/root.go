// Package cli implements the percolationstats and permutation commands.
package cli

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/logging"
)

// runEnv carries what every command resolves before doing its work.
type runEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	seed   int64
}

// addCommonFlags registers the flags shared by both commands and binds them
// into v so flags take precedence over env and file values.
func addCommonFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().StringP("config", "c", "", "config file (default is ./percolation.yaml)")
	cmd.Flags().Int64("seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "", "log format: text or json")

	_ = v.BindPFlag("simulation.seed", cmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("logging.level", cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("logging.format", cmd.Flags().Lookup("log-format"))
}

// prepare loads configuration, builds the logger and fixes the seed.
func prepare(cmd *cobra.Command, v *viper.Viper) (*runEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format).
		With("command", cmd.Name(), "run_id", uuid.NewString())

	return &runEnv{cfg: cfg, logger: logger, seed: seed}, nil
}

// newRand returns the command's random generator.
func (e *runEnv) newRand() *rand.Rand {
	return rand.New(rand.NewSource(e.seed))
}
