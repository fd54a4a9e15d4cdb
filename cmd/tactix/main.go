// tactix builds two-choice payoff matrices (Prisoner's Dilemma and friends)
// and lets you play single rounds of them in the terminal.
//
// Usage:
//
//	tactix show              - Build a matrix and print it
//	tactix play              - Play one round at the prompt
//	tactix dashboard         - Play rounds in a full-screen dashboard
//	tactix labels            - List the strategy label catalog
//	tactix presets           - List the built-in matrices
//
// Global flags:
//
//	--config <path>      - Game file (default: ~/.tactix/game.yaml, ./configs/game.yaml)
//	--seed <value>       - Seed for seeded mode and the random opponent
//	--log-level <level>  - debug, info, warn, error (default: warn)
//
// TACTIX_CONFIG, TACTIX_SEED and TACTIX_LOG_LEVEL set the same values from
// the environment; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tactix/internal/config"
	"github.com/vovakirdan/tactix/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	logger = logging.Discard()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tactix",
	Short: "Tactix - two-choice payoff matrices in your terminal",
	Long: `Tactix builds the payoff matrix of a two-player, two-choice game such as
the Prisoner's Dilemma and lets you play single rounds of it.

Matrices are built in one of three modes:
  randomized  - every payoff drawn from [min, max]
  seeded      - like randomized, reproducible from --seed
  customized  - payoffs from a game file or a preset

Available commands:
  show       - Build a matrix and print it
  play       - Play one round at the prompt
  dashboard  - Play rounds in a full-screen dashboard
  labels     - List the strategy label catalog
  presets    - List the built-in matrices

Examples:
  tactix show
  tactix show --mode seeded --seed 2024 --random-labels
  tactix play --preset chicken --opponent human
  tactix dashboard --min 0 --max 100
  tactix show --config ./stag-hunt.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game file YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for seeded mode and opponent picks (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(presetsCmd)
}

// setup merges environment settings under the flags and creates the logger.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		flagConfig = env.ConfigPath
	}
	if !flags.Changed("seed") {
		flagSeed = env.Seed
	}
	if !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}

	l, err := logging.New(flagLogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("settings", "config", flagConfig, "seed", flagSeed, "level", logger.GetLevel())
	return nil
}
