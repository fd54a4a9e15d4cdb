package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tactix/internal/platform/console"
)

var flagOpponent string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round at the prompt",
	Long: `Prints the payoff grid and plays a single round. Player 1 enters A or B;
anything else counts as A. Player 2 is either a single random pick or a
second prompt on the same terminal.

Examples:
  tactix play
  tactix play --opponent human
  tactix play --preset prisoners_dilemma --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addBuildFlags(playCmd)
	playCmd.Flags().StringVar(&flagOpponent, "opponent", string(console.OpponentRandom), "Player 2: random or human")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	opponent, err := console.ParseOpponent(flagOpponent)
	if err != nil {
		return err
	}

	tbl, err := buildTable(cmd)
	if err != nil {
		return err
	}

	session := console.Session{
		In:       os.Stdin,
		Out:      cmd.OutOrStdout(),
		Table:    tbl,
		Opponent: opponent,
		Rand:     opponentRand(),
		Logger:   logger,
	}

	_, err = session.Run(cmd.Context())
	if errors.Is(err, console.ErrInputClosed) {
		logger.Warn("no choice entered")
		return nil
	}
	return err
}
