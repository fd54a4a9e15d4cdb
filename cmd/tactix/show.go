package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tactix/internal/config"
)

var flagExport string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Build a matrix and print it",
	Long: `Builds a payoff matrix from the game file and flags, then prints the
grid and the options it was built with.

With --export the exact matrix is also written as a customized game file,
so a random or seeded draw can be kept and replayed later.

Examples:
  tactix show
  tactix show --min 0 --max 3
  tactix show --mode seeded --seed 2024
  tactix show --preset stag_hunt --label-a deer
  tactix show --export ./keep.yaml`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	addBuildFlags(showCmd)
	showCmd.Flags().StringVar(&flagExport, "export", "", "Write the matrix to a game file")
}

func runShow(cmd *cobra.Command, _ []string) error {
	tbl, err := buildTable(cmd)
	if err != nil {
		return err
	}

	if err := tbl.Print(cmd.OutOrStdout()); err != nil {
		return err
	}
	printSummary(cmd, tbl)

	if flagExport == "" {
		return nil
	}

	data, err := config.Marshal(config.FromConfiguration(tbl.Configuration()))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(flagExport, data, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	logger.Info("matrix exported", "path", flagExport)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", flagExport)
	return nil
}
