package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tactix/internal/dilemma"
)

var flagLabelsPick bool

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List the strategy label catalog",
	Long: `Shows every label pair that --random-labels can pick from.

With --pick a single pair is chosen the same way a game does it: seeded
by --seed when one is given, random otherwise.`,
	Args: cobra.NoArgs,
	RunE: runLabels,
}

func init() {
	labelsCmd.Flags().BoolVar(&flagLabelsPick, "pick", false, "Pick one pair instead of listing all")
}

func runLabels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagLabelsPick {
		pair := dilemma.RandomLabelPair()
		if flagSeed != 0 {
			pair = dilemma.RandomLabelPairSeeded(flagSeed)
		}
		fmt.Fprintf(out, "%s / %s\n", pair.A, pair.B)
		return nil
	}

	pairs := dilemma.LabelPairs()

	// Calculate column widths
	maxALen := 1 // "A" header
	for _, p := range pairs {
		maxALen = max(maxALen, len(p.A))
	}

	fmt.Fprintln(out, "Label pairs:")
	fmt.Fprintln(out)

	// Print header
	fmt.Fprintf(out, "  %3s  %-*s  %s\n", "#", maxALen, "A", "B")
	fmt.Fprintf(out, "  %3s  %-*s  %s\n", "-", maxALen, "-", "-")

	for i, p := range pairs {
		fmt.Fprintf(out, "  %3d  %-*s  %s\n", i, maxALen, p.A, p.B)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use 'tactix show --random-labels' to play with a random pair.")
	return nil
}
