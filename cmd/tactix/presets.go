package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tactix/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in matrices",
	Long:  `Shows every preset that --preset and the preset field of a game file accept.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets available.")
		return nil
	}

	fmt.Fprintln(out, "Available presets:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range presets {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tactix show --preset <id>' to see a preset's grid.")
	return nil
}
