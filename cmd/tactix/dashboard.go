package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tactix/internal/platform/tui"
)

var flagTheme string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Play rounds in a full-screen dashboard",
	Long: `Opens a full-screen view of the payoff grid. Every key press plays a
round against a random opponent; the played cell is highlighted and the
rounds are listed below the grid.

Controls:
  A / 1     - Choose the first strategy
  B / 2     - Choose the second strategy
  N         - New matrix (random modes; seeded mode advances the seed)
  ?         - Toggle help
  Q/Ctrl+C  - Quit

Examples:
  tactix dashboard
  tactix dashboard --mode seeded --seed 42
  tactix dashboard --preset chicken --theme monochrome`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	addBuildFlags(dashboardCmd)
	dashboardCmd.Flags().StringVar(&flagTheme, "theme", "default",
		"Color theme: "+strings.Join(tui.ThemeNames(), ", "))
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	b, err := buildBuilder(cmd)
	if err != nil {
		return err
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	result, err := tui.RunDashboard(cmd.Context(), tui.Options{
		Builder: b,
		Theme:   &theme,
		Rand:    opponentRand(),
		Logger:  logger,
		Width:   width,
		Height:  height,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
	return nil
}
