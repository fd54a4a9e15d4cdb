package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the dashboard.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Grid styles
	GridHeader lipgloss.Style
	GridCell   lipgloss.Style
	GridPlayed lipgloss.Style // cell of the last round
	GridBorder lipgloss.Style

	Result lipgloss.Style
	Totals lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style

	// History table
	HistoryHeader lipgloss.Style
	HistoryRow    lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		GridHeader: cell.Foreground(lipgloss.Color("51")).Bold(true),
		GridCell:   cell.Foreground(lipgloss.Color("252")),
		GridPlayed: cell.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		GridBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Result: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Totals: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		HistoryHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true).
			Padding(0, 1),
		HistoryRow: lipgloss.NewStyle().Padding(0, 1),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	cell := lipgloss.NewStyle().Padding(0, 1)
	theme.Title = lipgloss.NewStyle().Bold(true)
	theme.Subtitle = lipgloss.NewStyle()
	theme.GridHeader = cell.Bold(true)
	theme.GridCell = cell
	theme.GridPlayed = cell.Reverse(true)
	theme.GridBorder = lipgloss.NewStyle()
	theme.Result = lipgloss.NewStyle()
	theme.Totals = lipgloss.NewStyle().Bold(true)
	theme.Muted = lipgloss.NewStyle().Faint(true)
	theme.Error = lipgloss.NewStyle().Bold(true)
	return theme
}

var themes = map[string]func() Theme{
	"default":    DefaultTheme,
	"monochrome": MonochromeTheme,
}

// ThemeNames lists the selectable themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a theme by name. An empty name selects the default.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	f, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("tui: unknown theme %q (available: %v)", name, ThemeNames())
	}
	return f(), nil
}
