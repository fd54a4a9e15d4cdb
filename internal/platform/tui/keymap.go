package tui

import "github.com/charmbracelet/bubbles/key"

// DashboardKeyMap defines the key bindings for the dashboard.
type DashboardKeyMap struct {
	ChooseA   key.Binding
	ChooseB   key.Binding
	NewMatrix key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ChooseA, k.ChooseB, k.NewMatrix, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k DashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ChooseA, k.ChooseB},
		{k.NewMatrix, k.Help, k.Quit},
	}
}

// DefaultDashboardKeyMap returns default key bindings. The help text of the
// choice keys is filled in with the current labels by the dashboard.
func DefaultDashboardKeyMap() DashboardKeyMap {
	return DashboardKeyMap{
		ChooseA: key.NewBinding(
			key.WithKeys("a", "1"),
			key.WithHelp("a", "choose A"),
		),
		ChooseB: key.NewBinding(
			key.WithKeys("b", "2"),
			key.WithHelp("b", "choose B"),
		),
		NewMatrix: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new matrix"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// withLabels updates the choice help text.
func (k DashboardKeyMap) withLabels(a, b string) DashboardKeyMap {
	k.ChooseA.SetHelp("a", a)
	k.ChooseB.SetHelp("b", b)
	return k
}
