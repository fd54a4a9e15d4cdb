package dilemma

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CornerHeader is the top-left cell of the rendered grid.
const CornerHeader = `P1 \ P2`

// Table wraps a Configuration with the queries used during play.
type Table struct {
	cfg Configuration
}

// NewTable wraps cfg.
func NewTable(cfg Configuration) Table {
	return Table{cfg: cfg}
}

// Configuration returns the wrapped configuration.
func (t Table) Configuration() Configuration { return t.cfg }

func (t Table) LabelA() string { return t.cfg.LabelA() }
func (t Table) LabelB() string { return t.cfg.LabelB() }

// Label returns the strategy name for choice.
func (t Table) Label(choice Choice) string { return t.cfg.Label(choice) }

// Lookup returns the payoffs when player 1 picks p1 and player 2 picks p2.
func (t Table) Lookup(p1, p2 Choice) PayoffPair {
	return t.cfg.Outcome(p1, p2)
}

// Cells returns the 3x3 display grid: a header row with player 2's labels,
// then one row per player 1 choice.
func (t Table) Cells() [3][3]string {
	a, b := t.cfg.LabelA(), t.cfg.LabelB()
	return [3][3]string{
		{CornerHeader, a, b},
		{a, t.cfg.AtlantisAtlantis().String(), t.cfg.AtlantisOlympus().String()},
		{b, t.cfg.OlympusAtlantis().String(), t.cfg.OlympusOlympus().String()},
	}
}

// Render draws the grid as bordered text.
func (t Table) Render() string {
	return t.StyledTable(nil).String()
}

// StyledTable returns the grid as a lipgloss table so callers can restyle
// it. A nil style func leaves every cell padded but unstyled.
func (t Table) StyledTable(style table.StyleFunc) *table.Table {
	cells := t.Cells()
	if style == nil {
		cell := lipgloss.NewStyle().Padding(0, 1)
		style = func(row, col int) lipgloss.Style { return cell }
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(style).
		Headers(cells[0][:]...).
		Row(cells[1][:]...).
		Row(cells[2][:]...)
}

// Print writes the rendered grid followed by a newline.
func (t Table) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// Describe narrates the result of one round.
func (t Table) Describe(p1, p2 Choice) string {
	payoff := t.Lookup(p1, p2)
	if p1 == p2 {
		return fmt.Sprintf("Both players chose %s. Player 1 scored %d, Player 2 scored %d.",
			t.Label(p1), payoff.First(), payoff.Second())
	}
	return fmt.Sprintf("Player 1 chose %s, Player 2 chose %s. Player 1 scored %d, Player 2 scored %d.",
		t.Label(p1), t.Label(p2), payoff.First(), payoff.Second())
}

// String summarizes the table's options.
func (t Table) String() string {
	return fmt.Sprintf("Game Grid with Following Options:\n%s\n", t.cfg)
}
