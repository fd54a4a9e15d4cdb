package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/vovakirdan/tactix/internal/dilemma"
)

// historyHeight is the number of rounds visible at once.
const historyHeight = 6

// Round is one played round of the dashboard session.
type Round struct {
	Number int
	P1, P2 dilemma.Choice
	Payoff dilemma.PayoffPair
}

// newHistoryTable creates the round history table.
func newHistoryTable(theme Theme, labelWidth int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player 1", Width: labelWidth},
		{Title: "Player 2", Width: labelWidth},
		{Title: "Payoff", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(historyHeight),
	)

	s := table.DefaultStyles()
	s.Header = theme.HistoryHeader
	s.Cell = theme.HistoryRow
	s.Selected = theme.HistoryRow
	t.SetStyles(s)

	return t
}

// historyRows converts rounds into table rows, labelling choices with tbl.
func historyRows(rounds []Round, tbl dilemma.Table) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Number),
			tbl.Label(r.P1),
			tbl.Label(r.P2),
			r.Payoff.String(),
		}
	}
	return rows
}
