// Package tui provides the Bubble Tea dashboard for tactix: the payoff grid,
// one-key rounds against a random opponent and the history of the session.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tactix/internal/dilemma"
	"github.com/vovakirdan/tactix/internal/logging"
)

// Options configures the dashboard.
type Options struct {
	Builder dilemma.Builder
	Theme   *Theme      // nil means DefaultTheme
	Rand    *rand.Rand  // opponent picks; nil means an entropy-seeded generator
	Logger  *log.Logger // nil discards
	Width   int
	Height  int
}

// DashboardModel is the Bubble Tea model for the dashboard screen.
type DashboardModel struct {
	builder dilemma.Builder
	table   dilemma.Table
	rng     *rand.Rand
	logger  *log.Logger
	theme   Theme

	keys    DashboardKeyMap
	help    help.Model
	history table.Model

	rounds         []Round
	total1, total2 uint64

	width    int
	height   int
	err      error
	quitting bool
}

// NewDashboardModel creates a new dashboard model and builds the first matrix.
func NewDashboardModel(opts Options) DashboardModel {
	if opts.Rand == nil {
		opts.Rand = dilemma.NewRand(0)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	m := DashboardModel{
		builder: opts.Builder,
		rng:     opts.Rand,
		logger:  opts.Logger,
		theme:   theme,
		keys:    DefaultDashboardKeyMap(),
		help:    h,
		width:   opts.Width,
		height:  opts.Height,
	}
	m.keys.NewMatrix.SetEnabled(m.builder.Mode() != dilemma.ModeCustomized)
	m.setTable(dilemma.NewTable(m.builder.Build()))

	return m
}

// setTable switches to a new matrix and clears the session.
func (m *DashboardModel) setTable(tbl dilemma.Table) {
	m.table = tbl
	m.rounds = nil
	m.total1, m.total2 = 0, 0
	m.keys = m.keys.withLabels(tbl.LabelA(), tbl.LabelB())

	labelWidth := max(len(tbl.LabelA()), len(tbl.LabelB()), len("Player 2")) + 2
	m.history = newHistoryTable(m.theme, labelWidth)

	m.logger.Debug("matrix ready", "config", tbl.Configuration().String())
}

// Init initializes the dashboard model.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ChooseA):
			m.play(dilemma.ChoiceAtlantis)

		case key.Matches(msg, m.keys.ChooseB):
			m.play(dilemma.ChoiceOlympus)

		case key.Matches(msg, m.keys.NewMatrix):
			m.regenerate()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// play records one round: player 1 picks p1, the opponent picks at random.
func (m *DashboardModel) play(p1 dilemma.Choice) {
	p2 := dilemma.RandomChoice(m.rng)
	payoff := m.table.Lookup(p1, p2)

	m.rounds = append(m.rounds, Round{
		Number: len(m.rounds) + 1,
		P1:     p1,
		P2:     p2,
		Payoff: payoff,
	})
	m.total1 += uint64(payoff.First())
	m.total2 += uint64(payoff.Second())
	m.err = nil

	m.history.SetRows(historyRows(m.rounds, m.table))
	m.history.GotoBottom()

	m.logger.Debug("round played", "round", len(m.rounds), "p1", p1, "p2", p2, "payoff", payoff)
}

// regenerate draws a new matrix. Seeded matrices advance the seed by one so
// the sequence of matrices is still reproducible.
func (m *DashboardModel) regenerate() {
	b := m.builder
	if seed, ok := m.table.Configuration().Seed(); ok {
		next, err := b.WithSeed(seed + 1)
		if err != nil {
			m.err = err
			m.logger.Error("cannot advance seed", "err", err)
			return
		}
		b = next
	}
	m.builder = b
	m.err = nil
	m.setTable(dilemma.NewTable(b.Build()))
}

// cellStyle styles the grid, highlighting the cell of the last round.
func (m DashboardModel) cellStyle(row, col int) lipgloss.Style {
	if row == lgtable.HeaderRow || col == 0 {
		return m.theme.GridHeader
	}
	if last, ok := m.LastRound(); ok && row == int(last.P1) && col == int(last.P2)+1 {
		return m.theme.GridPlayed
	}
	return m.theme.GridCell
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("Tactix"),
		m.theme.Subtitle.Render(m.table.Configuration().String()),
		"",
		m.table.StyledTable(m.cellStyle).BorderStyle(m.theme.GridBorder).String(),
		"",
	}

	if last, ok := m.LastRound(); ok {
		sections = append(sections,
			m.theme.Result.Render(m.table.Describe(last.P1, last.P2)),
			m.theme.Totals.Render(fmt.Sprintf("Totals after %d %s: Player 1 %d, Player 2 %d",
				len(m.rounds), plural(len(m.rounds), "round"), m.total1, m.total2)),
			"",
			m.history.View(),
		)
	} else {
		sections = append(sections, m.theme.Muted.Render(
			fmt.Sprintf("Choose %s (a) or %s (b) to play a round.", m.table.LabelA(), m.table.LabelB())))
	}

	if m.err != nil {
		sections = append(sections, m.theme.Error.Render(m.err.Error()))
	}

	sections = append(sections, "", m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

// Rounds returns the rounds played on the current matrix.
func (m DashboardModel) Rounds() []Round {
	return append([]Round(nil), m.rounds...)
}

// LastRound returns the most recent round, if any.
func (m DashboardModel) LastRound() (Round, bool) {
	if len(m.rounds) == 0 {
		return Round{}, false
	}
	return m.rounds[len(m.rounds)-1], true
}

// Totals returns the summed payoffs of both players.
func (m DashboardModel) Totals() (uint64, uint64) {
	return m.total1, m.total2
}

// Table returns the matrix currently shown.
func (m DashboardModel) Table() dilemma.Table {
	return m.table
}

// IsQuitting returns true if user requested to quit.
func (m DashboardModel) IsQuitting() bool {
	return m.quitting
}

// Result holds the state of the dashboard when it exits.
type Result struct {
	Table  dilemma.Table
	Rounds []Round
	Total1 uint64
	Total2 uint64
}

// Summary renders a short text report of the session.
func (r Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s played", len(r.Rounds), plural(len(r.Rounds), "round"))
	if len(r.Rounds) > 0 {
		fmt.Fprintf(&b, ": Player 1 scored %d, Player 2 scored %d", r.Total1, r.Total2)
	}
	b.WriteString(".")
	return b.String()
}

// RunDashboard runs the dashboard until the user quits or ctx is cancelled.
func RunDashboard(ctx context.Context, opts Options) (Result, error) {
	model := NewDashboardModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Table: model.Table()}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(DashboardModel)
	if !ok {
		return Result{Table: model.Table()}, nil
	}

	t1, t2 := m.Totals()
	return Result{
		Table:  m.Table(),
		Rounds: m.Rounds(),
		Total1: t1,
		Total2: t2,
	}, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
