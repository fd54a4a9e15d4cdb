// Package console plays a single round on a line-oriented terminal: it
// prints the grid, reads both choices and narrates the outcome. It works
// with pipes as well as interactive terminals.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tactix/internal/dilemma"
	"github.com/vovakirdan/tactix/internal/logging"
)

// Opponent selects who makes player 2's choice.
type Opponent string

const (
	OpponentRandom Opponent = "random" // a single random pick
	OpponentHuman  Opponent = "human"  // prompted on the same input
)

// ParseOpponent converts a flag value into an Opponent.
func ParseOpponent(s string) (Opponent, error) {
	switch o := Opponent(s); o {
	case OpponentRandom, OpponentHuman:
		return o, nil
	case "":
		return OpponentRandom, nil
	default:
		return "", fmt.Errorf("console: unknown opponent %q (want %s or %s)", s, OpponentRandom, OpponentHuman)
	}
}

// ErrInputClosed is returned when the input ends before a choice was read.
var ErrInputClosed = errors.New("input closed")

// Outcome is the result of one round.
type Outcome struct {
	P1, P2 dilemma.Choice
	Payoff dilemma.PayoffPair
}

// Session holds everything needed to play one round.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Table    dilemma.Table
	Opponent Opponent
	Rand     *rand.Rand  // random opponent; nil means an entropy-seeded generator
	Logger   *log.Logger // nil discards
}

// Run plays one round. It returns an error wrapping ErrInputClosed if the
// input ends before both choices are known.
func (s Session) Run(ctx context.Context) (Outcome, error) {
	if s.Rand == nil {
		s.Rand = dilemma.NewRand(0)
	}
	if s.Logger == nil {
		s.Logger = logging.Discard()
	}
	in := bufio.NewScanner(s.In)

	if err := s.Table.Print(s.Out); err != nil {
		return Outcome{}, fmt.Errorf("console: %w", err)
	}
	fmt.Fprintln(s.Out, "The choices available to you are:")
	fmt.Fprintf(s.Out, "A: %s\n", s.Table.LabelA())
	fmt.Fprintf(s.Out, "B: %s\n", s.Table.LabelB())

	p1, err := s.prompt(ctx, in, "Enter your choice (A or B): ")
	if err != nil {
		return Outcome{}, err
	}

	var p2 dilemma.Choice
	switch s.Opponent {
	case OpponentHuman:
		if p2, err = s.prompt(ctx, in, "Enter opponent's choice (A or B): "); err != nil {
			return Outcome{}, err
		}
	default:
		p2 = dilemma.RandomChoice(s.Rand)
		fmt.Fprintf(s.Out, "Opponent chose %s.\n", s.Table.Label(p2))
	}

	out := Outcome{P1: p1, P2: p2, Payoff: s.Table.Lookup(p1, p2)}
	s.Logger.Debug("round played", "p1", p1, "p2", p2, "payoff", out.Payoff, "opponent", s.Opponent)

	fmt.Fprintln(s.Out, s.Table.Describe(p1, p2))
	return out, nil
}

// prompt reads one choice. Anything but A or B falls back to A with a notice.
func (s Session) prompt(ctx context.Context, in *bufio.Scanner, text string) (dilemma.Choice, error) {
	if err := ctx.Err(); err != nil {
		return dilemma.ChoiceAtlantis, fmt.Errorf("console: %w", err)
	}

	fmt.Fprint(s.Out, text)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return dilemma.ChoiceAtlantis, fmt.Errorf("console: read choice: %w", err)
		}
		fmt.Fprintln(s.Out)
		return dilemma.ChoiceAtlantis, fmt.Errorf("console: %w", ErrInputClosed)
	}

	choice, err := dilemma.ParseChoice(in.Text())
	if err != nil {
		s.Logger.Debug("invalid choice", "input", in.Text())
		fmt.Fprintln(s.Out, "Invalid choice, defaulting to A")
		return dilemma.ChoiceAtlantis, nil
	}
	return choice, nil
}
