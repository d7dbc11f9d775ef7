// Package console is the thin interactive collaborator around the core:
// it implements the provider interfaces over stdin/stdout and renders
// the engine's event stream. The core never touches I/O itself.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/game"
)

// Prompter reads player choices from an input stream. Re-prompting on
// invalid input happens here; the core only ever sees valid values or
// a hard read error (closed input).
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// RequestPlayerCount asks for the number of players until it gets a
// value between 1 and the table maximum.
func (p *Prompter) RequestPlayerCount() (int, error) {
	for {
		fmt.Fprintf(p.out, "Welcome to Blackjack! How many players are there? (1-%d): ", game.MaxPlayerCount)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		count, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || count < 1 || count > game.MaxPlayerCount {
			fmt.Fprintf(p.out, "Invalid input. Please enter a number between 1 and %d.\n", game.MaxPlayerCount)
			continue
		}
		return count, nil
	}
}

// RequestAction shows the player their hand and the dealer's upcard,
// then asks for hit or stand until the answer parses.
func (p *Prompter) RequestAction(view domain.HandView) (game.Action, error) {
	fmt.Fprintf(p.out, "\n%s's hand: %s (Score: %d)\n", view.Owner, view.Cards, view.Score)
	if !view.DealerUpcard.IsEmpty() {
		fmt.Fprintf(p.out, "Dealer's up card: %s\n", view.DealerUpcard)
	}

	for {
		fmt.Fprintf(p.out, "%s: Would you like to hit or stand? ", view.Owner)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		action, parseErr := game.ParseAction(line)
		if parseErr != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter 'hit' or 'stand'.")
			continue
		}
		return action, nil
	}
}

// RequestReplay asks whether to play another round. Anything but
// yes/y counts as no.
func (p *Prompter) RequestReplay() (bool, error) {
	fmt.Fprint(p.out, "Would you like to play again? (yes/no): ")
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes" || answer == "y", nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}
