package console

import (
	"fmt"
	"io"

	"github.com/sanity-io/litter"

	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
)

// Renderer turns the engine's event stream into console output. It is
// registered as an event handler on the session; pacing and formatting
// live here, never in the core.
type Renderer struct {
	out     io.Writer
	verbose bool
}

// NewRenderer creates a renderer writing to out. Verbose mode dumps the
// raw events alongside the rendered lines.
func NewRenderer(out io.Writer, verbose bool) *Renderer {
	return &Renderer{out: out, verbose: verbose}
}

// Handle renders one event. Satisfies events.EventHandler.
func (r *Renderer) Handle(event events.Event) {
	if r.verbose {
		fmt.Fprintln(r.out, litter.Sdump(event))
	}

	switch e := event.(type) {
	case events.RoundStarted:
		fmt.Fprintln(r.out, "\nStarting a new round...")

	case events.ShoeReshuffled:
		fmt.Fprintln(r.out, "\nShuffling the deck...")

	case events.CardDealt:
		fmt.Fprintf(r.out, "%s was dealt a card. (Cards in hand: %d)\n", e.Owner, e.HandSize)

	case events.NaturalFound:
		fmt.Fprintf(r.out, "%s has a Blackjack!\n", e.Owner)

	case events.PlayerHit:
		fmt.Fprintf(r.out, "%s draws %s. (Score: %d)\n", e.Owner, e.Card, e.Score)

	case events.PlayerStood:
		fmt.Fprintf(r.out, "%s stands at %d.\n", e.Owner, e.Score)

	case events.PlayerBusted:
		fmt.Fprintf(r.out, "%s busted! Better luck next time!\n", e.Owner)

	case events.DealerTurnEnded:
		fmt.Fprintf(r.out, "Dealer's hand: %s (Score: %d)\n", e.Cards, e.Score)
		if e.Busted {
			fmt.Fprintln(r.out, "Dealer busted!")
		}

	case events.PhaseChanged:
		r.renderPhase(e)

	case events.HandOutcome:
		r.renderOutcome(e)

	case events.StatsUpdated:
		r.renderStats(e.Snapshot)
	}
}

func (r *Renderer) renderPhase(e events.PhaseChanged) {
	// The reveal happens once the dealer is done (or had a natural).
	if e.NewPhase != string(game.PhaseSettlement) && e.NewPhase != string(game.PhaseEarlySettlement) {
		return
	}

	fmt.Fprintln(r.out, "\n**** HAND REVEAL ****")
	for _, view := range e.Snapshot.Players {
		fmt.Fprintf(r.out, "%s's hand: %s (Score: %d)\n", view.Owner, view.Cards, view.Score)
	}
	dealer := e.Snapshot.Dealer
	if dealer.ScoreMasked {
		upcard := "??"
		if len(dealer.Cards) > 0 {
			upcard = dealer.Cards[0].String()
		}
		fmt.Fprintf(r.out, "Dealer's hand: ?? %s (Score: XX)\n", upcard)
	} else {
		fmt.Fprintf(r.out, "Dealer's hand: %s (Score: %d)\n", dealer.Cards, dealer.Score)
	}
}

func (r *Renderer) renderOutcome(e events.HandOutcome) {
	switch {
	case e.Owner == domain.DealerOwner && e.Blackjack:
		fmt.Fprintln(r.out, "Dealer wins with a Blackjack!")
	case e.Owner == domain.DealerOwner:
		fmt.Fprintln(r.out, "Dealer wins this round.")
	case e.Outcome == events.OutcomeWin && e.Blackjack:
		fmt.Fprintf(r.out, "%s wins with a Blackjack!\n", e.Owner)
	case e.Outcome == events.OutcomeWin:
		fmt.Fprintf(r.out, "%s wins against the dealer!\n", e.Owner)
	case e.Outcome == events.OutcomeLoss:
		fmt.Fprintf(r.out, "%s loses against the dealer.\n", e.Owner)
	case e.Outcome == events.OutcomeTie:
		fmt.Fprintf(r.out, "%s ties with the dealer.\n", e.Owner)
	}
}

func (r *Renderer) renderStats(snap domain.LedgerSnapshot) {
	fmt.Fprintln(r.out, "\nRound complete.")
	for _, player := range snap.Players {
		fmt.Fprintf(r.out, "%s - Wins: %d (%.2f%%), Losses: %d (%.2f%%), Ties: %d (%.2f%%), Blackjacks: %d\n",
			player.Owner,
			player.Wins, percent(player.Wins, snap.TotalRounds),
			player.Losses, percent(player.Losses, snap.TotalRounds),
			player.Ties, percent(player.Ties, snap.TotalRounds),
			player.Blackjacks)
	}
	fmt.Fprintf(r.out, "Dealer - Wins: %d Blackjacks: %d\n", snap.DealerWins, snap.DealerBlackjacks)
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
