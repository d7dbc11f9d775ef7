package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
)

func TestRendererRendersRoundFlow(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	renderer.Handle(events.RoundStarted{GameID: "g", RoundID: "r"})
	renderer.Handle(events.CardDealt{Owner: "Player 1", HandSize: 1})
	renderer.Handle(events.PlayerHit{Owner: "Player 1", Card: cards.Card{Suit: cards.Spades, Value: cards.Five}, Score: 15})
	renderer.Handle(events.PlayerStood{Owner: "Player 1", Score: 15})
	renderer.Handle(events.PlayerBusted{Owner: "Player 2", Score: 25})

	text := out.String()
	assert.Contains(t, text, "Starting a new round...")
	assert.Contains(t, text, "Player 1 was dealt a card. (Cards in hand: 1)")
	assert.Contains(t, text, "Player 1 draws 5♠. (Score: 15)")
	assert.Contains(t, text, "Player 1 stands at 15.")
	assert.Contains(t, text, "Player 2 busted! Better luck next time!")
}

func TestRendererRevealsHandsAtSettlement(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	snapshot := domain.RoundSnapshot{
		Phase: string(game.PhaseSettlement),
		Dealer: domain.HandView{
			Owner: domain.DealerOwner,
			Cards: cards.NewStack(
				cards.Card{Suit: cards.Diamonds, Value: cards.Ten},
				cards.Card{Suit: cards.Clubs, Value: cards.Nine},
			),
			Score: 19,
		},
		Players: []domain.HandView{{
			Owner: "Player 1",
			Cards: cards.NewStack(
				cards.Card{Suit: cards.Spades, Value: cards.King},
				cards.Card{Suit: cards.Hearts, Value: cards.Eight},
			),
			Score: 18,
		}},
	}

	renderer.Handle(events.PhaseChanged{NewPhase: string(game.PhaseSettlement), Snapshot: snapshot})

	text := out.String()
	assert.Contains(t, text, "**** HAND REVEAL ****")
	assert.Contains(t, text, "Player 1's hand: K♠ 8♥ (Score: 18)")
	assert.Contains(t, text, "Dealer's hand: 10♦ 9♣ (Score: 19)")
}

func TestRendererSkipsRevealDuringEarlyPhases(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	renderer.Handle(events.PhaseChanged{NewPhase: string(game.PhaseDealing)})
	assert.Empty(t, out.String())
}

func TestRendererOutcomes(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	renderer.Handle(events.HandOutcome{Owner: "Player 1", Outcome: events.OutcomeWin, Blackjack: true})
	renderer.Handle(events.HandOutcome{Owner: "Player 2", Outcome: events.OutcomeWin})
	renderer.Handle(events.HandOutcome{Owner: "Player 3", Outcome: events.OutcomeLoss})
	renderer.Handle(events.HandOutcome{Owner: "Player 1", Outcome: events.OutcomeTie})
	renderer.Handle(events.HandOutcome{Owner: domain.DealerOwner, Outcome: events.OutcomeWin, Blackjack: true})

	text := out.String()
	assert.Contains(t, text, "Player 1 wins with a Blackjack!")
	assert.Contains(t, text, "Player 2 wins against the dealer!")
	assert.Contains(t, text, "Player 3 loses against the dealer.")
	assert.Contains(t, text, "Player 1 ties with the dealer.")
	assert.Contains(t, text, "Dealer wins with a Blackjack!")
}

func TestRendererStats(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	renderer.Handle(events.StatsUpdated{Snapshot: domain.LedgerSnapshot{
		Players: []domain.PlayerStats{
			{Owner: "Player 1", Wins: 1, Losses: 2, Ties: 1, Blackjacks: 1},
		},
		DealerWins:       2,
		DealerBlackjacks: 1,
		TotalRounds:      4,
	}})

	text := out.String()
	assert.Contains(t, text, "Round complete.")
	assert.Contains(t, text, "Player 1 - Wins: 1 (25.00%), Losses: 2 (50.00%), Ties: 1 (25.00%), Blackjacks: 1")
	assert.Contains(t, text, "Dealer - Wins: 2 Blackjacks: 1")
}

func TestRendererVerboseDumpsEvents(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out, true)

	renderer.Handle(events.PlayerStood{GameID: "g", Owner: "Player 1", Score: 18})

	assert.Contains(t, out.String(), "PlayerStood")
}
