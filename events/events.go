package events

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
)

// Outcome is a participant's result for one round.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

type RoundStarted struct {
	GameID  string
	RoundID string
	Players []string
}

func (e RoundStarted) EventName() string { return "ROUND_STARTED" }

type PhaseChanged struct {
	GameID        string
	RoundID       string
	PreviousPhase string
	NewPhase      string
	Snapshot      domain.RoundSnapshot
}

func (e PhaseChanged) EventName() string { return "PHASE_CHANGED" }

type CardDealt struct {
	GameID   string
	RoundID  string
	Owner    string
	Card     cards.Card
	HandSize int
	FaceUp   bool // the dealer's hole card is dealt face down
}

func (e CardDealt) EventName() string { return "CARD_DEALT" }

type NaturalFound struct {
	GameID  string
	RoundID string
	Owner   string
}

func (e NaturalFound) EventName() string { return "NATURAL_FOUND" }

type PlayerTurnStarted struct {
	GameID  string
	RoundID string
	Owner   string
	Upcard  cards.Card
}

func (e PlayerTurnStarted) EventName() string { return "PLAYER_TURN_STARTED" }

type PlayerHit struct {
	GameID  string
	RoundID string
	Owner   string
	Card    cards.Card
	Score   int
}

func (e PlayerHit) EventName() string { return "PLAYER_HIT" }

type PlayerStood struct {
	GameID  string
	RoundID string
	Owner   string
	Score   int
}

func (e PlayerStood) EventName() string { return "PLAYER_STOOD" }

type PlayerBusted struct {
	GameID  string
	RoundID string
	Owner   string
	Score   int
}

func (e PlayerBusted) EventName() string { return "PLAYER_BUSTED" }

type DealerTurnEnded struct {
	GameID  string
	RoundID string
	Score   int
	Busted  bool
	Cards   cards.Stack
}

func (e DealerTurnEnded) EventName() string { return "DEALER_TURN_ENDED" }

type ShoeReshuffled struct {
	GameID    string
	Remaining int // undealt cards folded back in by the reshuffle
}

func (e ShoeReshuffled) EventName() string { return "SHOE_RESHUFFLED" }

type HandOutcome struct {
	GameID    string
	RoundID   string
	Owner     string
	Outcome   Outcome
	Score     int
	Blackjack bool
}

func (e HandOutcome) EventName() string { return "HAND_OUTCOME" }

type StatsUpdated struct {
	GameID   string
	Snapshot domain.LedgerSnapshot
}

func (e StatsUpdated) EventName() string { return "STATS_UPDATED" }

type RoundEnded struct {
	GameID      string
	RoundID     string
	TotalRounds int
}

func (e RoundEnded) EventName() string { return "ROUND_ENDED" }
