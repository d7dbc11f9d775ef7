package domain

import "fmt"

// Ledger accumulates outcome counters across rounds. Only the round
// engine's settlement step mutates it; every counter is monotonically
// non-decreasing for the life of the process.
type Ledger struct {
	playerWins       []int
	playerLosses     []int
	playerTies       []int
	playerBlackjacks []int
	dealerWins       int
	dealerBlackjacks int
	totalRounds      int
}

// NewLedger creates a ledger tracking numPlayers seats plus the dealer.
func NewLedger(numPlayers int) (*Ledger, error) {
	if numPlayers < 1 {
		return nil, fmt.Errorf("ledger needs at least one player, got %d", numPlayers)
	}
	return &Ledger{
		playerWins:       make([]int, numPlayers),
		playerLosses:     make([]int, numPlayers),
		playerTies:       make([]int, numPlayers),
		playerBlackjacks: make([]int, numPlayers),
	}, nil
}

// NumPlayers returns how many player seats the ledger tracks.
func (l *Ledger) NumPlayers() int {
	return len(l.playerWins)
}

func (l *Ledger) RecordPlayerWin(seat int)       { l.playerWins[seat]++ }
func (l *Ledger) RecordPlayerLoss(seat int)      { l.playerLosses[seat]++ }
func (l *Ledger) RecordPlayerTie(seat int)       { l.playerTies[seat]++ }
func (l *Ledger) RecordPlayerBlackjack(seat int) { l.playerBlackjacks[seat]++ }
func (l *Ledger) RecordDealerWin()               { l.dealerWins++ }
func (l *Ledger) RecordDealerBlackjack()         { l.dealerBlackjacks++ }

// RecordRoundPlayed bumps the round counter once a round fully settles.
func (l *Ledger) RecordRoundPlayed() { l.totalRounds++ }

// PlayerStats holds the counters for one player seat.
type PlayerStats struct {
	Owner      string
	Wins       int
	Losses     int
	Ties       int
	Blackjacks int
}

// LedgerSnapshot is a read-only copy of the ledger for presentation.
type LedgerSnapshot struct {
	Players          []PlayerStats
	DealerWins       int
	DealerBlackjacks int
	TotalRounds      int
}

// Snapshot returns a copy of all counters.
func (l *Ledger) Snapshot() LedgerSnapshot {
	snap := LedgerSnapshot{
		Players:          make([]PlayerStats, len(l.playerWins)),
		DealerWins:       l.dealerWins,
		DealerBlackjacks: l.dealerBlackjacks,
		TotalRounds:      l.totalRounds,
	}
	for i := range l.playerWins {
		snap.Players[i] = PlayerStats{
			Owner:      PlayerOwner(i),
			Wins:       l.playerWins[i],
			Losses:     l.playerLosses[i],
			Ties:       l.playerTies[i],
			Blackjacks: l.playerBlackjacks[i],
		}
	}
	return snap
}
