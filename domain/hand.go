package domain

import (
	"fmt"

	"github.com/lazharichir/blackjack/cards"
)

// Blackjack scoring constants.
const (
	Blackjack     = 21 // target score, anything above is a bust
	FaceCardValue = 10 // K, Q, J all count ten
	AceHigh       = 11 // an ace counts high until the hand would bust
	AceLow        = 1
	DealerStand   = 17 // the dealer draws to 16 and stands on any 17
)

// MaxHandSize is the longest hand that can still be standing: four aces
// counted low, four twos and three threes total exactly 21
// (A,A,A,A,2,2,2,2,3,3,3). One more card always busts, so no hand ever
// needs more room than this.
const MaxHandSize = 11

// DealerOwner is the owner identifier reserved for the dealer's hand.
const DealerOwner = "Dealer"

// PlayerOwner returns the owner identifier for the player in the given
// seat (zero-based).
func PlayerOwner(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

// AddResult reports what AddCard did with a card. Rejections are a
// documented lenient policy, not errors: a malformed card or a full hand
// leaves the hand untouched.
type AddResult string

const (
	CardAdded         AddResult = "added"
	RejectedHandFull  AddResult = "rejected_hand_full"
	RejectedEmptyCard AddResult = "rejected_empty_card"
)

// Accepted reports whether the card made it into the hand.
func (r AddResult) Accepted() bool {
	return r == CardAdded
}

// Hand is one participant's cards for the current round. The hand is
// bounded by MaxHandSize; the score is derived from the cards on every
// call, never cached.
type Hand struct {
	Owner string
	cards cards.Stack
}

// NewHand creates an empty hand for the given owner.
func NewHand(owner string) *Hand {
	return &Hand{
		Owner: owner,
		cards: make(cards.Stack, 0, MaxHandSize),
	}
}

// IsDealer reports whether this is the dealer's hand.
func (h *Hand) IsDealer() bool {
	return h.Owner == DealerOwner
}

// AddCard appends a card to the hand. Empty cards and cards beyond
// MaxHandSize are rejected without touching the hand.
func (h *Hand) AddCard(c cards.Card) AddResult {
	if c.IsEmpty() {
		return RejectedEmptyCard
	}
	if len(h.cards) >= MaxHandSize {
		return RejectedHandFull
	}
	h.cards = append(h.cards, c)
	return CardAdded
}

// NumCards returns how many cards the hand holds.
func (h *Hand) NumCards() int {
	return len(h.cards)
}

// Cards returns a copy of the hand's cards.
func (h *Hand) Cards() cards.Stack {
	out := make(cards.Stack, len(h.cards))
	copy(out, h.cards)
	return out
}

// Score evaluates the hand: number cards at face value, J/Q/K at ten,
// aces at eleven, then downgraded one at a time to one while the total
// is over 21. Order of cards never affects the result.
func (h *Hand) Score() int {
	score := 0
	aceCount := 0
	for _, c := range h.cards {
		score += cardValue(c.Value)
		if c.Value == cards.Ace {
			aceCount++
		}
	}
	return adjustScoreForAces(score, aceCount)
}

// IsBust reports whether the hand scored over 21.
func (h *Hand) IsBust() bool {
	return h.Score() > Blackjack
}

// IsNatural reports whether the hand is a blackjack: exactly two cards
// totalling 21.
func (h *Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.Score() == Blackjack
}

// Reset empties the hand at the end of a round. The owner is kept.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// adjustScoreForAces downgrades aces from eleven to one, one at a time,
// until the score fits under 21 or no high ace remains.
func adjustScoreForAces(score, aceCount int) int {
	for score > Blackjack && aceCount > 0 {
		score -= AceHigh - AceLow
		aceCount--
	}
	return score
}

func cardValue(v cards.Value) int {
	switch v {
	case cards.Ace:
		return AceHigh
	case cards.King, cards.Queen, cards.Jack:
		return FaceCardValue
	case cards.Ten:
		return 10
	case cards.Nine:
		return 9
	case cards.Eight:
		return 8
	case cards.Seven:
		return 7
	case cards.Six:
		return 6
	case cards.Five:
		return 5
	case cards.Four:
		return 4
	case cards.Three:
		return 3
	case cards.Two:
		return 2
	default:
		return 0
	}
}
