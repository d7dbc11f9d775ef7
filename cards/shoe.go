package cards

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// DefaultDeckCount is the number of decks in a standard casino shoe.
const DefaultDeckCount = 6

// DefaultReshuffleThreshold is the remaining-card count at which the shoe
// is reshuffled instead of dealt down to the last card. Withdrawing the
// tail of the shoe from play limits card counting.
const DefaultReshuffleThreshold = 75

// ErrEmptyShoe is returned when no card is available even after a
// reshuffle. Unreachable as long as the shoe holds more cards than the
// reshuffle threshold, which NewShoe enforces.
var ErrEmptyShoe = errors.New("no cards left in the shoe")

// Shoe holds multiple decks of cards and deals them from a draw cursor.
// Cards behind the cursor are already in play; a reshuffle permutes the
// whole shoe and resets the cursor.
type Shoe struct {
	cards       Stack
	cursor      int
	reshuffleAt int
	rng         *rand.Rand
	onShuffle   func(remaining int)
}

// ShoeOption customizes a shoe at construction time.
type ShoeOption func(*Shoe)

// WithRand injects the random source used for shuffling, so tests can
// seed the shoe deterministically.
func WithRand(rng *rand.Rand) ShoeOption {
	return func(s *Shoe) {
		s.rng = rng
	}
}

// WithReshuffleThreshold overrides the remaining-card count below which
// draws trigger a full reshuffle.
func WithReshuffleThreshold(threshold int) ShoeOption {
	return func(s *Shoe) {
		s.reshuffleAt = threshold
	}
}

// WithShuffleHook registers a callback invoked after every shuffle with
// the number of cards that were still undealt.
func WithShuffleHook(hook func(remaining int)) ShoeOption {
	return func(s *Shoe) {
		s.onShuffle = hook
	}
}

// NewShoe creates a shoe with numDecks full decks, shuffled and ready to
// deal. It errors when the configuration would make the reshuffle
// threshold unsatisfiable.
func NewShoe(numDecks int, opts ...ShoeOption) (*Shoe, error) {
	if numDecks < 1 {
		return nil, fmt.Errorf("shoe needs at least one deck, got %d", numDecks)
	}

	shoe := &Shoe{
		reshuffleAt: DefaultReshuffleThreshold,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(shoe)
	}

	for i := 0; i < numDecks; i++ {
		shoe.cards = append(shoe.cards, NewDeck()...)
	}

	if shoe.reshuffleAt < 0 || shoe.reshuffleAt >= len(shoe.cards) {
		return nil, fmt.Errorf("reshuffle threshold %d out of range for a %d-card shoe", shoe.reshuffleAt, len(shoe.cards))
	}

	shoe.Shuffle()
	return shoe, nil
}

// Shuffle permutes the full shoe in place and resets the draw cursor.
// Safe to call mid-shoe: cards already dealt are folded back in.
func (s *Shoe) Shuffle() {
	remaining := s.Remaining()

	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.cursor = 0

	if s.onShuffle != nil {
		s.onShuffle(remaining)
	}
}

// Draw deals the next card and advances the cursor. When the undealt
// portion of the shoe shrinks to the reshuffle threshold, the whole shoe
// is reshuffled first, so the threshold's worth of cards never reaches
// the table from any single shoe pass.
func (s *Shoe) Draw() (Card, error) {
	if s.cursor >= len(s.cards)-s.reshuffleAt {
		s.Shuffle()
	}

	if s.cursor >= len(s.cards) {
		// Defensive: the threshold check above makes this unreachable,
		// reshuffle rather than fail if it ever happens.
		s.Shuffle()
		if len(s.cards) == 0 {
			return Card{}, ErrEmptyShoe
		}
	}

	card := s.cards[s.cursor]
	s.cursor++
	return card, nil
}

// Size returns the total number of cards the shoe holds.
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Remaining returns the number of undealt cards ahead of the cursor.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.cursor
}

// Cards returns a copy of the shoe's cards in their current order.
func (s *Shoe) Cards() Stack {
	out := make(Stack, len(s.cards))
	copy(out, s.cards)
	return out
}
