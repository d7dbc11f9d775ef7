package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	require.Len(t, deck, DeckSize)

	// Every (suit, value) pair appears exactly once
	for _, suit := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		for _, value := range []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King} {
			require.Equal(t, 1, Stack(deck).Count(Card{Suit: suit, Value: value}),
				"deck should contain exactly one %s%s", value, suit)
		}
	}
}

func TestStackString(t *testing.T) {
	stack := NewStack(
		Card{Suit: Spades, Value: Ace},
		Card{Suit: Hearts, Value: Ten},
	)
	require.Equal(t, "A♠ 10♥", stack.String())
	require.Equal(t, "", NewStack().String())
}
