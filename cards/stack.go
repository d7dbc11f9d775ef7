package cards

import "strings"

// Stack represents an ordered pile of cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// String returns the cards in the stack separated by spaces
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Count returns how many cards in the stack equal the given card
func (s Stack) Count(card Card) int {
	n := 0
	for _, c := range s {
		if c.Equals(card) {
			n++
		}
	}
	return n
}
