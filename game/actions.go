package game

import (
	"errors"
	"strings"

	"github.com/lazharichir/blackjack/domain"
)

// Action is a player's choice during their turn.
type Action string

const (
	ActionHit   Action = "hit"
	ActionStand Action = "stand"
)

// ErrInvalidDecision is returned by ParseAction for anything that is not
// hit or stand. The engine recovers locally by re-requesting a decision.
var ErrInvalidDecision = errors.New("invalid decision: want hit or stand")

// ParseAction converts free-form input into an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "h":
		return ActionHit, nil
	case "stand", "s":
		return ActionStand, nil
	default:
		return "", ErrInvalidDecision
	}
}

// DecisionProvider supplies hit/stand decisions for a hand. The call is
// synchronous; the engine blocks until a decision comes back. A provider
// returning an error or an unknown action is asked again a bounded number
// of times, then the hand stands.
type DecisionProvider interface {
	RequestAction(view domain.HandView) (Action, error)
}

// DecisionProviderFunc adapts a function to the DecisionProvider interface.
type DecisionProviderFunc func(view domain.HandView) (Action, error)

func (f DecisionProviderFunc) RequestAction(view domain.HandView) (Action, error) {
	return f(view)
}
