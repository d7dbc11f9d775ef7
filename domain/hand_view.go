package domain

import "github.com/lazharichir/blackjack/cards"

// HandView is a read-only snapshot of a hand handed to collaborators
// (decision providers, renderers). Before the dealer reveals, the hole
// card and score are masked.
type HandView struct {
	Owner        string
	Cards        cards.Stack
	NumCards     int
	Score        int
	ScoreMasked  bool
	DealerUpcard cards.Card // set on player views so the prompt can show it
}

// BuildHandView constructs a view of the hand. For the dealer's hand with
// revealAll false, only the upcard (second card dealt) is visible and the
// score is masked.
func BuildHandView(h *Hand, revealAll bool) HandView {
	view := HandView{
		Owner:    h.Owner,
		NumCards: h.NumCards(),
	}

	if h.IsDealer() && !revealAll {
		all := h.Cards()
		view.ScoreMasked = true
		if len(all) >= 2 {
			view.Cards = cards.NewStack(all[1])
		}
		return view
	}

	view.Cards = h.Cards()
	view.Score = h.Score()
	return view
}

// RoundSnapshot is a read-only view of the whole table, pushed to the
// presentation layer after phase transitions.
type RoundSnapshot struct {
	RoundID       string
	Phase         string
	Dealer        HandView
	Players       []HandView
	ShoeRemaining int
}
