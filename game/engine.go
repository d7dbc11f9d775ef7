package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
)

// Phase represents the current phase of a round
type Phase string

const (
	PhaseNotStarted      Phase = "not_started"
	PhaseDealing         Phase = "dealing"
	PhaseBlackjackCheck  Phase = "blackjack_check"
	PhaseEarlySettlement Phase = "early_settlement"
	PhasePlayerTurns     Phase = "player_turns"
	PhaseDealerTurn      Phase = "dealer_turn"
	PhaseSettlement      Phase = "settlement"
	PhaseDone            Phase = "done"
)

// MaxPlayerCount bounds how many seats a round can have besides the dealer.
const MaxPlayerCount = 3

// startingCards is how many cards each participant receives in the deal.
const startingCards = 2

// maxDecisionRetries bounds how often a misbehaving decision provider is
// asked again before the hand is stood for the player.
const maxDecisionRetries = 3

// CardSource deals cards into the round. *cards.Shoe is the production
// implementation; tests script their own.
type CardSource interface {
	Draw() (cards.Card, error)
	Remaining() int
}

// RoundEngine runs one blackjack round at a time: dealing, the blackjack
// pre-check, sequential player turns, the dealer's draw loop and
// settlement into the ledger. The shoe and ledger persist across rounds;
// hands are cleared after every round.
type RoundEngine struct {
	gameID  string
	roundID string
	phase   Phase

	shoe    CardSource
	ledger  *domain.Ledger
	dealer  *domain.Hand
	players []*domain.Hand

	playerNaturals []bool
	dealerNatural  bool

	decisions     DecisionProvider
	eventStore    events.EventStore
	eventHandlers []events.EventHandler
	log           *logrus.Entry
}

// EngineOption customizes a round engine at construction time.
type EngineOption func(*RoundEngine)

// WithEventStore makes the engine append every event it emits to the store.
func WithEventStore(store events.EventStore) EngineOption {
	return func(e *RoundEngine) {
		e.eventStore = store
	}
}

// WithLogger overrides the engine's logger.
func WithLogger(logger *logrus.Logger) EngineOption {
	return func(e *RoundEngine) {
		e.log = logger.WithField("game_id", e.gameID)
	}
}

// NewRoundEngine creates an engine for numPlayers seats (1 to 3) playing
// against the dealer out of the given shoe. The ledger must track the
// same number of seats.
func NewRoundEngine(gameID string, shoe CardSource, ledger *domain.Ledger, numPlayers int, decisions DecisionProvider, opts ...EngineOption) (*RoundEngine, error) {
	if numPlayers < 1 || numPlayers > MaxPlayerCount {
		return nil, fmt.Errorf("player count must be between 1 and %d, got %d", MaxPlayerCount, numPlayers)
	}
	if ledger.NumPlayers() != numPlayers {
		return nil, fmt.Errorf("ledger tracks %d players, round has %d", ledger.NumPlayers(), numPlayers)
	}
	if decisions == nil {
		return nil, fmt.Errorf("round engine needs a decision provider")
	}

	engine := &RoundEngine{
		gameID: gameID,
		phase:  PhaseNotStarted,
		shoe:   shoe,
		ledger: ledger,
		dealer: domain.NewHand(domain.DealerOwner),

		decisions: decisions,
		log:       logrus.StandardLogger().WithField("game_id", gameID),
	}
	for i := 0; i < numPlayers; i++ {
		engine.players = append(engine.players, domain.NewHand(domain.PlayerOwner(i)))
	}
	engine.playerNaturals = make([]bool, numPlayers)

	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// RegisterEventHandler registers a callback notified of every event the
// engine emits. The presentation layer subscribes here.
func (e *RoundEngine) RegisterEventHandler(handler events.EventHandler) {
	e.eventHandlers = append(e.eventHandlers, handler)
}

// Phase returns the engine's current phase.
func (e *RoundEngine) Phase() Phase {
	return e.phase
}

// Ledger returns the ledger the engine settles into.
func (e *RoundEngine) Ledger() *domain.Ledger {
	return e.ledger
}

// PlayRound runs one complete round. The only blocking points are the
// decision provider calls during player turns; everything else is a
// deterministic walk through the phases. An error means the shoe could
// not produce a card, which a correctly configured shoe never does.
func (e *RoundEngine) PlayRound() error {
	e.roundID = uuid.NewString()
	e.dealerNatural = false
	for i := range e.playerNaturals {
		e.playerNaturals[i] = false
	}

	owners := make([]string, len(e.players))
	for i, hand := range e.players {
		owners[i] = hand.Owner
	}
	e.emitEvent(events.RoundStarted{GameID: e.gameID, RoundID: e.roundID, Players: owners})

	e.transitionTo(PhaseDealing)
	if err := e.deal(); err != nil {
		return err
	}

	e.transitionTo(PhaseBlackjackCheck)
	e.checkNaturals()

	if e.dealerNatural {
		// Players never act against a confirmed dealer natural.
		e.transitionTo(PhaseEarlySettlement)
		e.settleEarly()
	} else {
		e.transitionTo(PhasePlayerTurns)
		if err := e.playerTurns(); err != nil {
			return err
		}

		e.transitionTo(PhaseDealerTurn)
		if err := e.dealerTurn(); err != nil {
			return err
		}

		e.transitionTo(PhaseSettlement)
		e.settle()
	}

	e.finishRound()
	return nil
}

// deal gives every participant two cards in casino order: one card to
// each player then the dealer, twice. No hand is scored until the deal
// completes. The dealer's first card is the hole card.
func (e *RoundEngine) deal() error {
	for pass := 0; pass < startingCards; pass++ {
		for _, hand := range e.players {
			if err := e.dealCardTo(hand, true); err != nil {
				return err
			}
		}
		holeCard := pass == 0
		if err := e.dealCardTo(e.dealer, !holeCard); err != nil {
			return err
		}
	}
	return nil
}

func (e *RoundEngine) dealCardTo(hand *domain.Hand, faceUp bool) error {
	card, err := e.shoe.Draw()
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", hand.Owner, err)
	}

	if result := hand.AddCard(card); !result.Accepted() {
		// Lenient policy: a rejected card is dropped, not an error.
		e.log.WithFields(logrus.Fields{
			"owner":  hand.Owner,
			"card":   card.String(),
			"result": result,
		}).Warn("card rejected by hand")
		return nil
	}

	e.emitEvent(events.CardDealt{
		GameID:   e.gameID,
		RoundID:  e.roundID,
		Owner:    hand.Owner,
		Card:     card,
		HandSize: hand.NumCards(),
		FaceUp:   faceUp,
	})
	return nil
}

// checkNaturals flags two-card 21s before anyone acts.
func (e *RoundEngine) checkNaturals() {
	e.dealerNatural = e.dealer.IsNatural()
	if e.dealerNatural {
		e.emitEvent(events.NaturalFound{GameID: e.gameID, RoundID: e.roundID, Owner: e.dealer.Owner})
	}
	for i, hand := range e.players {
		e.playerNaturals[i] = hand.IsNatural()
		if e.playerNaturals[i] {
			e.emitEvent(events.NaturalFound{GameID: e.gameID, RoundID: e.roundID, Owner: hand.Owner})
		}
	}
}

// settleEarly adjudicates a dealer natural: natural players tie, the
// rest lose, and the dealer is credited a win and a blackjack only when
// no player also holds a natural.
func (e *RoundEngine) settleEarly() {
	anyPlayerNatural := false
	for i, hand := range e.players {
		if e.playerNaturals[i] {
			anyPlayerNatural = true
			e.ledger.RecordPlayerTie(i)
			e.emitOutcome(hand.Owner, events.OutcomeTie, hand.Score(), false)
		} else {
			e.ledger.RecordPlayerLoss(i)
			e.emitOutcome(hand.Owner, events.OutcomeLoss, hand.Score(), false)
		}
	}

	if !anyPlayerNatural {
		e.ledger.RecordDealerWin()
		e.ledger.RecordDealerBlackjack()
		e.emitOutcome(e.dealer.Owner, events.OutcomeWin, e.dealer.Score(), true)
	}
}

// playerTurns resolves each seat fully before the next one begins.
// Players holding a natural sit their turn out.
func (e *RoundEngine) playerTurns() error {
	upcard := e.dealerUpcard()

	for i, hand := range e.players {
		if e.playerNaturals[i] {
			continue
		}

		e.emitEvent(events.PlayerTurnStarted{
			GameID:  e.gameID,
			RoundID: e.roundID,
			Owner:   hand.Owner,
			Upcard:  upcard,
		})

		for {
			view := domain.BuildHandView(hand, false)
			view.DealerUpcard = upcard

			action := e.requestDecision(view)
			if action == ActionStand {
				e.emitEvent(events.PlayerStood{GameID: e.gameID, RoundID: e.roundID, Owner: hand.Owner, Score: hand.Score()})
				break
			}

			card, err := e.shoe.Draw()
			if err != nil {
				return fmt.Errorf("hitting %s: %w", hand.Owner, err)
			}
			hand.AddCard(card)
			e.emitEvent(events.PlayerHit{GameID: e.gameID, RoundID: e.roundID, Owner: hand.Owner, Card: card, Score: hand.Score()})

			if hand.IsBust() {
				e.emitEvent(events.PlayerBusted{GameID: e.gameID, RoundID: e.roundID, Owner: hand.Owner, Score: hand.Score()})
				break
			}
		}
	}
	return nil
}

// requestDecision asks the provider for a hit/stand choice, retrying a
// bounded number of times on invalid answers. A provider that keeps
// misbehaving stands the hand; a bad decision is never a round failure.
func (e *RoundEngine) requestDecision(view domain.HandView) Action {
	for attempt := 0; attempt <= maxDecisionRetries; attempt++ {
		action, err := e.decisions.RequestAction(view)
		if err == nil && (action == ActionHit || action == ActionStand) {
			return action
		}
		e.log.WithFields(logrus.Fields{
			"owner":   view.Owner,
			"attempt": attempt,
			"action":  action,
		}).WithError(err).Warn("invalid decision, asking again")
	}

	e.log.WithField("owner", view.Owner).Warn("decision retries exhausted, standing")
	return ActionStand
}

// dealerTurn is the dealer's deterministic draw loop: hit below 17,
// stand on any 17, hard or soft.
func (e *RoundEngine) dealerTurn() error {
	for e.dealer.Score() < domain.DealerStand {
		card, err := e.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealer drawing: %w", err)
		}
		e.dealer.AddCard(card)
	}

	e.emitEvent(events.DealerTurnEnded{
		GameID:  e.gameID,
		RoundID: e.roundID,
		Score:   e.dealer.Score(),
		Busted:  e.dealer.IsBust(),
		Cards:   e.dealer.Cards(),
	})
	return nil
}

// settle adjudicates every player hand against the dealer, touching the
// ledger exactly once per participant. A busted player loses regardless
// of what the dealer later did. When the dealer busts, every standing
// player not already credited is awarded the win, and the scorekeeping
// records a single dealer win for the busted round.
func (e *RoundEngine) settle() {
	dealerScore := e.dealer.Score()
	dealerBusted := e.dealer.IsBust()

	recorded := make([]bool, len(e.players))

	for i, hand := range e.players {
		playerScore := hand.Score()

		switch {
		case hand.IsBust():
			e.ledger.RecordPlayerLoss(i)
			e.ledger.RecordDealerWin()
			e.emitOutcome(hand.Owner, events.OutcomeLoss, playerScore, false)
			recorded[i] = true

		case e.playerNaturals[i]:
			// Dealer naturals never reach this path, so the blackjack wins.
			e.ledger.RecordPlayerWin(i)
			e.ledger.RecordPlayerBlackjack(i)
			e.emitOutcome(hand.Owner, events.OutcomeWin, playerScore, true)
			recorded[i] = true

		case dealerScore > playerScore && !dealerBusted:
			e.ledger.RecordPlayerLoss(i)
			e.ledger.RecordDealerWin()
			e.emitOutcome(hand.Owner, events.OutcomeLoss, playerScore, false)
			recorded[i] = true

		case playerScore > dealerScore:
			e.ledger.RecordPlayerWin(i)
			e.emitOutcome(hand.Owner, events.OutcomeWin, playerScore, false)
			recorded[i] = true

		case playerScore == dealerScore:
			e.ledger.RecordPlayerTie(i)
			e.emitOutcome(hand.Owner, events.OutcomeTie, playerScore, false)
			recorded[i] = true
		}
	}

	if dealerBusted {
		e.ledger.RecordDealerWin()
		for i, hand := range e.players {
			if recorded[i] || hand.IsBust() {
				continue
			}
			e.ledger.RecordPlayerWin(i)
			e.emitOutcome(hand.Owner, events.OutcomeWin, hand.Score(), false)
		}
	}
}

// finishRound closes the books: the round counter moves, hands are
// cleared, and the shoe keeps its cursor so the next round continues
// dealing from the same pass until the reshuffle threshold trips.
func (e *RoundEngine) finishRound() {
	e.ledger.RecordRoundPlayed()

	e.transitionTo(PhaseDone)
	e.emitEvent(events.RoundEnded{
		GameID:      e.gameID,
		RoundID:     e.roundID,
		TotalRounds: e.ledger.Snapshot().TotalRounds,
	})

	e.dealer.Reset()
	for _, hand := range e.players {
		hand.Reset()
	}
	e.phase = PhaseNotStarted
}

// Snapshot builds the read-only table view for the current phase. The
// dealer's hole card stays masked until their turn starts.
func (e *RoundEngine) Snapshot() domain.RoundSnapshot {
	revealDealer := e.phase == PhaseDealerTurn ||
		e.phase == PhaseSettlement ||
		e.phase == PhaseEarlySettlement ||
		e.phase == PhaseDone

	snap := domain.RoundSnapshot{
		RoundID:       e.roundID,
		Phase:         string(e.phase),
		Dealer:        domain.BuildHandView(e.dealer, revealDealer),
		ShoeRemaining: e.shoe.Remaining(),
	}
	for _, hand := range e.players {
		snap.Players = append(snap.Players, domain.BuildHandView(hand, true))
	}
	return snap
}

func (e *RoundEngine) dealerUpcard() cards.Card {
	all := e.dealer.Cards()
	if len(all) < 2 {
		return cards.Card{}
	}
	return all[1]
}

func (e *RoundEngine) transitionTo(newPhase Phase) {
	previous := e.phase
	e.phase = newPhase

	e.emitEvent(events.PhaseChanged{
		GameID:        e.gameID,
		RoundID:       e.roundID,
		PreviousPhase: string(previous),
		NewPhase:      string(newPhase),
		Snapshot:      e.Snapshot(),
	})
}

func (e *RoundEngine) emitOutcome(owner string, outcome events.Outcome, score int, blackjack bool) {
	e.emitEvent(events.HandOutcome{
		GameID:    e.gameID,
		RoundID:   e.roundID,
		Owner:     owner,
		Outcome:   outcome,
		Score:     score,
		Blackjack: blackjack,
	})
}

// emitEvent appends the event to the store (when configured) and
// notifies all registered handlers.
func (e *RoundEngine) emitEvent(event events.Event) {
	if e.eventStore != nil {
		if err := e.eventStore.Append(event); err != nil {
			e.log.WithError(err).WithField("event", event.EventName()).Warn("failed to append event")
		}
	}
	for _, handler := range e.eventHandlers {
		handler(event)
	}
}
