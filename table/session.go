package table

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
)

// PlayerCountProvider supplies the number of seats for a session.
type PlayerCountProvider interface {
	RequestPlayerCount() (int, error)
}

// ReplayProvider decides whether another round follows.
type ReplayProvider interface {
	RequestReplay() (bool, error)
}

// Rules are the table parameters a session plays under. Deck count and
// reshuffle threshold are configurable; everything else about the game
// is fixed.
type Rules struct {
	NumDecks           int
	ReshuffleThreshold int
}

// DefaultRules returns the standard six-deck casino setup.
func DefaultRules() Rules {
	return Rules{
		NumDecks:           cards.DefaultDeckCount,
		ReshuffleThreshold: cards.DefaultReshuffleThreshold,
	}
}

// Session runs rounds against one shoe and one ledger until the replay
// provider calls it a night. The shoe and ledger live as long as the
// session; hands are recreated by the engine every round.
type Session struct {
	gameID        string
	rules         Rules
	counts        PlayerCountProvider
	decisions     game.DecisionProvider
	replays       ReplayProvider
	eventStore    events.EventStore
	eventHandlers []events.EventHandler
	log           *logrus.Entry
}

// SessionOption customizes a session at construction time.
type SessionOption func(*Session)

// WithEventStore makes the session and its engine persist events.
func WithEventStore(store events.EventStore) SessionOption {
	return func(s *Session) {
		s.eventStore = store
	}
}

// WithEventHandler subscribes a handler to every event of the session.
func WithEventHandler(handler events.EventHandler) SessionOption {
	return func(s *Session) {
		s.eventHandlers = append(s.eventHandlers, handler)
	}
}

// WithLogger overrides the session logger.
func WithLogger(logger *logrus.Logger) SessionOption {
	return func(s *Session) {
		s.log = logger.WithField("game_id", s.gameID)
	}
}

// NewSession creates a session wired to its collaborators. None of the
// providers may be nil.
func NewSession(rules Rules, counts PlayerCountProvider, decisions game.DecisionProvider, replays ReplayProvider, opts ...SessionOption) (*Session, error) {
	if counts == nil || decisions == nil || replays == nil {
		return nil, fmt.Errorf("session needs player count, decision and replay providers")
	}

	session := &Session{
		gameID:    uuid.NewString(),
		rules:     rules,
		counts:    counts,
		decisions: decisions,
		replays:   replays,
	}
	session.log = logrus.StandardLogger().WithField("game_id", session.gameID)

	for _, opt := range opts {
		opt(session)
	}

	return session, nil
}

// GameID returns the session's identifier, the key its events are
// stored under.
func (s *Session) GameID() string {
	return s.gameID
}

// Run plays rounds until the replay provider declines or the context is
// cancelled. The final ledger snapshot is returned either way.
func (s *Session) Run(ctx context.Context) (domain.LedgerSnapshot, error) {
	numPlayers, err := s.counts.RequestPlayerCount()
	if err != nil {
		return domain.LedgerSnapshot{}, fmt.Errorf("requesting player count: %w", err)
	}
	if numPlayers < 1 || numPlayers > game.MaxPlayerCount {
		return domain.LedgerSnapshot{}, fmt.Errorf("player count must be between 1 and %d, got %d", game.MaxPlayerCount, numPlayers)
	}

	ledger, err := domain.NewLedger(numPlayers)
	if err != nil {
		return domain.LedgerSnapshot{}, err
	}

	shoe, err := cards.NewShoe(s.rules.NumDecks,
		cards.WithReshuffleThreshold(s.rules.ReshuffleThreshold),
		cards.WithShuffleHook(func(remaining int) {
			s.emitEvent(events.ShoeReshuffled{GameID: s.gameID, Remaining: remaining})
		}),
	)
	if err != nil {
		return domain.LedgerSnapshot{}, fmt.Errorf("building shoe: %w", err)
	}

	engine, err := game.NewRoundEngine(s.gameID, shoe, ledger, numPlayers, s.decisions,
		game.WithEventStore(s.eventStore))
	if err != nil {
		return domain.LedgerSnapshot{}, err
	}
	for _, handler := range s.eventHandlers {
		engine.RegisterEventHandler(handler)
	}

	s.log.WithField("players", numPlayers).Info("session started")

	for {
		if err := ctx.Err(); err != nil {
			return ledger.Snapshot(), err
		}

		if err := engine.PlayRound(); err != nil {
			return ledger.Snapshot(), fmt.Errorf("playing round: %w", err)
		}

		snapshot := ledger.Snapshot()
		s.emitEvent(events.StatsUpdated{GameID: s.gameID, Snapshot: snapshot})
		s.log.WithField("total_rounds", snapshot.TotalRounds).Info("round settled")

		again, err := s.replays.RequestReplay()
		if err != nil {
			return snapshot, fmt.Errorf("requesting replay: %w", err)
		}
		if !again {
			s.log.Info("session ended")
			return snapshot, nil
		}
	}
}

// emitEvent mirrors the engine's emit path for session-level events.
func (s *Session) emitEvent(event events.Event) {
	if s.eventStore != nil {
		if err := s.eventStore.Append(event); err != nil {
			s.log.WithError(err).WithField("event", event.EventName()).Warn("failed to append event")
		}
	}
	for _, handler := range s.eventHandlers {
		handler(event)
	}
}
