package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventStoreAppendAndLoad(t *testing.T) {
	store := NewInMemoryEventStore()

	err := store.Append(RoundStarted{GameID: "game-1", RoundID: "round-1", Players: []string{"Player 1"}})
	require.NoError(t, err)
	err = store.Append(PlayerStood{GameID: "game-1", RoundID: "round-1", Owner: "Player 1", Score: 18})
	require.NoError(t, err)
	err = store.Append(RoundStarted{GameID: "game-2", RoundID: "round-9"})
	require.NoError(t, err)

	loaded, err := store.LoadEvents("game-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "ROUND_STARTED", loaded[0].EventName())
	assert.Equal(t, "PLAYER_STOOD", loaded[1].EventName())

	other, err := store.LoadEvents("game-2")
	require.NoError(t, err)
	require.Len(t, other, 1)
}

func TestInMemoryEventStoreRejectsEventsWithoutGameID(t *testing.T) {
	store := NewInMemoryEventStore()
	err := store.Append(RoundStarted{})
	require.Error(t, err)
}

func TestInMemoryEventStoreLoadUnknownGame(t *testing.T) {
	store := NewInMemoryEventStore()
	loaded, err := store.LoadEvents("missing")
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestGetGameID(t *testing.T) {
	assert.Equal(t, "g", GetGameID(RoundStarted{GameID: "g"}))
	assert.Equal(t, "g", GetGameID(&RoundStarted{GameID: "g"}))
	assert.Equal(t, "", GetGameID(stubEvent{}))
}

type stubEvent struct{}

func (stubEvent) EventName() string { return "STUB" }
