package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildHandViewPlayer(t *testing.T) {
	hand := handOf(t, PlayerOwner(0), "A♠", "K♥")

	view := BuildHandView(hand, false)

	require.Equal(t, PlayerOwner(0), view.Owner)
	require.Len(t, view.Cards, 2)
	require.Equal(t, 21, view.Score)
	require.False(t, view.ScoreMasked)
}

func TestBuildHandViewDealerMasked(t *testing.T) {
	hand := handOf(t, DealerOwner, "A♠", "K♥")

	view := BuildHandView(hand, false)

	require.True(t, view.ScoreMasked)
	require.Equal(t, 2, view.NumCards)
	require.Len(t, view.Cards, 1, "only the upcard is visible")
	require.Equal(t, "K♥", view.Cards[0].String())
}

func TestBuildHandViewDealerRevealed(t *testing.T) {
	hand := handOf(t, DealerOwner, "A♠", "K♥")

	view := BuildHandView(hand, true)

	require.False(t, view.ScoreMasked)
	require.Len(t, view.Cards, 2)
	require.Equal(t, 21, view.Score)
}
