package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShoe(t *testing.T, numDecks int, opts ...ShoeOption) *Shoe {
	t.Helper()
	opts = append([]ShoeOption{WithRand(rand.New(rand.NewSource(42)))}, opts...)
	shoe, err := NewShoe(numDecks, opts...)
	require.NoError(t, err)
	return shoe
}

func TestNewShoeComposition(t *testing.T) {
	tests := []struct {
		name     string
		numDecks int
	}{
		{"single deck", 1},
		{"two decks", 2},
		{"standard casino shoe", DefaultDeckCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threshold := 10
			if tt.numDecks >= 2 {
				threshold = DefaultReshuffleThreshold
			}
			shoe := newTestShoe(t, tt.numDecks, WithReshuffleThreshold(threshold))

			require.Equal(t, tt.numDecks*DeckSize, shoe.Size())
			require.Equal(t, shoe.Size(), shoe.Remaining())

			// The shoe is a multiset of numDecks copies of each canonical card
			pile := shoe.Cards()
			for _, card := range NewDeck() {
				assert.Equal(t, tt.numDecks, pile.Count(card),
					"shoe should hold %d copies of %s", tt.numDecks, card)
			}
		})
	}
}

func TestNewShoeRejectsBadConfig(t *testing.T) {
	_, err := NewShoe(0)
	require.Error(t, err)

	// Threshold must leave at least one dealable card
	_, err = NewShoe(1, WithReshuffleThreshold(52))
	require.Error(t, err)

	_, err = NewShoe(1, WithReshuffleThreshold(-1))
	require.Error(t, err)
}

func TestShuffleIsAPermutation(t *testing.T) {
	shoe := newTestShoe(t, 2)
	before := shoe.Cards()

	shoe.Shuffle()
	after := shoe.Cards()

	require.Len(t, after, len(before))
	for _, card := range NewDeck() {
		assert.Equal(t, before.Count(card), after.Count(card))
	}
	require.Equal(t, 0, shoe.Size()-shoe.Remaining(), "shuffle resets the cursor")
}

func TestShuffleMidShoe(t *testing.T) {
	shoe := newTestShoe(t, 2)

	for i := 0; i < 20; i++ {
		_, err := shoe.Draw()
		require.NoError(t, err)
	}
	require.Equal(t, shoe.Size()-20, shoe.Remaining())

	shoe.Shuffle()
	require.Equal(t, shoe.Size(), shoe.Remaining(), "mid-shoe shuffle folds dealt cards back in")
}

func TestDrawAdvancesCursor(t *testing.T) {
	shoe := newTestShoe(t, DefaultDeckCount)

	first, err := shoe.Draw()
	require.NoError(t, err)
	require.False(t, first.IsEmpty())
	require.Equal(t, shoe.Size()-1, shoe.Remaining())
}

func TestDrawReshufflesAtThreshold(t *testing.T) {
	shoe := newTestShoe(t, DefaultDeckCount)
	dealable := shoe.Size() - DefaultReshuffleThreshold

	// Deal down to the threshold: the undealt tail is never handed out
	for i := 0; i < dealable; i++ {
		_, err := shoe.Draw()
		require.NoError(t, err)
		require.GreaterOrEqual(t, shoe.Remaining(), DefaultReshuffleThreshold)
	}

	// The next draw crosses the threshold and forces a full reshuffle
	_, err := shoe.Draw()
	require.NoError(t, err)
	require.Equal(t, shoe.Size()-1, shoe.Remaining())
}

func TestDrawNeverExhausts(t *testing.T) {
	var reshuffles int
	shoe := newTestShoe(t, DefaultDeckCount, WithShuffleHook(func(remaining int) {
		reshuffles++
	}))

	// Draw far more cards than the shoe holds
	for i := 0; i < shoe.Size()*10; i++ {
		card, err := shoe.Draw()
		require.NoError(t, err)
		require.False(t, card.IsEmpty())
	}

	require.Greater(t, reshuffles, 0, "long sessions must recycle the shoe")
}

func TestShuffleHookReportsRemaining(t *testing.T) {
	var seen []int
	shoe := newTestShoe(t, 1,
		WithReshuffleThreshold(10),
		WithShuffleHook(func(remaining int) { seen = append(seen, remaining) }))

	// Fires once for the construction shuffle, once for the explicit one
	require.Len(t, seen, 1)
	shoe.Shuffle()
	require.Equal(t, []int{shoe.Size(), shoe.Size()}, seen)
}

func TestInjectedRandIsDeterministic(t *testing.T) {
	a := newTestShoe(t, DefaultDeckCount)
	b := newTestShoe(t, DefaultDeckCount)

	for i := 0; i < 100; i++ {
		cardA, errA := a.Draw()
		cardB, errB := b.Draw()
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.True(t, cardA.Equals(cardB), "same seed should deal the same sequence")
	}
}
