package card_test

import (
	"testing"

	"github.com/rachel-online/server/rachel/card"
	"github.com/stretchr/testify/require"
)

func TestRankValue(t *testing.T) {
	scenarios := []struct {
		description string
		rank        card.Rank
		expected    int
	}{
		{description: "two_is_lowest", rank: card.Two, expected: 2},
		{description: "ten_keeps_face_value", rank: card.Ten, expected: 10},
		{description: "king_is_highest", rank: card.King, expected: 13},
		{description: "ace_counts_low", rank: card.Ace, expected: 1},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.rank.Value())
		})
	}
}

func TestRankString(t *testing.T) {
	require.Equal(t, "2", card.Two.String())
	require.Equal(t, "10", card.Ten.String())
	require.Equal(t, "J", card.Jack.String())
	require.Equal(t, "Q", card.Queen.String())
	require.Equal(t, "K", card.King.String())
	require.Equal(t, "A", card.Ace.String())
}

func TestSuitColors(t *testing.T) {
	require.True(t, card.Hearts.Red())
	require.True(t, card.Diamonds.Red())
	require.True(t, card.Clubs.Black())
	require.True(t, card.Spades.Black())
	require.False(t, card.Hearts.Black())
	require.False(t, card.Spades.Red())
}

func TestSuitByName(t *testing.T) {
	for _, suit := range card.Suits {
		found, err := card.SuitByName(suit.Name())
		require.NoError(t, err)
		require.Equal(t, suit, found)
	}
	_, err := card.SuitByName("stars")
	require.Error(t, err)
}
