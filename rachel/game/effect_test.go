package game_test

import (
	"testing"

	"github.com/rachel-online/server/rachel/card"
	"github.com/rachel-online/server/rachel/game"
	"github.com/stretchr/testify/require"
)

func TestEffectFor(t *testing.T) {
	require.Equal(t, game.EffectPickUp, game.EffectFor(card.New(card.Two, card.Hearts)).Kind)
	require.Equal(t, game.EffectSkip, game.EffectFor(card.New(card.Seven, card.Hearts)).Kind)
	require.Equal(t, game.EffectReverse, game.EffectFor(card.New(card.Queen, card.Hearts)).Kind)
	require.Equal(t, game.EffectJack, game.EffectFor(card.New(card.Jack, card.Hearts)).Kind)
	require.Equal(t, game.EffectNominate, game.EffectFor(card.New(card.Ace, card.Hearts)).Kind)
	require.Equal(t, game.EffectNone, game.EffectFor(card.New(card.Nine, card.Hearts)).Kind)
}

func TestTwoStacksPickups(t *testing.T) {
	s := &game.State{}
	game.EffectFor(card.New(card.Two, card.Hearts)).Apply(s)
	require.Equal(t, 2, s.PendingPickups)
	require.Equal(t, game.PickupTwos, s.PendingPickupType)

	game.EffectFor(card.New(card.Two, card.Spades)).Apply(s)
	require.Equal(t, 4, s.PendingPickups)
	require.Equal(t, game.PickupTwos, s.PendingPickupType)
}

func TestTwoDoesNotStackOntoBlackJackChain(t *testing.T) {
	s := &game.State{PendingPickups: 5, PendingPickupType: game.PickupBlackJacks}
	game.EffectFor(card.New(card.Two, card.Hearts)).Apply(s)
	require.Equal(t, 5, s.PendingPickups)
	require.Equal(t, game.PickupBlackJacks, s.PendingPickupType)
}

func TestBlackJackAddsFive(t *testing.T) {
	s := &game.State{}
	game.EffectFor(card.New(card.Jack, card.Spades)).Apply(s)
	require.Equal(t, 5, s.PendingPickups)
	require.Equal(t, game.PickupBlackJacks, s.PendingPickupType)

	game.EffectFor(card.New(card.Jack, card.Clubs)).Apply(s)
	require.Equal(t, 10, s.PendingPickups)
}

func TestRedJackCountersFive(t *testing.T) {
	s := &game.State{PendingPickups: 10, PendingPickupType: game.PickupBlackJacks}
	game.EffectFor(card.New(card.Jack, card.Hearts)).Apply(s)
	require.Equal(t, 5, s.PendingPickups)
	require.Equal(t, game.PickupBlackJacks, s.PendingPickupType)

	game.EffectFor(card.New(card.Jack, card.Diamonds)).Apply(s)
	require.Equal(t, 0, s.PendingPickups)
	require.Equal(t, game.PickupNone, s.PendingPickupType)
}

func TestRedJackWithoutChainDoesNothing(t *testing.T) {
	s := &game.State{}
	game.EffectFor(card.New(card.Jack, card.Hearts)).Apply(s)
	require.Equal(t, 0, s.PendingPickups)
	require.Equal(t, game.PickupNone, s.PendingPickupType)
}

func TestSevenAddsSkip(t *testing.T) {
	s := &game.State{}
	game.EffectFor(card.New(card.Seven, card.Hearts)).Apply(s)
	game.EffectFor(card.New(card.Seven, card.Clubs)).Apply(s)
	require.Equal(t, 2, s.PendingSkips)
}

func TestQueenReversesDirection(t *testing.T) {
	s := &game.State{}
	require.Equal(t, game.Clockwise, s.Direction)
	game.EffectFor(card.New(card.Queen, card.Hearts)).Apply(s)
	require.Equal(t, game.Counterclockwise, s.Direction)
	game.EffectFor(card.New(card.Queen, card.Spades)).Apply(s)
	require.Equal(t, game.Clockwise, s.Direction)
}

func TestAceOpensNomination(t *testing.T) {
	s := &game.State{}
	game.EffectFor(card.New(card.Ace, card.Hearts)).Apply(s)
	require.True(t, s.NeedsNomination)
	require.Nil(t, s.NominatedSuit)
}
