package game_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/rachel-online/server/rachel/card"
	"github.com/rachel-online/server/rachel/game"
	"github.com/stretchr/testify/require"
)

func testEngine(top card.Card, deck []card.Card, hands ...[]card.Card) *game.Engine {
	rng := rand.New(rand.NewSource(7))
	players := make([]*game.Player, 0, len(hands))
	for i, cards := range hands {
		p := game.NewPlayer(int64(i+1), fmt.Sprintf("player-%d", i+1))
		p.Hand = game.NewHandOf(cards...)
		players = append(players, p)
	}
	s := game.NewState(players, rng)
	s.Deck = game.NewDeckFrom(rng, deck)
	s.Pile.Add(top)
	s.Status = game.Playing
	return game.NewEngineWithState(s, rng)
}

func totalCards(s *game.State) int {
	total := s.Deck.Size() + s.Pile.Size()
	for _, p := range s.Players {
		total += p.Hand.Size()
	}
	return total
}

func TestDealCards(t *testing.T) {
	players := []*game.Player{
		game.NewPlayer(1, "a"),
		game.NewPlayer(2, "b"),
		game.NewPlayer(3, "c"),
	}
	engine := game.NewEngine(players, rand.New(rand.NewSource(3)))
	engine.DealCards(7)
	s := engine.State()
	for _, p := range s.Players {
		require.Equal(t, 7, p.Hand.Size())
	}
	require.Equal(t, 1, s.Pile.Size())
	top, ok := s.Pile.Top()
	require.True(t, ok)
	require.NotContains(t, []card.Rank{card.Two, card.Jack, card.Queen, card.Ace}, top.Rank)
	require.Equal(t, game.Playing, s.Status)
	require.Equal(t, 52, totalCards(s))
}

func TestPlayCardRejections(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts), nil,
		[]card.Card{card.New(card.Five, card.Spades), card.New(card.Six, card.Hearts)},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()

	require.False(t, engine.PlayCard(0, 1), "out of turn")
	require.False(t, engine.PlayCard(5, 0), "index out of range")
	require.False(t, engine.PlayCard(0, 0), "no rank or suit match")
	require.Equal(t, 2, s.Players[0].Hand.Size())
	require.Equal(t, 1, s.Pile.Size())

	require.True(t, engine.PlayCard(1, 0))
	top, _ := s.Pile.Top()
	require.Equal(t, card.New(card.Six, card.Hearts), top)
	require.Equal(t, 1, s.Players[0].Hand.Size())
	require.Equal(t, 4, totalCards(s))
}

func TestPlayCardsValidatesBeforeMutating(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts), nil,
		[]card.Card{
			card.New(card.Five, card.Hearts),
			card.New(card.Five, card.Clubs),
			card.New(card.Nine, card.Spades),
		},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()

	require.False(t, engine.PlayCards(nil, 0), "empty set")
	require.False(t, engine.PlayCards([]int{0, 2}, 0), "mixed ranks")
	require.False(t, engine.PlayCards([]int{0, 0}, 0), "duplicate index")
	require.Equal(t, 3, s.Players[0].Hand.Size())

	require.True(t, engine.PlayCards([]int{0, 1}, 0))
	require.Equal(t, []card.Card{card.New(card.Nine, card.Spades)}, s.Players[0].Hand.Cards())
	top, _ := s.Pile.Top()
	require.Equal(t, card.New(card.Five, card.Clubs), top)
}

func TestPlayCardsFirstIndexCarriesTheSet(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts), nil,
		[]card.Card{card.New(card.Two, card.Spades), card.New(card.Two, card.Hearts)},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()

	// The spade two matches neither rank nor suit, so it cannot lead.
	require.False(t, engine.PlayCards([]int{0, 1}, 0))
	require.True(t, engine.PlayCards([]int{1, 0}, 0))
	require.Equal(t, 4, s.PendingPickups)
	require.Equal(t, game.PickupTwos, s.PendingPickupType)
}

func TestDrawCardRefusedWhileHoldingAPlay(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts),
		[]card.Card{card.New(card.Three, card.Clubs)},
		[]card.Card{card.New(card.Five, card.Hearts)},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()
	engine.DrawCard()
	require.Equal(t, 1, s.Players[0].Hand.Size())
	require.Equal(t, 0, s.CurrentPlayer)
	require.Equal(t, 0, s.TurnCount)
}

func TestDrawCardDrawsOneAndEndsTurn(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts),
		[]card.Card{card.New(card.Three, card.Clubs)},
		[]card.Card{card.New(card.Five, card.Spades)},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()
	engine.DrawCard()
	require.Equal(t, 2, s.Players[0].Hand.Size())
	require.Equal(t, 1, s.CurrentPlayer)
	require.Equal(t, 1, s.TurnCount)
}

func TestTwoChainForcesDrawOnPlayerWithoutCounter(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts),
		fullDeckCards()[:6],
		[]card.Card{card.New(card.Two, card.Hearts), card.New(card.King, card.Clubs)},
		[]card.Card{card.New(card.Five, card.Spades)},
	)
	s := engine.State()

	require.True(t, engine.PlayCard(0, 0))
	require.Equal(t, 2, s.PendingPickups)
	engine.EndTurn()

	require.Equal(t, 1, s.CurrentPlayer)
	require.Equal(t, 3, s.Players[1].Hand.Size())
	require.Equal(t, 0, s.PendingPickups)
	require.Equal(t, game.PickupNone, s.PendingPickupType)
}

func TestTwoChainPassesBurdenToPlayerHoldingACounter(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts),
		fullDeckCards()[:6],
		[]card.Card{card.New(card.Two, card.Hearts), card.New(card.King, card.Clubs)},
		[]card.Card{card.New(card.Two, card.Spades), card.New(card.Five, card.Spades)},
	)
	s := engine.State()

	require.True(t, engine.PlayCard(0, 0))
	engine.EndTurn()

	require.Equal(t, 1, s.CurrentPlayer)
	require.Equal(t, 2, s.Players[1].Hand.Size())
	require.Equal(t, 2, s.PendingPickups)
	require.Equal(t, game.PickupTwos, s.PendingPickupType)
}

// The second worked example: seven cards, none a two, pending chain of 2.
func TestForcedDrawExampleHandGrowsToNine(t *testing.T) {
	hand := []card.Card{
		card.New(card.King, card.Hearts),
		card.New(card.Queen, card.Clubs),
		card.New(card.Jack, card.Diamonds),
		card.New(card.Ten, card.Spades),
		card.New(card.Nine, card.Hearts),
		card.New(card.Eight, card.Clubs),
		card.New(card.Three, card.Hearts),
	}
	engine := testEngine(card.New(card.Two, card.Hearts),
		fullDeckCards()[:8],
		[]card.Card{card.New(card.Two, card.Diamonds), card.New(card.King, card.Spades)},
		hand,
	)
	s := engine.State()
	s.PendingPickups = 2
	s.PendingPickupType = game.PickupTwos

	require.True(t, engine.PlayCard(0, 0))
	require.Equal(t, 4, s.PendingPickups)
	engine.EndTurn()

	require.Equal(t, 1, s.CurrentPlayer)
	require.Equal(t, 11, s.Players[1].Hand.Size())
	require.Equal(t, 0, s.PendingPickups)
}

func TestSkipStackingAdvancesThreeSeats(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts), nil,
		[]card.Card{card.New(card.Seven, card.Hearts), card.New(card.Seven, card.Clubs), card.New(card.King, card.Clubs)},
		[]card.Card{card.New(card.Five, card.Spades)},
		[]card.Card{card.New(card.Five, card.Clubs)},
		[]card.Card{card.New(card.Five, card.Diamonds)},
	)
	s := engine.State()

	require.True(t, engine.PlayCards([]int{0, 1}, 0))
	require.Equal(t, 2, s.PendingSkips)
	engine.EndTurn()

	require.Equal(t, 3, s.CurrentPlayer)
	require.Equal(t, 0, s.PendingSkips)
}

func TestQueenReversesTurnAdvance(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts), nil,
		[]card.Card{card.New(card.Queen, card.Hearts), card.New(card.King, card.Clubs)},
		[]card.Card{card.New(card.Five, card.Spades)},
		[]card.Card{card.New(card.Five, card.Clubs)},
	)
	s := engine.State()

	require.True(t, engine.PlayCard(0, 0))
	require.Equal(t, game.Counterclockwise, s.Direction)
	engine.EndTurn()
	require.Equal(t, 2, s.CurrentPlayer)
}

func TestNominationBindsOnlyUntilTurnEnd(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts), nil,
		[]card.Card{card.New(card.Ace, card.Hearts), card.New(card.King, card.Clubs)},
		[]card.Card{card.New(card.Five, card.Spades)},
	)
	s := engine.State()

	engine.NominateSuit(card.Clubs)
	require.Nil(t, s.NominatedSuit, "nominate is a no-op without a pending ace")

	require.True(t, engine.PlayCard(0, 0))
	require.True(t, s.NeedsNomination)
	engine.NominateSuit(card.Clubs)
	require.NotNil(t, s.NominatedSuit)
	require.Equal(t, card.Clubs, *s.NominatedSuit)
	require.False(t, s.NeedsNomination)

	engine.EndTurn()
	require.Nil(t, s.NominatedSuit)
	require.False(t, s.NeedsNomination)
}

// The first worked example: a two-player game decided by one card.
func TestWinDetectionExample(t *testing.T) {
	engine := testEngine(card.New(card.Five, card.Spades), nil,
		[]card.Card{card.New(card.Five, card.Hearts)},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()

	require.True(t, engine.PlayCard(0, 0))
	top, _ := s.Pile.Top()
	require.Equal(t, card.New(card.Five, card.Hearts), top)
	require.True(t, s.Players[0].Hand.Empty())

	engine.EndTurn()
	require.Equal(t, game.Finished, s.Status)
	require.Equal(t, []int{0, 1}, s.Finished)
}

func TestFinishedPlayersAreSkipped(t *testing.T) {
	engine := testEngine(card.New(card.Five, card.Spades),
		fullDeckCards()[:4],
		[]card.Card{card.New(card.Five, card.Hearts)},
		[]card.Card{card.New(card.King, card.Diamonds)},
		[]card.Card{card.New(card.King, card.Clubs)},
	)
	s := engine.State()

	require.True(t, engine.PlayCard(0, 0))
	engine.EndTurn()
	require.Equal(t, game.Playing, s.Status)
	require.Equal(t, []int{0}, s.Finished)
	require.Equal(t, 1, s.CurrentPlayer)

	// Neither remaining player can go, so the turn wraps twice and the
	// finished seat stays skipped.
	engine.DrawCard()
	require.Equal(t, 2, s.CurrentPlayer)
	engine.DrawCard()
	require.Equal(t, 1, s.CurrentPlayer)
	require.Equal(t, game.Playing, s.Status)
}

func TestDrawReshufflesBuriedDiscards(t *testing.T) {
	engine := testEngine(card.New(card.Nine, card.Hearts), nil,
		[]card.Card{card.New(card.Five, card.Spades)},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()
	s.Pile.Add(card.New(card.Three, card.Diamonds))
	s.Pile.Add(card.New(card.Four, card.Diamonds))
	before := totalCards(s)

	// Player 0 has no diamond four match and must draw from an empty deck.
	engine.DrawCard()

	require.Equal(t, 2, s.Players[0].Hand.Size())
	require.Equal(t, 1, s.Pile.Size())
	top, _ := s.Pile.Top()
	require.Equal(t, card.New(card.Four, card.Diamonds), top, "active card survives the reshuffle")
	require.Equal(t, 1, s.Deck.Size())
	require.Equal(t, before, totalCards(s))
}

func TestDrawFromStarvedDeckComesUpShort(t *testing.T) {
	engine := testEngine(card.New(card.Four, card.Diamonds), nil,
		[]card.Card{card.New(card.Five, card.Spades)},
		[]card.Card{card.New(card.Nine, card.Clubs)},
	)
	s := engine.State()

	engine.DrawCard()

	require.Equal(t, 1, s.Players[0].Hand.Size(), "nothing left to draw")
	require.Equal(t, 1, s.CurrentPlayer, "turn still passes")
	require.Equal(t, 1, s.TurnCount)
}

func TestCardConservationAcrossAFullDeal(t *testing.T) {
	players := []*game.Player{
		game.NewPlayer(1, "a"),
		game.NewPlayer(2, "b"),
		game.NewPlayer(3, "c"),
		game.NewPlayer(4, "d"),
	}
	engine := game.NewEngine(players, rand.New(rand.NewSource(11)))
	engine.DealCards(7)
	s := engine.State()
	require.Equal(t, 52, totalCards(s))

	for i := 0; i < 10 && s.Status == game.Playing; i++ {
		engine.DrawCard()
		require.Equal(t, 52, totalCards(s))
	}
}
