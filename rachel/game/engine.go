package game

import (
	"math/rand"
	"time"

	"github.com/rachel-online/server/rachel/card"
	"github.com/ratel-online/core/log"
)

// Engine owns one State and is its only writer. Callers drive a turn as
// PlayCard (or PlayCards / DrawCard), optionally NominateSuit, then
// EndTurn. Illegal moves are rejected with false and no mutation.
type Engine struct {
	state *State
	rng   *rand.Rand
}

func NewEngine(players []*Player, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{state: NewState(players, rng), rng: rng}
}

// NewEngineWithState wraps a prepared state, mostly for tests.
func NewEngineWithState(state *State, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{state: state, rng: rng}
}

func (e *Engine) State() *State {
	return e.state
}

// DealCards deals perPlayer cards round-robin, seeds the discard pile and
// moves the game to Playing. Special ranks are not allowed as the seed
// card; rejected seeds go back under the deck so no card leaks.
func (e *Engine) DealCards(perPlayer int) {
	s := e.state
	for i := 0; i < perPlayer; i++ {
		for _, player := range s.Players {
			if c, ok := s.Deck.Draw(); ok {
				player.Hand.AddCard(c)
			}
		}
	}
	for tries := s.Deck.Size(); tries > 0; tries-- {
		c, ok := s.Deck.Draw()
		if !ok {
			break
		}
		if specialSeed(c.Rank) {
			s.Deck.PutBottom(c)
			continue
		}
		s.Pile.Add(c)
		break
	}
	s.Status = Playing
}

func specialSeed(r card.Rank) bool {
	switch r {
	case card.Two, card.Jack, card.Queen, card.Ace:
		return true
	}
	return false
}

// CanPlay reports whether the indexed player may legally play c right now.
func (e *Engine) CanPlay(c card.Card, playerIndex int) bool {
	if playerIndex != e.state.CurrentPlayer {
		return false
	}
	top, ok := e.state.Pile.Top()
	if !ok {
		return false
	}
	return CanPlay(c, top, e.state)
}

// PlayCard moves one card from hand to pile and applies its effect. The
// turn does not advance; callers nominate (on an Ace) and then EndTurn.
func (e *Engine) PlayCard(cardIndex, playerIndex int) bool {
	s := e.state
	if playerIndex != s.CurrentPlayer {
		return false
	}
	top, ok := s.Pile.Top()
	if !ok {
		return false
	}
	c, ok := s.Players[playerIndex].Hand.CardAt(cardIndex)
	if !ok || !CanPlay(c, top, s) {
		return false
	}
	played, _ := s.Players[playerIndex].Hand.RemoveAt(cardIndex)
	s.Pile.Add(played)
	EffectFor(played).Apply(s)
	return true
}

// PlayCards plays a same-rank set in the order given. The first index must
// satisfy the table rules; the rest ride on the rank match. Nothing is
// removed until the whole set validates.
func (e *Engine) PlayCards(indices []int, playerIndex int) bool {
	s := e.state
	if len(indices) == 0 || playerIndex != s.CurrentPlayer {
		return false
	}
	top, ok := s.Pile.Top()
	if !ok {
		return false
	}
	hand := s.Players[playerIndex].Hand
	first, ok := hand.CardAt(indices[0])
	if !ok || !CanPlay(first, top, s) {
		return false
	}
	seen := make(map[int]bool, len(indices))
	for _, index := range indices {
		c, ok := hand.CardAt(index)
		if !ok || seen[index] || c.Rank != first.Rank {
			return false
		}
		seen[index] = true
	}
	remaining := append([]int(nil), indices...)
	for i, index := range remaining {
		// Validated above, removal cannot fail.
		played, _ := hand.RemoveAt(index)
		s.Pile.Add(played)
		EffectFor(played).Apply(s)
		for j := i + 1; j < len(remaining); j++ {
			if remaining[j] > index {
				remaining[j]--
			}
		}
	}
	return true
}

// DrawCard draws for the current player and ends the turn. Refusing to
// play while holding a legal card is not allowed, so with no pickups
// pending and a valid move available this is a no-op.
func (e *Engine) DrawCard() {
	s := e.state
	if s.PendingPickups == 0 && e.PlayerHasValidMove() {
		return
	}
	if s.PendingPickups > 0 {
		e.pickupCards(s.PendingPickups)
		s.PendingPickups = 0
		s.PendingPickupType = PickupNone
	} else {
		e.pickupCards(1)
	}
	e.EndTurn()
}

// NominateSuit binds the suit choice of a just-played Ace. A no-op unless
// a nomination is actually pending.
func (e *Engine) NominateSuit(suit card.Suit) {
	if !e.state.NeedsNomination {
		return
	}
	chosen := suit
	e.state.NominatedSuit = &chosen
	e.state.NeedsNomination = false
}

// EndTurn closes the acting player's turn: records a just-emptied hand in
// the finish order, advances past finished players, burns pending skips,
// force-draws the incoming player when they hold no counter to a pending
// pickup, and checks for game end.
func (e *Engine) EndTurn() {
	s := e.state
	s.TurnCount++
	s.NominatedSuit = nil
	s.NeedsNomination = false

	if s.Current().Hand.Empty() && !s.HasFinished(s.CurrentPlayer) {
		s.Finished = append(s.Finished, s.CurrentPlayer)
	}

	e.moveToNextPlayer()

	for s.PendingSkips > 0 {
		s.PendingSkips--
		e.moveToNextPlayer()
	}

	if s.PendingPickups > 0 && !e.PlayerHasValidMove() {
		e.pickupCards(s.PendingPickups)
		s.PendingPickups = 0
		s.PendingPickupType = PickupNone
	}

	e.checkForGameEnd()
}

// PlayerHasValidMove reports whether any card in the current player's
// hand is legal on the current top card.
func (e *Engine) PlayerHasValidMove() bool {
	s := e.state
	top, ok := s.Pile.Top()
	if !ok {
		return false
	}
	for _, c := range s.Current().Hand.Cards() {
		if CanPlay(c, top, s) {
			return true
		}
	}
	return false
}

func (e *Engine) moveToNextPlayer() {
	s := e.state
	if len(s.Finished) >= len(s.Players) {
		return
	}
	for {
		if s.Direction == Clockwise {
			s.CurrentPlayer = (s.CurrentPlayer + 1) % len(s.Players)
		} else {
			s.CurrentPlayer = (s.CurrentPlayer - 1 + len(s.Players)) % len(s.Players)
		}
		if !s.HasFinished(s.CurrentPlayer) {
			return
		}
	}
}

func (e *Engine) pickupCards(count int) {
	s := e.state
	for i := 0; i < count; i++ {
		c, ok := s.Deck.Draw()
		if !ok {
			e.reshuffle()
			c, ok = s.Deck.Draw()
			if !ok {
				// Deck and pile are both exhausted, the draw comes up
				// short and the turn proceeds.
				log.Infof("deck starved, %s draws %d short\n", s.Current().Name, count-i)
				return
			}
		}
		s.Current().Hand.AddCard(c)
	}
}

// reshuffle rebuilds the deck from the buried discards, leaving the
// active top card in place.
func (e *Engine) reshuffle() {
	buried := e.state.Pile.TakeBuried()
	if len(buried) == 0 {
		return
	}
	e.state.Deck = NewDeckFrom(e.rng, buried)
}

func (e *Engine) checkForGameEnd() {
	s := e.state
	remaining := -1
	count := 0
	for index := range s.Players {
		if !s.HasFinished(index) {
			remaining = index
			count++
		}
	}
	if count <= 1 {
		s.Status = Finished
		if count == 1 {
			s.Finished = append(s.Finished, remaining)
		}
	}
}
