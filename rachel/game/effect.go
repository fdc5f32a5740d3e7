package game

import (
	"github.com/rachel-online/server/rachel/card"
)

type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectPickUp
	EffectSkip
	EffectReverse
	EffectJack
	EffectNominate
)

// Effect is what a just-played card does to the game. The set is closed:
// Two stacks pickups, Seven skips, Queen reverses, Jack attacks or
// counters by color, Ace opens a suit nomination.
type Effect struct {
	Kind  EffectKind
	Count int
	Type  PickupType
	Suit  card.Suit
}

func EffectFor(c card.Card) Effect {
	switch c.Rank {
	case card.Two:
		return Effect{Kind: EffectPickUp, Count: 2, Type: PickupTwos}
	case card.Seven:
		return Effect{Kind: EffectSkip}
	case card.Queen:
		return Effect{Kind: EffectReverse}
	case card.Jack:
		return Effect{Kind: EffectJack, Suit: c.Suit}
	case card.Ace:
		return Effect{Kind: EffectNominate}
	default:
		return Effect{Kind: EffectNone}
	}
}

func (e Effect) Apply(s *State) {
	switch e.Kind {
	case EffectNone:
	case EffectPickUp:
		// Only stack onto an empty or same-type chain.
		if s.PendingPickupType == PickupNone || s.PendingPickupType == e.Type {
			s.PendingPickups += e.Count
			s.PendingPickupType = e.Type
		}
	case EffectSkip:
		s.PendingSkips++
	case EffectReverse:
		s.Direction = s.Direction.Reversed()
	case EffectJack:
		if e.Suit.Black() {
			if s.PendingPickupType == PickupNone || s.PendingPickupType == PickupBlackJacks {
				s.PendingPickups += 5
				s.PendingPickupType = PickupBlackJacks
			}
			return
		}
		// A red jack only counters an active black-jack chain.
		if s.PendingPickupType == PickupBlackJacks && s.PendingPickups > 0 {
			s.PendingPickups -= 5
			if s.PendingPickups <= 0 {
				s.PendingPickups = 0
				s.PendingPickupType = PickupNone
			}
		}
	case EffectNominate:
		s.NeedsNomination = true
	}
}
