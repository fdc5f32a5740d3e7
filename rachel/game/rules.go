package game

import (
	"github.com/rachel-online/server/rachel/card"
)

// CanPlay reports whether candidate may be played on top. Nomination wins
// over a pending pickup chain, which wins over the plain rank/suit match.
func CanPlay(candidate card.Card, top card.Card, s *State) bool {
	if s.NominatedSuit != nil {
		return candidate.Suit == *s.NominatedSuit || candidate.Rank == card.Ace
	}
	if s.PendingPickupType != PickupNone && s.PendingPickups > 0 {
		switch s.PendingPickupType {
		case PickupTwos:
			return candidate.Rank == card.Two
		case PickupBlackJacks:
			// Black jacks stack, red jacks counter.
			return candidate.Rank == card.Jack
		}
	}
	return candidate.Rank == top.Rank || candidate.Suit == top.Suit
}
