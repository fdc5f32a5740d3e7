package ai

import (
	"math/rand"

	"github.com/rachel-online/server/rachel/card"
	"github.com/rachel-online/server/rachel/game"
)

// mediumStrategy stacks with per-rank caution, attacks opponents who are
// close to winning and otherwise sheds its highest card.
type mediumStrategy struct {
	rng *rand.Rand
}

func (s *mediumStrategy) Name() string {
	return "medium"
}

func (s *mediumStrategy) DecideMove(player *game.Player, state *game.State) Decision {
	found := playableCards(player, state)
	if len(found) == 0 {
		return drawDecision(state)
	}
	for _, candidate := range found {
		set := sameRank(player, candidate.card.Rank)
		if len(set) > 1 && s.shouldStack(candidate.card.Rank, len(set), player.Hand.Size(), state) {
			indices := orderFirst(indicesOf(set), candidate.index)
			var nominate *card.Suit
			if candidate.card.Rank == card.Ace {
				suit := s.bestSuit(player, nil)
				nominate = &suit
			}
			return Decision{Kind: PlayCards, Indices: indices, Nominate: nominate}
		}
	}
	chosen := s.bestCard(found, player, state)
	var nominate *card.Suit
	if chosen.card.Rank == card.Ace {
		suit := s.bestSuit(player, &chosen.card.Suit)
		nominate = &suit
	}
	return Decision{Kind: PlayCard, Index: chosen.index, Nominate: nominate}
}

func (s *mediumStrategy) shouldStack(rank card.Rank, setSize, handSize int, state *game.State) bool {
	if rank == card.Two {
		potential := setSize * 2
		if handSize > 10 && potential > 4 {
			return false
		}
		if handSize <= 4 {
			return true
		}
		// Only commit the whole set with a two left in reserve.
		twos := countRank(state.Current().Hand.Cards(), card.Two)
		return twos > setSize
	}
	if rank == card.Jack || rank == card.Queen || rank == card.Ace {
		return handSize > 7
	}
	return true
}

func (s *mediumStrategy) bestCard(found []playable, player *game.Player, state *game.State) playable {
	opponentClose := false
	for _, other := range state.Players {
		if other.ID != player.ID && other.Hand.Size() <= 3 {
			opponentClose = true
			break
		}
	}
	if opponentClose {
		for _, entry := range found {
			if entry.card.Rank == card.Two {
				return entry
			}
		}
		for _, entry := range found {
			if entry.card.Rank == card.Jack {
				return entry
			}
		}
	}
	best := found[0]
	for _, entry := range found[1:] {
		if entry.card.Rank.Value() > best.card.Rank.Value() {
			best = entry
		}
	}
	return best
}

// bestSuit picks the suit the hand holds most of, excluding the suit just
// played, falling back to a random other suit.
func (s *mediumStrategy) bestSuit(player *game.Player, excluding *card.Suit) card.Suit {
	counts := suitCounts(player.Hand.Cards(), excluding)
	best := card.Hearts
	bestCount := 0
	for _, suit := range card.Suits {
		if counts[suit] > bestCount {
			best = suit
			bestCount = counts[suit]
		}
	}
	if bestCount > 0 {
		return best
	}
	if excluding != nil {
		return randomSuit(s.rng, *excluding)
	}
	return card.Suits[s.rng.Intn(len(card.Suits))]
}
