package ai

import (
	"math/rand"

	"github.com/rachel-online/server/rachel/card"
	"github.com/rachel-online/server/rachel/game"
)

// easyStrategy plays the first legal card it sees, stacking whole
// same-rank sets blindly and nominating random suits.
type easyStrategy struct {
	rng *rand.Rand
}

func (s *easyStrategy) Name() string {
	return "easy"
}

func (s *easyStrategy) DecideMove(player *game.Player, state *game.State) Decision {
	found := playableCards(player, state)
	if len(found) == 0 {
		return drawDecision(state)
	}
	for _, candidate := range found {
		set := sameRank(player, candidate.card.Rank)
		if len(set) > 1 {
			indices := orderFirst(indicesOf(set), candidate.index)
			var nominate *card.Suit
			if candidate.card.Rank == card.Ace {
				suit := randomSuit(s.rng, set[0].card.Suit)
				nominate = &suit
			}
			return Decision{Kind: PlayCards, Indices: indices, Nominate: nominate}
		}
	}
	chosen := found[0]
	var nominate *card.Suit
	if chosen.card.Rank == card.Ace {
		suit := randomSuit(s.rng, chosen.card.Suit)
		nominate = &suit
	}
	return Decision{Kind: PlayCard, Index: chosen.index, Nominate: nominate}
}
