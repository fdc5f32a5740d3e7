package ai

import (
	"math/rand"

	"github.com/rachel-online/server/rachel/card"
	"github.com/rachel-online/server/rachel/game"
)

// hardStrategy reads the table before committing: who is closest to
// winning, who sits next in each direction, what the pile has seen
// lately. It stacks with finer thresholds than medium, holds aces in
// reserve and nominates the suit it can most afford to lose.
type hardStrategy struct {
	rng *rand.Rand
}

func (s *hardStrategy) Name() string {
	return "hard"
}

type analysis struct {
	myCount      int
	nextCount    int
	prevCount    int
	closestCount int
	playersLeft  int
	recentTwos   bool
}

func analyze(player *game.Player, state *game.State) analysis {
	my := state.CurrentPlayer
	total := len(state.Players)

	next := (my + 1) % total
	prev := (my - 1 + total) % total
	if state.Direction == game.Counterclockwise {
		next, prev = prev, next
	}

	closest := 99
	playersLeft := 0
	for index, other := range state.Players {
		if other.Hand.Size() > 0 {
			playersLeft++
		}
		if index != my && other.Hand.Size() < closest {
			closest = other.Hand.Size()
		}
	}

	recentTwos := false
	for _, c := range state.Pile.Recent(5) {
		if c.Rank == card.Two {
			recentTwos = true
			break
		}
	}

	return analysis{
		myCount:      player.Hand.Size(),
		nextCount:    state.Players[next].Hand.Size(),
		prevCount:    state.Players[prev].Hand.Size(),
		closestCount: closest,
		playersLeft:  playersLeft,
		recentTwos:   recentTwos,
	}
}

func (s *hardStrategy) DecideMove(player *game.Player, state *game.State) Decision {
	found := playableCards(player, state)
	if len(found) == 0 {
		return drawDecision(state)
	}
	a := analyze(player, state)
	for _, candidate := range found {
		set := sameRank(player, candidate.card.Rank)
		if len(set) > 1 {
			stack, count := s.evaluateStacking(candidate.card.Rank, set, a, player)
			if stack && count > 0 {
				ordered := orderFirst(indicesOf(set), candidate.index)
				indices := ordered[:minInt(count, len(ordered))]
				var nominate *card.Suit
				if candidate.card.Rank == card.Ace {
					suit := s.strategicSuit(player, set[0].card.Suit)
					nominate = &suit
				}
				return Decision{Kind: PlayCards, Indices: indices, Nominate: nominate}
			}
		}
	}
	chosen := s.optimalCard(found, player, state, a)
	var nominate *card.Suit
	if chosen.card.Rank == card.Ace {
		suit := s.strategicSuit(player, chosen.card.Suit)
		nominate = &suit
	}
	return Decision{Kind: PlayCard, Index: chosen.index, Nominate: nominate}
}

func (s *hardStrategy) evaluateStacking(rank card.Rank, set []playable, a analysis, player *game.Player) (bool, int) {
	if rank == card.Two {
		twos := countRank(player.Hand.Cards(), card.Two)
		if a.closestCount <= 2 {
			// Someone is about to go out, hit them now.
			if twos >= 3 {
				return true, len(set) - 1
			}
			if twos == 2 {
				return true, 2
			}
			return false, 0
		}
		if a.recentTwos {
			if a.myCount <= 4 {
				return true, len(set)
			}
			return false, 0
		}
		if a.myCount <= 5 {
			return true, len(set)
		}
		if a.myCount > 10 && twos > len(set) {
			return true, minInt(2, len(set))
		}
		return false, 0
	}
	if rank == card.Jack {
		// Reversal-sensitive: prev becomes next after our jacks land.
		if a.prevCount <= 3 {
			return true, len(set)
		}
		if a.myCount > 8 {
			return true, len(set)
		}
		return false, 0
	}
	if rank == card.Queen {
		if a.nextCount <= 2 {
			// Skipping too far hands the turn straight back.
			return true, minInt(2, len(set))
		}
		if a.myCount > 7 {
			return true, len(set)
		}
		return false, 0
	}
	if rank == card.Ace {
		if a.myCount <= 4 {
			return true, len(set)
		}
		if len(set) > 2 {
			return true, len(set) - 1
		}
		return false, 0
	}
	if a.myCount <= 3 && a.closestCount <= 3 {
		return false, 0
	}
	return true, len(set)
}

func (s *hardStrategy) optimalCard(found []playable, player *game.Player, state *game.State, a analysis) playable {
	top, ok := state.Pile.Top()
	if !ok {
		return found[0]
	}

	if a.nextCount <= 2 {
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

	if a.myCount > 5 {
		for _, entry := range found {
			if entry.card.Rank == card.Ace {
				return entry
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

	// Keep attack and control cards back, spend suit-matching plain ones.
	var normal []playable
	for _, entry := range found {
		switch entry.card.Rank {
		case card.Two, card.Jack, card.Ace:
		default:
			normal = append(normal, entry)
		}
	}
	if len(normal) > 0 {
		for _, entry := range normal {
			if entry.card.Suit == top.Suit {
				return entry
			}
		}
		return normal[0]
	}
	return found[0]
}

// strategicSuit nominates the suit the hand holds least of, or one absent
// from the hand entirely, to keep stronger suits in reserve.
func (s *hardStrategy) strategicSuit(player *game.Player, excluding card.Suit) card.Suit {
	counts := suitCounts(player.Hand.Cards(), &excluding)
	least := card.Hearts
	leastCount := -1
	for _, suit := range card.Suits {
		if suit == excluding {
			continue
		}
		count, held := counts[suit]
		if !held {
			continue
		}
		if leastCount == -1 || count < leastCount {
			least = suit
			leastCount = count
		}
	}
	if leastCount != -1 {
		return least
	}
	var missing []card.Suit
	for _, suit := range card.Suits {
		if suit != excluding && counts[suit] == 0 {
			missing = append(missing, suit)
		}
	}
	if len(missing) > 0 {
		return missing[s.rng.Intn(len(missing))]
	}
	return randomSuit(s.rng, excluding)
}
