package ai

import (
	"math/rand"
	"time"

	"github.com/rachel-online/server/rachel/card"
	"github.com/rachel-online/server/rachel/game"
)

// Strategy decides a move for one player. Implementations read the state,
// never mutate it, and never propose an index that is illegal at decision
// time.
type Strategy interface {
	Name() string
	DecideMove(player *game.Player, state *game.State) Decision
}

// ForLevel maps a bot tier to its strategy. The tier set is closed.
func ForLevel(level game.Level, rng *rand.Rand) Strategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch level {
	case game.LevelEasy:
		return &easyStrategy{rng: rng}
	case game.LevelHard:
		return &hardStrategy{rng: rng}
	default:
		return &mediumStrategy{rng: rng}
	}
}

type playable struct {
	index int
	card  card.Card
}

func playableCards(player *game.Player, state *game.State) []playable {
	top, ok := state.Pile.Top()
	if !ok {
		return nil
	}
	var found []playable
	for index, c := range player.Hand.Cards() {
		if game.CanPlay(c, top, state) {
			found = append(found, playable{index: index, card: c})
		}
	}
	return found
}

func sameRank(player *game.Player, rank card.Rank) []playable {
	var set []playable
	for index, c := range player.Hand.Cards() {
		if c.Rank == rank {
			set = append(set, playable{index: index, card: c})
		}
	}
	return set
}

func indicesOf(set []playable) []int {
	indices := make([]int, len(set))
	for i, entry := range set {
		indices[i] = entry.index
	}
	return indices
}

// orderFirst moves first to the front, keeping the rest in order.
func orderFirst(indices []int, first int) []int {
	ordered := make([]int, 0, len(indices))
	ordered = append(ordered, first)
	for _, index := range indices {
		if index != first {
			ordered = append(ordered, index)
		}
	}
	return ordered
}

// drawDecision concedes the turn: the full pending amount when a pickup
// chain is active, a single card otherwise.
func drawDecision(state *game.State) Decision {
	if state.PendingPickups > 0 {
		return Decision{Kind: DrawPending, Count: state.PendingPickups}
	}
	return Decision{Kind: DrawCard}
}

func countRank(cards []card.Card, rank card.Rank) int {
	count := 0
	for _, c := range cards {
		if c.Rank == rank {
			count++
		}
	}
	return count
}

func suitCounts(cards []card.Card, excluding *card.Suit) map[card.Suit]int {
	counts := make(map[card.Suit]int)
	for _, c := range cards {
		if excluding != nil && c.Suit == *excluding {
			continue
		}
		counts[c.Suit]++
	}
	return counts
}

func randomSuit(rng *rand.Rand, excluding card.Suit) card.Suit {
	others := make([]card.Suit, 0, 3)
	for _, suit := range card.Suits {
		if suit != excluding {
			others = append(others, suit)
		}
	}
	return others[rng.Intn(len(others))]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
