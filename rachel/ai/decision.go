package ai

import (
	"github.com/rachel-online/server/rachel/card"
)

type DecisionKind int

const (
	PlayCard DecisionKind = iota + 1
	PlayCards
	DrawCard
	DrawPending
)

// Decision is a move proposal. Index and Indices are hand positions at
// decision time; Nominate rides along when the played rank is an Ace.
// Count on DrawPending is informational, the engine draws the real
// pending amount itself.
type Decision struct {
	Kind     DecisionKind
	Index    int
	Indices  []int
	Nominate *card.Suit
	Count    int
}
