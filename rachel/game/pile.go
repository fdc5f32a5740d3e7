package game

import (
	"github.com/rachel-online/server/rachel/card"
)

// Pile is the discard pile. The tail is the active top card.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 52)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Top() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// Recent returns up to the last n discards, oldest first.
func (p *Pile) Recent(n int) []card.Card {
	if n > len(p.cards) {
		n = len(p.cards)
	}
	cards := make([]card.Card, n)
	copy(cards, p.cards[len(p.cards)-n:])
	return cards
}

// TakeBuried removes every card except the top one and returns them.
// Returns nil while the pile holds at most the active card.
func (p *Pile) TakeBuried() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	buried := make([]card.Card, len(p.cards)-1)
	copy(buried, p.cards[:len(p.cards)-1])
	p.cards = p.cards[len(p.cards)-1:]
	return buried
}

func (p *Pile) Size() int {
	return len(p.cards)
}
