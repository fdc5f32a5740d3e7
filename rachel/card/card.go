package card

import "fmt"

// Card is a plain rank+suit pair. Equality is the pair itself.
type Card struct {
	Rank Rank
	Suit Suit
}

func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	text := fmt.Sprintf("[%s%s]", c.Rank, c.Suit.Symbol())
	if c.Suit.Red() {
		return redPaint(text)
	}
	return blackPaint(text)
}
