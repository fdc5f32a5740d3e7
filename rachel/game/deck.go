package game

import (
	"math/rand"
	"time"

	"github.com/rachel-online/server/rachel/card"
)

type Deck struct {
	rng   *rand.Rand
	cards []card.Card
}

// NewDeck builds a shuffled 52-card deck. A nil rng falls back to a
// time-seeded source.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cards := make([]card.Card, 0, 52)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	deck := &Deck{rng: rng, cards: cards}
	deck.shuffle()
	return deck
}

// NewDeckFrom rebuilds a deck from recycled discards.
func NewDeckFrom(rng *rand.Rand, cards []card.Card) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	deck := &Deck{rng: rng, cards: append([]card.Card(nil), cards...)}
	deck.shuffle()
	return deck
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// PutBottom slides a card under the deck.
func (d *Deck) PutBottom(c card.Card) {
	d.cards = append([]card.Card{c}, d.cards...)
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}
