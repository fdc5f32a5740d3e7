package card

import (
	"fmt"

	"github.com/fatih/color"
)

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var (
	redPaint   = color.New(color.FgHiRed).SprintFunc()
	blackPaint = color.New(color.FgHiWhite).SprintFunc()
)

func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) Black() bool {
	return s == Clubs || s == Spades
}

func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	}
	return "unknown"
}

func (s Suit) String() string {
	if s.Red() {
		return redPaint(s.Symbol()) + fmt.Sprintf("(%s)", s.Name())
	}
	return blackPaint(s.Symbol()) + fmt.Sprintf("(%s)", s.Name())
}

func SuitByName(name string) (Suit, error) {
	for _, suit := range Suits {
		if suit.Name() == name {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("invalid suit '%s'", name)
}
