package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rachel-online/server/rachel/card"
)

type Direction int

const (
	Clockwise Direction = iota
	Counterclockwise
)

func (d Direction) Reversed() Direction {
	if d == Clockwise {
		return Counterclockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

type Status int

const (
	NotStarted Status = iota
	Playing
	Finished
)

type PickupType int

const (
	PickupNone PickupType = iota
	PickupTwos
	PickupBlackJacks
)

func (t PickupType) String() string {
	switch t {
	case PickupTwos:
		return "twos"
	case PickupBlackJacks:
		return "black jacks"
	}
	return "none"
}

// State is the single source of truth for one game. Every engine
// operation mutates it in place; a new game gets a new State.
type State struct {
	Players []*Player
	Deck    *Deck
	Pile    *Pile

	CurrentPlayer int
	Direction     Direction
	Status        Status
	Finished      []int
	TurnCount     int

	PendingPickups    int
	PendingPickupType PickupType
	PendingSkips      int
	NominatedSuit     *card.Suit
	NeedsNomination   bool
}

func NewState(players []*Player, rng *rand.Rand) *State {
	return &State{
		Players: players,
		Deck:    NewDeck(rng),
		Pile:    NewPile(),
	}
}

func (s *State) Current() *Player {
	return s.Players[s.CurrentPlayer]
}

func (s *State) HasFinished(index int) bool {
	for _, finished := range s.Finished {
		if finished == index {
			return true
		}
	}
	return false
}

func (s *State) String() string {
	var lines []string
	if top, ok := s.Pile.Top(); ok {
		lines = append(lines, fmt.Sprintf("Top card: %s", top))
	}
	if s.NominatedSuit != nil {
		lines = append(lines, fmt.Sprintf("Nominated suit: %s", *s.NominatedSuit))
	}
	if s.PendingPickups > 0 {
		lines = append(lines, fmt.Sprintf("Pending pickups: %d (%s)", s.PendingPickups, s.PendingPickupType))
	}
	var seats []string
	for index, player := range s.Players {
		seat := fmt.Sprintf("%s (%d card(s))", player.Name, player.Hand.Size())
		if index == s.CurrentPlayer {
			seat = "*" + seat
		}
		seats = append(seats, seat)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", s.Direction, strings.Join(seats, ", ")))
	return strings.Join(lines, "\n")
}
