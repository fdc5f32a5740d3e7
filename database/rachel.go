package database

import (
	"github.com/rachel-online/server/rachel/ai"
	"github.com/rachel-online/server/rachel/game"
)

// RachelGame glues one engine instance to a room: seat lookup for the
// connected humans, a turn-signal channel per human session, and a
// strategy per bot seat.
type RachelGame struct {
	Room    *Room               `json:"room"`
	Engine  *game.Engine        `json:"-"`
	Players []int64             `json:"players"`
	Seats   map[int64]int       `json:"seats"`
	States  map[int64]chan int  `json:"-"`
	Bots    map[int]ai.Strategy `json:"-"`
}

func (rg *RachelGame) HavePlay(player *Player) bool {
	_, seated := rg.Seats[player.ID]
	return seated && player.online
}

func (rg *RachelGame) NeedExit() bool {
	return rg.Room.Players <= 0
}

func (rg *RachelGame) delete() {
	if rg != nil {
		for _, state := range rg.States {
			close(state)
		}
	}
}
