package database

import (
	"sync"
	"time"

	"github.com/rachel-online/server/rachel/game"
	"github.com/ratel-online/core/log"
)

type Room struct {
	sync.Mutex

	ID         int64       `json:"id"`
	Game       *RachelGame `json:"game"`
	State      int         `json:"state"`
	Players    int         `json:"players"`
	Bots       int         `json:"bots"`
	BotLevel   game.Level  `json:"botLevel"`
	Creator    int64       `json:"creator"`
	Password   string      `json:"password"`
	ActiveTime time.Time   `json:"activeTime"`
	EnableChat bool        `json:"enableChat"`
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playerIds := getRoomPlayers(room.ID)
	if _, ok := playerIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playerIds, player.ID)
		if len(playerIds) > 0 && room.Creator == player.ID {
			for id := range playerIds {
				room.Creator = id
				break
			}
		}
	}
	if len(playerIds) == 0 {
		room.delete()
	}
}

func (room *Room) Cancel() {
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	playerIds := getRoomPlayers(room.ID)
	for id := range playerIds {
		if getPlayer(id).online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.Game.delete()
	}
}
