package state

import (
	"strings"

	"github.com/rachel-online/server/consts"
	"github.com/rachel-online/server/database"
	"github.com/rachel-online/server/state/game"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateGame, &game.Rachel{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State is one screen of the player session. Next blocks on player
// input and returns the following state, Exit is the cleanup path
// when the player backs out or drops.
type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s session break up.\n", player)
	}()
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err1, ok := err.(consts.Error); ok {
				// soft errors re-run the current state
				if err1.Exit {
					stateId = state.Exit(player)
					if stateId == 0 {
						break
					}
				}
			} else {
				log.Error(err)
				break
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "e" || signal == "exit"
}

func isLs(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "ls" || signal == "v"
}
