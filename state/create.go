package state

import (
	"bytes"
	"fmt"

	"github.com/rachel-online/server/consts"
	"github.com/rachel-online/server/database"
	"github.com/rachel-online/server/rachel/game"
)

type create struct{}

func (*create) Next(player *database.Player) (consts.StateID, error) {
	bots, err := askForBots(player)
	if err != nil {
		return 0, err
	}
	level := game.LevelMedium
	if bots > 0 {
		level, err = askForBotLevel(player)
		if err != nil {
			return 0, err
		}
	}
	room := database.CreateRoom(player.ID)
	room.Bots = bots
	room.BotLevel = level
	err = player.WriteString(fmt.Sprintf("Create room successful, id : %d\n", room.ID))
	if err != nil {
		return 0, player.WriteError(err)
	}
	err = database.JoinRoom(room.ID, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateWaiting, nil
}

func (*create) Exit(_ *database.Player) consts.StateID {
	return consts.StateHome
}

func askForBots(player *database.Player) (int, error) {
	err := player.WriteString(fmt.Sprintf("Bots (0-%d): \n", consts.MaxPlayers-1))
	if err != nil {
		return 0, player.WriteError(err)
	}
	bots, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if bots < 0 || bots > consts.MaxPlayers-1 {
		_ = player.WriteError(consts.ErrorsBotsInvalid)
		return 0, consts.ErrorsBotsInvalid
	}
	return bots, nil
}

func askForBotLevel(player *database.Player) (game.Level, error) {
	buf := bytes.Buffer{}
	buf.WriteString("Please select bot level\n")
	for _, level := range game.Levels {
		buf.WriteString(fmt.Sprintf("%d.%s\n", int(level), level))
	}
	err := player.WriteString(buf.String())
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	level := game.Level(selected)
	valid := false
	for _, l := range game.Levels {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		_ = player.WriteError(consts.ErrorsBotLevelInvalid)
		return 0, consts.ErrorsBotLevelInvalid
	}
	return level, nil
}
