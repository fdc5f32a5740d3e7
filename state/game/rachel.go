package game

import (
	"bytes"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rachel-online/server/consts"
	"github.com/rachel-online/server/database"
	"github.com/rachel-online/server/rachel/ai"
	"github.com/rachel-online/server/rachel/card"
	rachel "github.com/rachel-online/server/rachel/game"
	"github.com/ratel-online/core/log"
)

var (
	statePlay    = 1
	stateWaiting = 2
)

var botNames = []string{"Ada", "Bruno", "Clara", "Dmitri", "Elena", "Felix", "Greta"}

type Rachel struct{}

func (g *Rachel) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	game := room.Game
	if game == nil {
		return consts.StateWaiting, nil
	}
	seat := game.Seats[player.ID]
	buf := bytes.Buffer{}
	buf.WriteString("Game starting! \n")
	buf.WriteString(fmt.Sprintf("Your cards: %s\n", handString(game.Engine.State().Players[seat])))
	_ = player.WriteString(buf.String())
	for {
		if room.State == consts.RoomStateWaiting {
			return consts.StateWaiting, nil
		}
		state := <-game.States[player.ID]
		switch state {
		case statePlay:
			err := handlePlay(room, player, game)
			if err != nil {
				log.Error(err)
				return 0, err
			}
		case stateWaiting:
			return consts.StateWaiting, nil
		default:
			return 0, consts.ErrorsChanClosed
		}
	}
}

func (g *Rachel) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

func handlePlay(room *database.Room, player *database.Player, game *database.RachelGame) error {
	engine := game.Engine
	s := engine.State()
	seat, ok := game.Seats[player.ID]
	if !ok || s.CurrentPlayer != seat {
		dispatch(room, game)
		return nil
	}
	if !game.HavePlay(player) {
		playTurn(room, game, ai.ForLevel(rachel.LevelEasy, nil))
		dispatch(room, game)
		return nil
	}
	actor := s.Players[seat]
	timeout := consts.PlayTimeout
	for {
		buf := bytes.Buffer{}
		buf.WriteString("\n")
		buf.WriteString(s.String())
		buf.WriteString(fmt.Sprintf("\nYour cards: %s\n", handString(actor)))
		buf.WriteString(fmt.Sprintf("Timeout %ds, play <n> [n ...], or draw\n", int(timeout.Seconds())))
		_ = player.WriteString(buf.String())
		before := time.Now().Unix()
		ans, err := player.AskForString(timeout)
		if err != nil {
			playTurn(room, game, ai.ForLevel(rachel.LevelEasy, nil))
			dispatch(room, game)
			return nil
		}
		timeout -= time.Second * time.Duration(time.Now().Unix()-before)
		ans = strings.ToLower(strings.TrimSpace(ans))
		if ans == "" || ans == "ls" || ans == "v" {
			continue
		}
		if ans == "d" || ans == "draw" {
			if s.PendingPickups == 0 && engine.PlayerHasValidMove() {
				_ = player.WriteString("You hold a playable card and have to play it. \n")
				continue
			}
			size := actor.Hand.Size()
			engine.DrawCard()
			database.Broadcast(room.ID, fmt.Sprintf("%s drew %d card(s)\n", actor.Name, actor.Hand.Size()-size))
			dispatch(room, game)
			return nil
		}
		indices, ok := parsePlay(ans, actor.Hand.Size())
		if !ok {
			if room.EnableChat {
				player.BroadcastChat(fmt.Sprintf("%s say: %s\n", player.Name, ans))
			} else {
				_ = player.WriteError(consts.ErrorsInputInvalid)
			}
			continue
		}
		played := describeCards(actor, indices)
		if len(indices) == 1 {
			ok = engine.PlayCard(indices[0], seat)
		} else {
			ok = engine.PlayCards(indices, seat)
		}
		if !ok {
			_ = player.WriteString("Illegal play. \n")
			continue
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s played %s\n", actor.Name, played))
		if s.NeedsNomination {
			suit := askForSuit(player, actor, timeout)
			engine.NominateSuit(suit)
			database.Broadcast(room.ID, fmt.Sprintf("%s nominated %s\n", actor.Name, suit.Name()))
		}
		engine.EndTurn()
		if actor.Hand.Empty() {
			database.Broadcast(room.ID, fmt.Sprintf("%s has no cards left! \n", actor.Name))
		}
		dispatch(room, game)
		return nil
	}
}

// dispatch plays bot turns inline until the game ends or a human is up,
// then hands the turn to that human's session.
func dispatch(room *database.Room, game *database.RachelGame) {
	engine := game.Engine
	s := engine.State()
	for s.Status == rachel.Playing {
		current := s.Current()
		if !current.Bot {
			game.States[current.ID] <- statePlay
			return
		}
		playTurn(room, game, game.Bots[s.CurrentPlayer])
	}
	finishGame(room, game)
}

// playTurn applies one strategy decision for the current seat. Used for
// bots, and as the fallback for absent or timed out humans.
func playTurn(room *database.Room, game *database.RachelGame, strategy ai.Strategy) {
	engine := game.Engine
	s := engine.State()
	actor := s.Current()
	seat := s.CurrentPlayer
	turn := s.TurnCount
	decision := strategy.DecideMove(actor, s)
	switch decision.Kind {
	case ai.PlayCard:
		played := describeCards(actor, []int{decision.Index})
		if engine.PlayCard(decision.Index, seat) {
			database.Broadcast(room.ID, fmt.Sprintf("%s played %s\n", actor.Name, played))
			nominate(room, actor, engine, decision.Nominate)
			engine.EndTurn()
		}
	case ai.PlayCards:
		played := describeCards(actor, decision.Indices)
		if engine.PlayCards(decision.Indices, seat) {
			database.Broadcast(room.ID, fmt.Sprintf("%s played %s\n", actor.Name, played))
			nominate(room, actor, engine, decision.Nominate)
			engine.EndTurn()
		}
	case ai.DrawCard, ai.DrawPending:
		size := actor.Hand.Size()
		engine.DrawCard()
		if s.TurnCount > turn {
			database.Broadcast(room.ID, fmt.Sprintf("%s drew %d card(s)\n", actor.Name, actor.Hand.Size()-size))
		}
	}
	if s.TurnCount == turn {
		// rejected or missing move, draw so the game keeps moving
		log.Infof("seat %d made no legal move, forcing a draw\n", seat)
		engine.DrawCard()
		if s.TurnCount == turn {
			engine.EndTurn()
		}
	}
	if actor.Hand.Empty() {
		database.Broadcast(room.ID, fmt.Sprintf("%s has no cards left! \n", actor.Name))
	}
}

func nominate(room *database.Room, actor *rachel.Player, engine *rachel.Engine, suit *card.Suit) {
	if suit == nil || !engine.State().NeedsNomination {
		return
	}
	engine.NominateSuit(*suit)
	database.Broadcast(room.ID, fmt.Sprintf("%s nominated %s\n", actor.Name, suit.Name()))
}

func finishGame(room *database.Room, game *database.RachelGame) {
	s := game.Engine.State()
	buf := bytes.Buffer{}
	buf.WriteString("Game over! \n")
	for place, seat := range s.Finished {
		buf.WriteString(fmt.Sprintf("%d. %s\n", place+1, s.Players[seat].Name))
	}
	database.Broadcast(room.ID, buf.String())
	room.Lock()
	room.Game = nil
	room.State = consts.RoomStateWaiting
	room.Unlock()
	for _, playerId := range game.Players {
		game.States[playerId] <- stateWaiting
	}
}

func askForSuit(player *database.Player, actor *rachel.Player, timeout time.Duration) card.Suit {
	for {
		_ = player.WriteString("Nominate a suit (hearts/diamonds/clubs/spades): \n")
		ans, err := player.AskForString(timeout)
		if err != nil {
			break
		}
		ans = strings.ToLower(strings.TrimSpace(ans))
		if ans != "" {
			for _, suit := range card.Suits {
				if strings.HasPrefix(suit.Name(), ans) {
					return suit
				}
			}
		}
		_ = player.WriteError(consts.ErrorsInputInvalid)
	}
	return fallbackSuit(actor.Hand.Cards())
}

func fallbackSuit(cards []card.Card) card.Suit {
	counts := map[card.Suit]int{}
	for _, c := range cards {
		counts[c.Suit]++
	}
	best := card.Hearts
	for _, suit := range card.Suits {
		if counts[suit] > counts[best] {
			best = suit
		}
	}
	return best
}

// parsePlay reads "play 1 3" or bare "1 3" as one-based hand positions.
func parsePlay(ans string, handSize int) ([]int, bool) {
	ans = strings.TrimSpace(strings.TrimPrefix(ans, "play"))
	fields := strings.Fields(ans)
	if len(fields) == 0 {
		return nil, false
	}
	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > handSize {
			return nil, false
		}
		indices = append(indices, n-1)
	}
	return indices, true
}

func describeCards(actor *rachel.Player, indices []int) string {
	names := make([]string, 0, len(indices))
	for _, index := range indices {
		if c, ok := actor.Hand.CardAt(index); ok {
			names = append(names, c.String())
		}
	}
	return strings.Join(names, " ")
}

func handString(player *rachel.Player) string {
	buf := bytes.Buffer{}
	for i, c := range player.Hand.Cards() {
		buf.WriteString(fmt.Sprintf("%d.%s ", i+1, c))
	}
	return strings.TrimSpace(buf.String())
}

func InitRachelGame(room *database.Room) (*database.RachelGame, error) {
	roomPlayers := database.RoomPlayers(room.ID)
	total := len(roomPlayers) + room.Bots
	if total < consts.MinPlayers || total > consts.MaxPlayers {
		return nil, consts.ErrorsPlayersInvalid
	}
	players := make([]int64, 0)
	seats := map[int64]int{}
	states := map[int64]chan int{}
	gamePlayers := make([]*rachel.Player, 0)
	for playerId := range roomPlayers {
		p := database.GetPlayer(playerId)
		if p == nil {
			return nil, consts.ErrorsPlayersInvalid
		}
		seats[p.ID] = len(gamePlayers)
		players = append(players, p.ID)
		states[p.ID] = make(chan int, 1)
		gamePlayers = append(gamePlayers, rachel.NewPlayer(p.ID, p.Name))
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bots := map[int]ai.Strategy{}
	for i := 0; i < room.Bots; i++ {
		seat := len(gamePlayers)
		gamePlayers = append(gamePlayers, rachel.NewBot(int64(-(i+1)), botNames[i%len(botNames)], room.BotLevel))
		bots[seat] = ai.ForLevel(room.BotLevel, rng)
	}
	engine := rachel.NewEngine(gamePlayers, rng)
	engine.DealCards(consts.CardsPerPlayer)
	states[gamePlayers[0].ID] <- statePlay
	return &database.RachelGame{
		Room:    room,
		Engine:  engine,
		Players: players,
		Seats:   seats,
		States:  states,
		Bots:    bots,
	}, nil
}
