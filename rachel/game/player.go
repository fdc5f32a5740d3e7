package game

// Level is a bot skill tier. Zero means the seat is human.
type Level int

const (
	LevelEasy Level = iota + 1
	LevelMedium
	LevelHard
)

var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	}
	return "human"
}

type Player struct {
	ID    int64
	Name  string
	Hand  *Hand
	Bot   bool
	Level Level
}

func NewPlayer(id int64, name string) *Player {
	return &Player{ID: id, Name: name, Hand: NewHand()}
}

func NewBot(id int64, name string, level Level) *Player {
	return &Player{ID: id, Name: name, Hand: NewHand(), Bot: true, Level: level}
}
