package game

type Outcome int

const (
	Running Outcome = iota
	War
	Player1Wins
	Player2Wins
	Tie
)

var outcomeNames = map[Outcome]string{
	Running:     "Running",
	War:         "War",
	Player1Wins: "Player1Wins",
	Player2Wins: "Player2Wins",
	Tie:         "Tie",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Terminal reports whether the game has ended.
func (o Outcome) Terminal() bool {
	switch o {
	case Player1Wins, Player2Wins, Tie:
		return true
	default:
		return false
	}
}
