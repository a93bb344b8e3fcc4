package consts

const (
	DeckSize = 52
	HandSize = DeckSize / 2

	// DefaultRoundLimit bounds FinishGame as a safety net against unbounded games.
	DefaultRoundLimit = 10000

	DefaultPlayer1 = "Player 1"
	DefaultPlayer2 = "Player 2"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsDeckExhausted      = NewErr(1, true, "Deck exhausted. ")
	ErrorsAlreadyInitialized = NewErr(1, true, "Game already initialized. ")
	ErrorsRoundLimit         = NewErr(2, false, "Round limit reached. ")
	ErrorsConfigInvalid      = NewErr(3, true, "Config invalid. ")
)
