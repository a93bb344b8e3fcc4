package event

// GameOverPayload carries the terminal outcome as its display name so that
// this package does not depend on the game package.
type GameOverPayload struct {
	Outcome string
	Winner  string
	Rounds  int
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}

type gameOverEmitter struct {
	listeners []GameOverListener
}

func (e *gameOverEmitter) AddListener(listener GameOverListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameOverEmitter) Emit(payload GameOverPayload) {
	for _, listener := range e.listeners {
		listener.OnGameOver(payload)
	}
}
