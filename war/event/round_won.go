package event

import "github.com/ratel-online/war/war/card"

type RoundWonPayload struct {
	PlayerName string
	Cards      []*card.Card
}

type RoundWonListener interface {
	OnRoundWon(RoundWonPayload)
}

type roundWonEmitter struct {
	listeners []RoundWonListener
}

func (e *roundWonEmitter) AddListener(listener RoundWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundWonEmitter) Emit(payload RoundWonPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundWon(payload)
	}
}
