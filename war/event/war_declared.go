package event

import "github.com/ratel-online/war/war/card"

// WarDeclaredPayload is sent before each war layer. Depth starts at 1.
type WarDeclaredPayload struct {
	Depth int
	Rank  card.Rank
}

type WarDeclaredListener interface {
	OnWarDeclared(WarDeclaredPayload)
}

type warDeclaredEmitter struct {
	listeners []WarDeclaredListener
}

func (e *warDeclaredEmitter) AddListener(listener WarDeclaredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *warDeclaredEmitter) Emit(payload WarDeclaredPayload) {
	for _, listener := range e.listeners {
		listener.OnWarDeclared(payload)
	}
}
