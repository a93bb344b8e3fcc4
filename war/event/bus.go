package event

// Bus groups the emitters owned by a single game.
type Bus struct {
	CardPlayed  *cardPlayedEmitter
	WarDeclared *warDeclaredEmitter
	RoundWon    *roundWonEmitter
	GameOver    *gameOverEmitter
}

func NewBus() *Bus {
	return &Bus{
		CardPlayed:  &cardPlayedEmitter{},
		WarDeclared: &warDeclaredEmitter{},
		RoundWon:    &roundWonEmitter{},
		GameOver:    &gameOverEmitter{},
	}
}

// AddListener subscribes listener to every event kind it implements.
func (b *Bus) AddListener(listener interface{}) {
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(WarDeclaredListener); ok {
		b.WarDeclared.AddListener(l)
	}
	if l, ok := listener.(RoundWonListener); ok {
		b.RoundWon.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		b.GameOver.AddListener(l)
	}
}
