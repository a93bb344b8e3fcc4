package game

import (
	"math/rand"
	"time"
)

type Option func(*Game)

// WithShuffler sets the random source used when the deck is shuffled.
func WithShuffler(shuffler Shuffler) Option {
	return func(g *Game) {
		g.shuffler = shuffler
	}
}

func WithSeed(seed int64) Option {
	return WithShuffler(rand.New(rand.NewSource(seed)))
}

// WithRoundLimit caps FinishGame. Zero or less means no cap.
func WithRoundLimit(limit int) Option {
	return func(g *Game) {
		g.roundLimit = limit
	}
}

func WithListener(listener interface{}) Option {
	return func(g *Game) {
		g.events.AddListener(listener)
	}
}

func defaultShuffler() Shuffler {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
