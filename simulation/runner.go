package simulation

import (
	"errors"
	"fmt"

	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/war/game"
)

// Config describes a batch of independent games. Game i is dealt with Seed+i.
type Config struct {
	Player1    string
	Player2    string
	Seed       int64
	Games      int
	Workers    int
	RoundLimit int
}

type Result struct {
	ID      int          `json:"id"`
	Seed    int64        `json:"seed"`
	Outcome game.Outcome `json:"-"`
	Result  string       `json:"outcome"`
	Rounds  int          `json:"rounds"`
	Wars    int          `json:"wars"`
	Limited bool         `json:"limited,omitempty"`
	Err     error        `json:"-"`
}

// PlayOne deals and plays a single game to the end, or to the round limit.
func PlayOne(cfg Config, id int, seed int64) Result {
	g := game.New(
		game.NewPlayer(cfg.Player1),
		game.NewPlayer(cfg.Player2),
		game.NewDeck(),
		game.WithSeed(seed),
		game.WithRoundLimit(cfg.RoundLimit),
	)
	result := Result{ID: id, Seed: seed}
	if err := g.Initialize(); err != nil {
		result.Err = err
		return result
	}
	outcome, err := g.FinishGame()
	switch {
	case errors.Is(err, consts.ErrorsRoundLimit):
		result.Limited = true
	case err != nil:
		result.Err = fmt.Errorf("seed %d: %w", seed, err)
	}
	result.Outcome = outcome
	result.Result = outcome.String()
	result.Rounds = g.Rounds()
	result.Wars = g.Wars()
	return result
}
