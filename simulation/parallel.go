package simulation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/war/game"
)

type job struct {
	id   int
	seed int64
}

// Summary aggregates a batch. Games == Player1Wins + Player2Wins + Ties + Limited.
type Summary struct {
	Games       int      `json:"games"`
	Player1     string   `json:"player1"`
	Player2     string   `json:"player2"`
	Player1Wins int      `json:"player1_wins"`
	Player2Wins int      `json:"player2_wins"`
	Ties        int      `json:"ties"`
	Limited     int      `json:"limited"`
	Wars        int      `json:"wars"`
	MaxRounds   int      `json:"max_rounds"`
	MeanRounds  float64  `json:"mean_rounds"`
	Results     []Result `json:"results,omitempty"`
}

// Run plays cfg.Games games on cfg.Workers workers. Every game is owned by the worker that plays it.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.Games < 0 {
		return Summary{}, fmt.Errorf("games must not be negative, got %d: %w", cfg.Games, consts.ErrorsConfigInvalid)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan job)
	results := hashmap.New()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		async.Async(func() {
			defer wg.Done()
			for j := range jobs {
				results.Set(int64(j.id), PlayOne(cfg, j.id, j.seed))
			}
		})
	}

	var canceled error
queue:
	for i := 0; i < cfg.Games; i++ {
		if err := ctx.Err(); err != nil {
			canceled = err
			break
		}
		select {
		case <-ctx.Done():
			canceled = ctx.Err()
			break queue
		case jobs <- job{id: i, seed: cfg.Seed + int64(i)}:
		}
	}
	close(jobs)
	wg.Wait()

	list := make([]Result, 0, cfg.Games)
	results.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(Result))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	summary := aggregate(cfg, list)
	if canceled != nil {
		return summary, fmt.Errorf("simulation stopped after %d of %d games: %w", summary.Games, cfg.Games, canceled)
	}
	for _, result := range summary.Results {
		if result.Err != nil {
			return summary, fmt.Errorf("game %d: %w", result.ID, result.Err)
		}
	}
	return summary, nil
}

func aggregate(cfg Config, results []Result) Summary {
	summary := Summary{
		Games:   len(results),
		Player1: cfg.Player1,
		Player2: cfg.Player2,
		Results: results,
	}
	totalRounds := 0
	for _, result := range results {
		switch {
		case result.Limited:
			summary.Limited++
		case result.Outcome == game.Player1Wins:
			summary.Player1Wins++
		case result.Outcome == game.Player2Wins:
			summary.Player2Wins++
		case result.Outcome == game.Tie:
			summary.Ties++
		}
		summary.Wars += result.Wars
		totalRounds += result.Rounds
		if result.Rounds > summary.MaxRounds {
			summary.MaxRounds = result.Rounds
		}
	}
	if summary.Games > 0 {
		summary.MeanRounds = float64(totalRounds) / float64(summary.Games)
	}
	return summary
}
