package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/war/config"
	"github.com/ratel-online/war/consts"
	"github.com/ratel-online/war/render"
	"github.com/ratel-online/war/simulation"
	"github.com/ratel-online/war/war/card/suit"
	"github.com/ratel-online/war/war/game"
	"github.com/ratel-online/war/war/msg"
	"github.com/ratel-online/war/war/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.ParseEnv()
	if err != nil {
		return err
	}
	suit.DisableColor(cfg.NoColor || cfg.JSON)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Infof("war: %s vs %s, seed %d, %d game(s)\n", cfg.Player1, cfg.Player2, cfg.Seed, cfg.Games)

	if cfg.Games > 1 {
		return runBatch(cfg)
	}
	return runSingle(cfg)
}

func runSingle(cfg config.Config) error {
	display := ui.NewDisplay(suit.Stdout, cfg.Delay)
	opts := []game.Option{game.WithSeed(cfg.Seed), game.WithRoundLimit(cfg.RoundLimit)}
	if !cfg.JSON {
		opts = append(opts, game.WithListener(display))
	}
	g := game.New(game.NewPlayer(cfg.Player1), game.NewPlayer(cfg.Player2), game.NewDeck(), opts...)
	if err := g.Initialize(); err != nil {
		return err
	}
	if !cfg.JSON {
		fmt.Fprint(suit.Stdout, msg.Message.GameStarted(cfg.Player1, cfg.Player2))
	}

	if cfg.Step && !cfg.JSON {
		prompter := ui.NewPrompter(display, os.Stdin)
		for !g.GameOver() && prompter.Continue("Press Enter to play a round, q to let the game finish.") {
			g.PlayRound()
		}
	}

	outcome, err := g.FinishGame()
	if errors.Is(err, consts.ErrorsRoundLimit) {
		log.Infof("no winner after %d rounds, stopping\n", g.Rounds())
	} else if err != nil {
		return err
	}
	log.Infof("outcome %s after %d round(s)\n", outcome, g.Rounds())
	return render.State(os.Stdout, g.State(), cfg.JSON)
}

func runBatch(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := simulation.Run(ctx, simulation.Config{
		Player1:    cfg.Player1,
		Player2:    cfg.Player2,
		Seed:       cfg.Seed,
		Games:      cfg.Games,
		Workers:    cfg.Workers,
		RoundLimit: cfg.RoundLimit,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if !cfg.JSON {
		summary.Results = nil
	}
	return render.Summary(os.Stdout, summary, cfg.JSON)
}
