package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/war/consts"
)

// Config is read from WAR_* environment variables.
type Config struct {
	Player1    string        `env:"WAR_PLAYER1" envDefault:"Player 1"`
	Player2    string        `env:"WAR_PLAYER2" envDefault:"Player 2"`
	Seed       int64         `env:"WAR_SEED" envDefault:"0"`
	Games      int           `env:"WAR_GAMES" envDefault:"1"`
	Workers    int           `env:"WAR_WORKERS" envDefault:"4"`
	RoundLimit int           `env:"WAR_ROUND_LIMIT" envDefault:"10000"`
	Delay      time.Duration `env:"WAR_DELAY" envDefault:"0s"`
	JSON       bool          `env:"WAR_JSON" envDefault:"false"`
	NoColor    bool          `env:"WAR_NO_COLOR" envDefault:"false"`
	Step       bool          `env:"WAR_STEP" envDefault:"false"`
}

func Default() Config {
	return Config{
		Player1:    consts.DefaultPlayer1,
		Player2:    consts.DefaultPlayer2,
		Games:      1,
		Workers:    4,
		RoundLimit: consts.DefaultRoundLimit,
	}
}

// ParseEnv loads the configuration from the environment and validates it.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Player1 == "" || c.Player2 == "":
		return fmt.Errorf("player names must be set: %w", consts.ErrorsConfigInvalid)
	case c.Player1 == c.Player2:
		return fmt.Errorf("player names must differ, both are %q: %w", c.Player1, consts.ErrorsConfigInvalid)
	case c.Games < 1:
		return fmt.Errorf("games must be positive, got %d: %w", c.Games, consts.ErrorsConfigInvalid)
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, consts.ErrorsConfigInvalid)
	case c.RoundLimit < 0:
		return fmt.Errorf("round limit must not be negative, got %d: %w", c.RoundLimit, consts.ErrorsConfigInvalid)
	}
	return nil
}
