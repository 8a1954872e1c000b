package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the runtime settings. Defaults match the reference arbiter:
// an unconfigured process listens on 0.0.0.0:5000 and plays a 20 second match
// scored every 500 microseconds.
type Config struct {
	ListenAddr    string        `env:"LISTEN_ADDR" envDefault:"0.0.0.0:5000"`
	HTTPAddr      string        `env:"HTTP_ADDR" envDefault:":8080"`
	MatchDuration time.Duration `env:"MATCH_DURATION" envDefault:"20s"`
	TickInterval  time.Duration `env:"TICK_INTERVAL" envDefault:"500us"`
	// MatchmakingTimeout bounds the wait for two players. Zero keeps the
	// historical behavior: block until both show up.
	MatchmakingTimeout time.Duration `env:"MATCHMAKING_TIMEOUT" envDefault:"0"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
