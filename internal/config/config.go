package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the server's environment-driven configuration.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`
	// CardListPath points at a local card list CSV. When empty the server
	// resolves cards through the public ygoprodeck API instead.
	CardListPath string `env:"CARD_LIST"`
	// Defaults for simulation runs; requests may override both.
	Trials   int `env:"SIM_TRIALS" envDefault:"10000"`
	HandSize int `env:"SIM_HAND_SIZE" envDefault:"5"`
}

// FromEnv parses configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
