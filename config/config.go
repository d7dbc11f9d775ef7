// Package config loads process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lazharichir/blackjack/cards"
)

// Environment variable names.
const (
	EnvDecks              = "BLACKJACK_DECKS"
	EnvReshuffleThreshold = "BLACKJACK_RESHUFFLE_THRESHOLD"
	EnvVerbose            = "BLACKJACK_VERBOSE"
	EnvLogLevel           = "LOG_LEVEL"
)

// Config holds the tunable parameters of a game process. Rule variants
// are deliberately not configurable.
type Config struct {
	NumDecks           int
	ReshuffleThreshold int
	Verbose            bool
	LogLevel           string
}

// Default returns the standard six-deck setup.
func Default() Config {
	return Config{
		NumDecks:           cards.DefaultDeckCount,
		ReshuffleThreshold: cards.DefaultReshuffleThreshold,
		LogLevel:           "warn",
	}
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present; a missing one is fine.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv(EnvDecks); v != "" {
		decks, err := strconv.Atoi(v)
		if err != nil || decks < 1 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvDecks, v)
		}
		cfg.NumDecks = decks
	}

	if v := os.Getenv(EnvReshuffleThreshold); v != "" {
		threshold, err := strconv.Atoi(v)
		if err != nil || threshold < 0 {
			return Config{}, fmt.Errorf("%s must be a non-negative integer, got %q", EnvReshuffleThreshold, v)
		}
		cfg.ReshuffleThreshold = threshold
	}

	if cfg.ReshuffleThreshold >= cfg.NumDecks*cards.DeckSize {
		return Config{}, fmt.Errorf("reshuffle threshold %d leaves no dealable cards in a %d-deck shoe", cfg.ReshuffleThreshold, cfg.NumDecks)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean, got %q", EnvVerbose, v)
		}
		cfg.Verbose = verbose
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
