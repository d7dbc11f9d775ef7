package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/console"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/table"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	renderer := console.NewRenderer(os.Stdout, cfg.Verbose)
	store := events.NewInMemoryEventStore()

	session, err := table.NewSession(
		table.Rules{NumDecks: cfg.NumDecks, ReshuffleThreshold: cfg.ReshuffleThreshold},
		prompter, prompter, prompter,
		table.WithEventStore(store),
		table.WithEventHandler(renderer.Handle),
	)
	if err != nil {
		logrus.Fatalf("starting session: %v", err)
	}

	if _, err := session.Run(context.Background()); err != nil {
		logrus.Fatalf("session failed: %v", err)
	}

	fmt.Println("Thanks for playing Blackjack! Goodbye!")
}
