package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"cardroom/internal/cli"
	"cardroom/internal/config"
	"cardroom/internal/game"
	"cardroom/internal/store"
)

// PlayCmd runs an interactive game on the terminal.
type PlayCmd struct {
	Variant    string   `kong:"default='texas-holdem',enum='texas-holdem,five-card-draw,seven-card-stud',help='Game variant'"`
	Players    []string `kong:"short='p',help='Player names in seating order (default alice,bob)'"`
	BuyIn      int      `kong:"default='200',help='Starting balance per player'"`
	MinBet     int      `kong:"default='2',help='Minimum bet and stud bring-in'"`
	RaiseLimit int      `kong:"default='100',help='Maximum single raise'"`
	Rounds     int      `kong:"default='0',help='Number of rounds to play, 0 for until broke'"`
	Seed       *int64   `kong:"help='Deterministic shuffle seed (optional)'"`
	DataDir    string   `kong:"help='Directory for round history, empty to disable'"`
	Debug      bool     `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	names := c.Players
	if len(names) == 0 {
		names = []string{"alice", "bob"}
	}

	var rng *rand.Rand
	if c.Seed != nil {
		rng = rand.New(rand.NewSource(*c.Seed))
	}

	var db store.Store = store.Nop{}
	if c.DataDir != "" {
		file, err := store.NewFile(c.DataDir)
		if err != nil {
			return err
		}
		defer file.Close()
		db = file
	}

	term := cli.New(os.Stdin, os.Stdout)
	term.Banner(variantTitle(c.Variant))

	cfg := game.Config{
		MinBet:     c.MinBet,
		RaiseLimit: c.RaiseLimit,
		Input:      term,
		Store:      db,
		Logger:     logger,
	}

	var g interface {
		AddPlayer(p *game.Player)
		Players() []*game.Player
		PlayRound() error
	}
	switch c.Variant {
	case config.VariantFiveCardDraw:
		g = game.NewFiveCardDraw(rng, cfg)
	case config.VariantSevenCardStud:
		g = game.NewSevenCardStud(rng, cfg)
	default:
		g = game.NewTexasHoldem(rng, cfg)
	}

	for _, name := range names {
		g.AddPlayer(game.NewPlayer(name, c.BuyIn))
	}

	for round := 1; c.Rounds == 0 || round <= c.Rounds; round++ {
		if err := g.PlayRound(); err != nil {
			return err
		}
		for _, p := range g.Players() {
			if p.Balance() <= 0 {
				fmt.Printf("\n%s is out of chips, game over\n", p.Name())
				return nil
			}
		}
	}
	return nil
}

func variantTitle(variant string) string {
	switch variant {
	case config.VariantFiveCardDraw:
		return "Five Card Draw"
	case config.VariantSevenCardStud:
		return "Seven Card Stud"
	default:
		return "Texas Hold'em"
	}
}

func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}
