package game

import (
	"math/rand"
)

// Two hole cards per player plus the five-card board must fit in the deck.
const holdemMaxPlayers = 23

// TexasHoldem deals each player two hidden cards and builds a shared board
// of five across three streets. Hands are ranked over hole plus community
// cards together.
type TexasHoldem struct {
	*table
}

// NewTexasHoldem creates a hold'em table. Pass a nil rng for a time-seeded
// shuffle.
func NewTexasHoldem(rng *rand.Rand, cfg Config) *TexasHoldem {
	return &TexasHoldem{table: newTable(rng, cfg)}
}

// PlayRound runs one complete round: hole cards and blinds, pre-flop
// betting, then flop, turn and river each followed by a betting round, then
// showdown.
func (g *TexasHoldem) PlayRound() error {
	if len(g.players) < 2 {
		return ErrNotEnoughPlayers
	}
	if len(g.players) > holdemMaxPlayers {
		return ErrTooManyPlayers
	}
	g.beginRound()
	defer g.endRound()
	n := len(g.players)

	g.phase = 1
	g.dealEach(2, false)
	g.forcedBet(g.players[g.dealerPos], 1)
	g.forcedBet(g.players[(g.dealerPos+1)%n], 2)

	// Pre-flop action starts past the big blind.
	if err := g.bettingRound(g.dealerPos+2, g.raiseLimit); err != nil {
		return err
	}

	for _, count := range []int{3, 1, 1} {
		if g.activeCount() <= 1 {
			break
		}
		g.phase++
		g.dealCommunity(count)
		if err := g.bettingRound(g.dealerPos, g.raiseLimit); err != nil {
			return err
		}
	}

	if g.activeCount() == 1 {
		g.winByDefault()
	} else {
		g.showdown()
	}
	return nil
}
