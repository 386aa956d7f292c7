package game

import (
	"math/rand"

	"cardroom/internal/deck"
	"cardroom/internal/pot"
)

// Ten hands of five fit in the deck; discards go back before replacements
// are drawn, so the draw needs no extra headroom.
const drawMaxPlayers = 10

// FiveCardDraw deals each player five hidden cards with one chance to swap
// any of them between the two betting rounds.
type FiveCardDraw struct {
	*table
}

// NewFiveCardDraw creates a draw table. Pass a nil rng for a time-seeded
// shuffle.
func NewFiveCardDraw(rng *rand.Rand, cfg Config) *FiveCardDraw {
	return &FiveCardDraw{table: newTable(rng, cfg)}
}

// PlayRound runs one complete round: blinds, deal, first betting round, the
// draw, second betting round, showdown.
func (g *FiveCardDraw) PlayRound() error {
	if len(g.players) < 2 {
		return ErrNotEnoughPlayers
	}
	if len(g.players) > drawMaxPlayers {
		return ErrTooManyPlayers
	}
	g.beginRound()
	defer g.endRound()
	n := len(g.players)

	g.phase = 1
	g.forcedBet(g.players[g.dealerPos], 1)
	g.forcedBet(g.players[(g.dealerPos+1)%n], 2)

	g.dealEach(5, false)

	if err := g.bettingRound(g.dealerPos, g.raiseLimit); err != nil {
		return err
	}

	if g.activeCount() > 1 {
		if err := g.drawPhase(); err != nil {
			return err
		}
		g.phase = 2
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

// drawPhase gives every surviving player one chance to exchange cards,
// starting at the dealer. Returned cards go back into the deck before
// replacements are drawn, so a player can be re-dealt a card they just
// threw away.
func (g *FiveCardDraw) drawPhase() error {
	n := len(g.players)
	for i := 0; i < n; i++ {
		p := g.players[(g.dealerPos+i)%n]
		if g.pot.HasFolded(p.ID()) {
			continue
		}
		g.input.ShowCurrentPlayer(p)
		g.input.ShowHand(p)

		discards, err := g.input.SelectDiscards(p)
		if err != nil {
			return err
		}
		if err := p.Discard(discards); err != nil {
			return err
		}
		for _, card := range discards {
			g.deck.Return(card)
		}
		for range discards {
			g.dealTo(p, false)
		}

		replaced := make([]deck.Card, len(discards))
		copy(replaced, discards)
		g.recordTurn(p, pot.Action{Kind: pot.Replace, Cards: replaced})
	}
	return nil
}
