package game

import (
	"math/rand"

	"cardroom/internal/hand"
)

const studMaxPlayers = 7

// SevenCardStud deals each player a mix of hidden and exposed cards over
// five streets. There are no blinds; the lowest exposed card posts a
// bring-in, and from fourth street onward the best exposed hand acts first.
type SevenCardStud struct {
	*table
}

// NewSevenCardStud creates a stud table. Pass a nil rng for a time-seeded
// shuffle.
func NewSevenCardStud(rng *rand.Rand, cfg Config) *SevenCardStud {
	return &SevenCardStud{table: newTable(rng, cfg)}
}

// PlayRound runs one complete round: third street with the bring-in, then
// four more streets each with its own betting round, then showdown.
func (g *SevenCardStud) PlayRound() error {
	if len(g.players) < 2 {
		return ErrNotEnoughPlayers
	}
	if len(g.players) > studMaxPlayers {
		return ErrTooManyPlayers
	}
	g.beginRound()
	defer g.endRound()

	g.phase = 1
	g.dealFrom(g.dealerPos, 2, false)
	g.dealFrom(g.dealerPos, 1, true)

	bringIn := g.lowestUpCard()
	g.forcedBet(g.players[bringIn], g.minBet)
	if err := g.bettingRound(bringIn+1, g.raiseLimit); err != nil {
		return err
	}

	// Fourth through sixth street are exposed, seventh is hidden.
	for _, faceUp := range []bool{true, true, true, false} {
		if g.activeCount() <= 1 {
			break
		}
		g.phase++
		g.dealFrom(g.dealerPos, 1, faceUp)
		if err := g.bettingRound(g.bestUpCards(), g.raiseLimit); err != nil {
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

// lowestUpCard finds the seat showing the lowest exposed card. Ties go to
// whoever was dealt earlier, counting from the dealer.
func (g *SevenCardStud) lowestUpCard() int {
	n := len(g.players)
	lowest := -1
	for i := 0; i < n; i++ {
		seat := (g.dealerPos + i) % n
		p := g.players[seat]
		if g.pot.HasFolded(p.ID()) {
			continue
		}
		up := p.UpCards()
		if len(up) == 0 {
			continue
		}
		if lowest == -1 || up[0].Rank < g.players[lowest].UpCards()[0].Rank {
			lowest = seat
		}
	}
	if lowest == -1 {
		panic("game: no exposed cards to pick a bring-in from")
	}
	return lowest
}

// bestUpCards finds the seat whose exposed cards make the best partial
// hand, re-evaluated from scratch. Ties go to whoever was dealt earlier,
// counting from the dealer.
func (g *SevenCardStud) bestUpCards() int {
	n := len(g.players)
	best := -1
	var bestRank hand.Rank
	for i := 0; i < n; i++ {
		seat := (g.dealerPos + i) % n
		p := g.players[seat]
		if g.pot.HasFolded(p.ID()) {
			continue
		}
		up := p.UpCards()
		if len(up) == 0 {
			continue
		}
		rank := hand.Evaluate(up)
		if best == -1 || rank.Compare(bestRank) > 0 {
			best = seat
			bestRank = rank
		}
	}
	if best == -1 {
		panic("game: no exposed cards to pick a first actor from")
	}
	return best
}
