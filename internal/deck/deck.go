package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEmpty is returned by Deal when no cards remain in the pool.
var ErrEmpty = errors.New("deck: no cards remaining")

// Deck is the pool of cards not currently held by a player or the community
// pile. Cards are dealt at random and must be returned before the next round.
// There is exactly one deck per table; callers are responsible for keeping
// the deck and all holders a strict partition of the 52 cards.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck. A nil rng falls back to a
// time-seeded source; tests pass a seeded one for determinism.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Clubs; suit <= Diamonds; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// Deal removes and returns one card chosen uniformly at random,
// with its face orientation set as requested.
func (d *Deck) Deal(faceUp bool) (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmpty
	}

	i := d.rng.Intn(len(d.cards))
	card := d.cards[i]
	d.cards[i] = d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]

	card.FaceUp = faceUp
	return card, nil
}

// Return puts a dealt card back into the pool, face down. Returning a card
// that is already in the deck is a bookkeeping bug in the caller, not a game
// event, so it panics.
func (d *Deck) Return(card Card) {
	for _, c := range d.cards {
		if c.Equal(card) {
			panic(fmt.Sprintf("deck: duplicate return of %s", card))
		}
	}
	card.FaceUp = false
	d.cards = append(d.cards, card)
}

// Size returns the number of cards left in the pool.
func (d *Deck) Size() int {
	return len(d.cards)
}
