package game

import (
	"fmt"

	"github.com/google/uuid"

	"cardroom/internal/deck"
)

// Player is one seated participant. The balance carries over between rounds
// and only ever changes through Bet and Win; cards only change through
// ObtainCard and ReturnCards.
type Player struct {
	id      uuid.UUID
	name    string
	balance int
	cards   []deck.Card
}

// NewPlayer creates a player with a fresh id and the given buy-in.
func NewPlayer(name string, balance int) *Player {
	return &Player{
		id:      uuid.New(),
		name:    name,
		balance: balance,
	}
}

// ID returns the player's unique id.
func (p *Player) ID() uuid.UUID {
	return p.id
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return p.name
}

// Balance returns the player's current balance.
func (p *Player) Balance() int {
	return p.balance
}

// Bet debits the given amount. The amount is a delta, not a total; the
// cumulative-total convention applies only to recorded actions. Betting
// more than the balance is rejected, never clamped.
func (p *Player) Bet(amount int) error {
	if amount < 0 {
		panic(fmt.Sprintf("game: negative bet of %d by %s", amount, p.name))
	}
	if amount > p.balance {
		return fmt.Errorf("%w: %s has %d, tried to bet %d",
			ErrInsufficientBalance, p.name, p.balance, amount)
	}
	p.balance -= amount
	return nil
}

// Win credits the given amount.
func (p *Player) Win(amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("game: negative win of %d by %s", amount, p.name))
	}
	p.balance += amount
}

// ObtainCard adds a dealt card to the player's hand.
func (p *Player) ObtainCard(card deck.Card) {
	p.cards = append(p.cards, card)
}

// ReturnCards empties the player's hand and returns the cards, so the
// caller can hand them back to the deck.
func (p *Player) ReturnCards() []deck.Card {
	cards := p.cards
	p.cards = nil
	return cards
}

// Discard removes the given cards from the player's hand so they can be
// swapped for fresh ones. Asking for a card the player does not hold is an
// error and leaves the hand untouched.
func (p *Player) Discard(cards []deck.Card) error {
	for _, card := range cards {
		if !p.HasCard(card) {
			return fmt.Errorf("game: %s does not hold %s", p.name, card)
		}
	}
	for _, card := range cards {
		for i, held := range p.cards {
			if held.Equal(card) {
				p.cards = append(p.cards[:i], p.cards[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Reveal flips every held card face up, as happens at showdown.
func (p *Player) Reveal() {
	for i := range p.cards {
		p.cards[i].FaceUp = true
	}
}

// Cards returns the player's held cards in deal order.
func (p *Player) Cards() []deck.Card {
	return p.cards
}

// UpCards returns the face-up subset of the player's hand.
func (p *Player) UpCards() []deck.Card {
	var up []deck.Card
	for _, c := range p.cards {
		if c.FaceUp {
			up = append(up, c)
		}
	}
	return up
}

// HasCard reports whether the player holds the given card.
func (p *Player) HasCard(card deck.Card) bool {
	for _, c := range p.cards {
		if c.Equal(card) {
			return true
		}
	}
	return false
}

// String returns the player's name and balance.
func (p *Player) String() string {
	return fmt.Sprintf("%s ($%d)", p.name, p.balance)
}
