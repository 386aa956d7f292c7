package game

import (
	"errors"
	"testing"

	"cardroom/internal/deck"
)

func TestPlayerBet(t *testing.T) {
	t.Parallel()

	p := NewPlayer("alice", 100)
	if err := p.Bet(40); err != nil {
		t.Fatalf("Bet: %v", err)
	}
	if p.Balance() != 60 {
		t.Errorf("balance = %d, want 60", p.Balance())
	}

	err := p.Bet(61)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("overdraft err = %v, want ErrInsufficientBalance", err)
	}
	if p.Balance() != 60 {
		t.Errorf("failed bet changed balance to %d", p.Balance())
	}

	p.Win(15)
	if p.Balance() != 75 {
		t.Errorf("balance after win = %d, want 75", p.Balance())
	}
}

func TestPlayerBetNegativePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("negative bet did not panic")
		}
	}()
	NewPlayer("bob", 10).Bet(-1)
}

func TestPlayerDiscard(t *testing.T) {
	t.Parallel()

	p := NewPlayer("carol", 100)
	ace := deck.NewCard(deck.Ace, deck.Spades)
	king := deck.NewCard(deck.King, deck.Hearts)
	two := deck.NewCard(deck.Two, deck.Clubs)
	p.ObtainCard(ace)
	p.ObtainCard(king)
	p.ObtainCard(two)

	if err := p.Discard([]deck.Card{king}); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if len(p.Cards()) != 2 || p.HasCard(king) {
		t.Errorf("after discard, cards = %v", p.Cards())
	}

	if err := p.Discard([]deck.Card{king}); err == nil {
		t.Error("discarding a card not held succeeded")
	}
	if len(p.Cards()) != 2 {
		t.Errorf("failed discard changed hand: %v", p.Cards())
	}
}

func TestPlayerUpCardsAndReveal(t *testing.T) {
	t.Parallel()

	p := NewPlayer("dave", 100)
	down := deck.NewCard(deck.Ace, deck.Spades)
	up := deck.NewCard(deck.King, deck.Hearts)
	up.FaceUp = true
	p.ObtainCard(down)
	p.ObtainCard(up)

	if got := p.UpCards(); len(got) != 1 || !got[0].Equal(up) {
		t.Errorf("UpCards = %v, want just %s", got, up)
	}

	p.Reveal()
	if got := p.UpCards(); len(got) != 2 {
		t.Errorf("after Reveal, UpCards = %v, want both", got)
	}
}

func TestPlayerReturnCards(t *testing.T) {
	t.Parallel()

	p := NewPlayer("erin", 100)
	p.ObtainCard(deck.NewCard(deck.Ace, deck.Spades))
	p.ObtainCard(deck.NewCard(deck.Two, deck.Clubs))

	returned := p.ReturnCards()
	if len(returned) != 2 {
		t.Errorf("returned %d cards, want 2", len(returned))
	}
	if len(p.Cards()) != 0 {
		t.Errorf("hand not empty after ReturnCards: %v", p.Cards())
	}
}
