package deck

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(1)))
	if d.Size() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Size())
	}

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Deal(false)
		if err != nil {
			t.Fatalf("unexpected deal error on card %d: %v", i, err)
		}
		if seen[card] {
			t.Fatalf("deck dealt duplicate card %s", card)
		}
		seen[card] = true
	}
}

func TestDealEmptyDeck(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(1)))
	for i := 0; i < 52; i++ {
		if _, err := d.Deal(false); err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
	}

	_, err := d.Deal(false)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestDealThenReturnRestoresDeck(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(7)))
	dealt := make([]Card, 0, 52)
	for i := 0; i < 52; i++ {
		card, err := d.Deal(i%2 == 0)
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		dealt = append(dealt, card)
	}
	if d.Size() != 0 {
		t.Fatalf("expected empty deck, got %d cards", d.Size())
	}

	for i, card := range dealt {
		d.Return(card)
		if d.Size() != i+1 {
			t.Fatalf("expected %d cards after return, got %d", i+1, d.Size())
		}
	}

	// The deck should again contain exactly the 52 canonical cards.
	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Deal(false)
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		if seen[card] {
			t.Fatalf("duplicate card %s after full return", card)
		}
		seen[card] = true
	}
}

func TestReturnDuplicatePanics(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(1)))
	card, err := d.Deal(true)
	if err != nil {
		t.Fatalf("unexpected deal error: %v", err)
	}
	d.Return(card)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate return")
		}
	}()
	d.Return(card)
}

func TestReturnResetsFaceUp(t *testing.T) {
	t.Parallel()

	d := New(rand.New(rand.NewSource(3)))
	card, err := d.Deal(true)
	if err != nil {
		t.Fatalf("unexpected deal error: %v", err)
	}
	if !card.FaceUp {
		t.Fatal("expected card to be dealt face up")
	}
	d.Return(card)

	for i := 0; i < 52; i++ {
		c, err := d.Deal(false)
		if err != nil {
			t.Fatalf("unexpected deal error: %v", err)
		}
		if c.FaceUp {
			t.Errorf("card %s came back face up", c)
		}
	}
}

func TestCardEqualIgnoresFaceUp(t *testing.T) {
	t.Parallel()

	a := NewCard(Ace, Spades)
	b := NewCard(Ace, Spades)
	b.FaceUp = true
	if !a.Equal(b) {
		t.Error("face orientation should not affect card identity")
	}
	if a.Equal(NewCard(Ace, Hearts)) {
		t.Error("cards of different suits should not be equal")
	}
}

func TestCardStrings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		card Card
		want string
	}{
		{NewCard(Ace, Spades), "A♠"},
		{NewCard(Ten, Hearts), "T♥"},
		{NewCard(Two, Clubs), "2♣"},
		{NewCard(Queen, Diamonds), "Q♦"},
	}
	for _, tc := range cases {
		if got := tc.card.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
