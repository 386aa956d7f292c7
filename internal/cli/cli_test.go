package cli

import (
	"bytes"
	"strings"
	"testing"

	"cardroom/internal/deck"
	"cardroom/internal/game"
	"cardroom/internal/pot"
)

func TestSelectAction(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := New(strings.NewReader("1\n"), &out)
	p := game.NewPlayer("alice", 100)

	got, err := in.SelectAction(p, []pot.Kind{pot.Check, pot.Raise, pot.Fold})
	if err != nil {
		t.Fatalf("SelectAction: %v", err)
	}
	if got != pot.Raise {
		t.Errorf("got %s, want raise", got)
	}
	if !strings.Contains(out.String(), "alice") {
		t.Errorf("prompt does not name the player: %q", out.String())
	}
}

func TestSelectActionRepromptsOnGarbage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := New(strings.NewReader("banana\n7\n0\n"), &out)
	p := game.NewPlayer("bob", 100)

	got, err := in.SelectAction(p, []pot.Kind{pot.Call, pot.Fold})
	if err != nil {
		t.Fatalf("SelectAction: %v", err)
	}
	if got != pot.Call {
		t.Errorf("got %s, want call", got)
	}
	if n := strings.Count(out.String(), "invalid input"); n != 2 {
		t.Errorf("re-prompted %d times, want 2", n)
	}
}

func TestSelectActionEOF(t *testing.T) {
	t.Parallel()

	in := New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := in.SelectAction(game.NewPlayer("carol", 100), []pot.Kind{pot.Fold}); err == nil {
		t.Error("closed input did not error")
	}
}

func TestRaiseAmountBounds(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := New(strings.NewReader("0\n99\n10\n"), &out)

	got, err := in.RaiseAmount(game.NewPlayer("dave", 100), 10)
	if err != nil {
		t.Fatalf("RaiseAmount: %v", err)
	}
	if got != 10 {
		t.Errorf("got %d, want 10", got)
	}
	if n := strings.Count(out.String(), "invalid input"); n != 2 {
		t.Errorf("re-prompted %d times, want 2", n)
	}
}

func TestSelectDiscards(t *testing.T) {
	t.Parallel()

	p := game.NewPlayer("erin", 100)
	hand := []deck.Card{
		deck.NewCard(deck.Ace, deck.Spades),
		deck.NewCard(deck.King, deck.Hearts),
		deck.NewCard(deck.Two, deck.Clubs),
	}
	for _, c := range hand {
		p.ObtainCard(c)
	}

	in := New(strings.NewReader("0 2\n"), &bytes.Buffer{})
	got, err := in.SelectDiscards(p)
	if err != nil {
		t.Fatalf("SelectDiscards: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(hand[0]) || !got[1].Equal(hand[2]) {
		t.Errorf("got %v, want positions 0 and 2", got)
	}
}

func TestSelectDiscardsStandPat(t *testing.T) {
	t.Parallel()

	p := game.NewPlayer("frank", 100)
	p.ObtainCard(deck.NewCard(deck.Ace, deck.Spades))

	in := New(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := in.SelectDiscards(p)
	if err != nil {
		t.Fatalf("SelectDiscards: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no discards", got)
	}
}

func TestSelectDiscardsRejectsDuplicates(t *testing.T) {
	t.Parallel()

	p := game.NewPlayer("grace", 100)
	p.ObtainCard(deck.NewCard(deck.Ace, deck.Spades))
	p.ObtainCard(deck.NewCard(deck.Two, deck.Clubs))

	var out bytes.Buffer
	in := New(strings.NewReader("0 0\n1\n"), &out)
	got, err := in.SelectDiscards(p)
	if err != nil {
		t.Fatalf("SelectDiscards: %v", err)
	}
	if len(got) != 1 || got[0].Rank != deck.Two {
		t.Errorf("got %v, want just the two of clubs", got)
	}
	if !strings.Contains(out.String(), "invalid input") {
		t.Error("duplicate positions accepted without a re-prompt")
	}
}

func TestShowUpCardsHidesFaceDown(t *testing.T) {
	t.Parallel()

	viewer := game.NewPlayer("henry", 100)
	other := game.NewPlayer("iris", 100)
	down := deck.NewCard(deck.Ace, deck.Spades)
	up := deck.NewCard(deck.King, deck.Hearts)
	up.FaceUp = true
	other.ObtainCard(down)
	other.ObtainCard(up)

	var out bytes.Buffer
	New(strings.NewReader(""), &out).ShowUpCards([]*game.Player{other}, viewer)

	text := out.String()
	if !strings.Contains(text, "??") {
		t.Errorf("face-down card not hidden: %q", text)
	}
	if !strings.Contains(text, "K♥") {
		t.Errorf("face-up card not shown: %q", text)
	}
}
