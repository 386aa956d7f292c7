package hand

import (
	"testing"

	"cardroom/internal/deck"
)

func cards(specs ...deck.Card) []deck.Card {
	return specs
}

func c(r deck.Rank, s deck.Suit) deck.Card {
	return deck.NewCard(r, s)
}

func TestEvaluateFiveCardHands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cards []deck.Card
		want  Rank
	}{
		{
			name:  "high card",
			cards: cards(c(deck.Two, deck.Hearts), c(deck.Four, deck.Diamonds), c(deck.Six, deck.Clubs), c(deck.Eight, deck.Spades), c(deck.Jack, deck.Hearts)),
			want:  Rank{Category: HighCard, Ranks: []deck.Rank{deck.Jack}},
		},
		{
			name:  "one pair",
			cards: cards(c(deck.Two, deck.Hearts), c(deck.Six, deck.Diamonds), c(deck.Six, deck.Clubs), c(deck.Eight, deck.Spades), c(deck.Jack, deck.Hearts)),
			want:  Rank{Category: OnePair, Ranks: []deck.Rank{deck.Six}},
		},
		{
			name:  "two pair",
			cards: cards(c(deck.Two, deck.Hearts), c(deck.Six, deck.Diamonds), c(deck.Six, deck.Clubs), c(deck.Two, deck.Spades), c(deck.Jack, deck.Hearts)),
			want:  Rank{Category: TwoPair, Ranks: []deck.Rank{deck.Six, deck.Two}},
		},
		{
			name:  "three of a kind",
			cards: cards(c(deck.Six, deck.Hearts), c(deck.Six, deck.Diamonds), c(deck.Six, deck.Clubs), c(deck.Two, deck.Spades), c(deck.Jack, deck.Hearts)),
			want:  Rank{Category: ThreeOfAKind, Ranks: []deck.Rank{deck.Six}},
		},
		{
			name:  "straight",
			cards: cards(c(deck.Three, deck.Hearts), c(deck.Four, deck.Diamonds), c(deck.Five, deck.Clubs), c(deck.Six, deck.Spades), c(deck.Seven, deck.Hearts)),
			want:  Rank{Category: Straight, Ranks: []deck.Rank{deck.Seven}},
		},
		{
			name:  "wheel straight",
			cards: cards(c(deck.Ace, deck.Hearts), c(deck.Two, deck.Diamonds), c(deck.Three, deck.Clubs), c(deck.Four, deck.Spades), c(deck.Five, deck.Hearts)),
			want:  Rank{Category: Straight, Ranks: []deck.Rank{deck.Five}},
		},
		{
			name:  "flush",
			cards: cards(c(deck.Two, deck.Hearts), c(deck.Four, deck.Hearts), c(deck.Six, deck.Hearts), c(deck.Eight, deck.Hearts), c(deck.Jack, deck.Hearts)),
			want:  Rank{Category: Flush, Ranks: []deck.Rank{deck.Jack}},
		},
		{
			name:  "full house",
			cards: cards(c(deck.Six, deck.Spades), c(deck.Six, deck.Diamonds), c(deck.Six, deck.Clubs), c(deck.Eight, deck.Hearts), c(deck.Eight, deck.Spades)),
			want:  Rank{Category: FullHouse, Ranks: []deck.Rank{deck.Six, deck.Eight}},
		},
		{
			name:  "four of a kind",
			cards: cards(c(deck.Six, deck.Spades), c(deck.Six, deck.Diamonds), c(deck.Six, deck.Clubs), c(deck.Six, deck.Hearts), c(deck.Eight, deck.Spades)),
			want:  Rank{Category: FourOfAKind, Ranks: []deck.Rank{deck.Six}},
		},
		{
			name:  "straight flush",
			cards: cards(c(deck.Five, deck.Hearts), c(deck.Six, deck.Hearts), c(deck.Seven, deck.Hearts), c(deck.Eight, deck.Hearts), c(deck.Nine, deck.Hearts)),
			want:  Rank{Category: StraightFlush, Ranks: []deck.Rank{deck.Nine}},
		},
		{
			name:  "wheel straight flush is not royal",
			cards: cards(c(deck.Two, deck.Hearts), c(deck.Three, deck.Hearts), c(deck.Four, deck.Hearts), c(deck.Five, deck.Hearts), c(deck.Ace, deck.Hearts)),
			want:  Rank{Category: StraightFlush, Ranks: []deck.Rank{deck.Five}},
		},
		{
			name:  "royal flush",
			cards: cards(c(deck.Ace, deck.Hearts), c(deck.King, deck.Hearts), c(deck.Queen, deck.Hearts), c(deck.Jack, deck.Hearts), c(deck.Ten, deck.Hearts)),
			want:  Rank{Category: RoyalFlush},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(tc.cards)
			if got.Compare(tc.want) != 0 || got.Category != tc.want.Category {
				t.Errorf("Evaluate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluateSevenCardHands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cards []deck.Card
		want  Rank
	}{
		{
			name: "two trips make a full house",
			cards: cards(
				c(deck.Six, deck.Spades), c(deck.Six, deck.Diamonds), c(deck.Six, deck.Clubs),
				c(deck.Eight, deck.Hearts), c(deck.Eight, deck.Spades), c(deck.Eight, deck.Diamonds),
				c(deck.Two, deck.Hearts),
			),
			want: Rank{Category: FullHouse, Ranks: []deck.Rank{deck.Eight, deck.Six}},
		},
		{
			name: "three pairs pick the top two",
			cards: cards(
				c(deck.Two, deck.Spades), c(deck.Two, deck.Diamonds),
				c(deck.Nine, deck.Clubs), c(deck.Nine, deck.Hearts),
				c(deck.King, deck.Spades), c(deck.King, deck.Diamonds),
				c(deck.Four, deck.Hearts),
			),
			want: Rank{Category: TwoPair, Ranks: []deck.Rank{deck.King, deck.Nine}},
		},
		{
			name: "trips plus best pair",
			cards: cards(
				c(deck.Six, deck.Spades), c(deck.Six, deck.Diamonds), c(deck.Six, deck.Clubs),
				c(deck.Three, deck.Hearts), c(deck.Three, deck.Spades),
				c(deck.Nine, deck.Diamonds), c(deck.Nine, deck.Hearts),
			),
			want: Rank{Category: FullHouse, Ranks: []deck.Rank{deck.Six, deck.Nine}},
		},
		{
			name: "seven card straight reports best high",
			cards: cards(
				c(deck.Two, deck.Spades), c(deck.Three, deck.Diamonds), c(deck.Four, deck.Clubs),
				c(deck.Five, deck.Hearts), c(deck.Six, deck.Spades), c(deck.Seven, deck.Diamonds),
				c(deck.Ace, deck.Hearts),
			),
			want: Rank{Category: Straight, Ranks: []deck.Rank{deck.Seven}},
		},
		{
			name: "six card flush uses highest suited card",
			cards: cards(
				c(deck.Two, deck.Clubs), c(deck.Five, deck.Clubs), c(deck.Seven, deck.Clubs),
				c(deck.Nine, deck.Clubs), c(deck.Queen, deck.Clubs), c(deck.King, deck.Clubs),
				c(deck.Ace, deck.Hearts),
			),
			want: Rank{Category: Flush, Ranks: []deck.Rank{deck.King}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(tc.cards)
			if got.Compare(tc.want) != 0 || got.Category != tc.want.Category {
				t.Errorf("Evaluate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluatePartialHands(t *testing.T) {
	t.Parallel()

	// Stud compares visible up-card boards of fewer than five cards.
	got := Evaluate(cards(c(deck.Queen, deck.Spades)))
	want := Rank{Category: HighCard, Ranks: []deck.Rank{deck.Queen}}
	if got.Compare(want) != 0 {
		t.Errorf("single card: got %v, want %v", got, want)
	}

	got = Evaluate(cards(c(deck.Four, deck.Spades), c(deck.Four, deck.Hearts), c(deck.Nine, deck.Clubs)))
	want = Rank{Category: OnePair, Ranks: []deck.Rank{deck.Four}}
	if got.Compare(want) != 0 {
		t.Errorf("three cards: got %v, want %v", got, want)
	}
}

func TestRankOrdering(t *testing.T) {
	t.Parallel()

	royal := Rank{Category: RoyalFlush}
	quadSixes := Rank{Category: FourOfAKind, Ranks: []deck.Rank{deck.Six}}
	pairSixes := Rank{Category: OnePair, Ranks: []deck.Rank{deck.Six}}
	highJack := Rank{Category: HighCard, Ranks: []deck.Rank{deck.Jack}}

	if royal.Compare(quadSixes) != 1 {
		t.Error("royal flush should beat four of a kind")
	}
	if quadSixes.Compare(pairSixes) != 1 {
		t.Error("four of a kind should beat one pair")
	}
	// Category dominates the payload: a pair of sixes beats jack high even
	// though Jack > Six.
	if pairSixes.Compare(highJack) != 1 {
		t.Error("one pair should beat high card regardless of payload ranks")
	}

	within := Rank{Category: HighCard, Ranks: []deck.Rank{deck.Queen}}
	if within.Compare(highJack) != 1 {
		t.Error("queen high should beat jack high within the same category")
	}

	tied := Rank{Category: TwoPair, Ranks: []deck.Rank{deck.King, deck.Nine}}
	same := Rank{Category: TwoPair, Ranks: []deck.Rank{deck.King, deck.Nine}}
	if tied.Compare(same) != 0 {
		t.Error("identical ranks should compare as tied")
	}

	lower := Rank{Category: TwoPair, Ranks: []deck.Rank{deck.King, deck.Four}}
	if tied.Compare(lower) != 1 {
		t.Error("second pair should break the tie lexicographically")
	}
}
