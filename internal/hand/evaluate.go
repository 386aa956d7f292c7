package hand

import (
	"sort"

	"cardroom/internal/deck"
)

// Evaluate classifies an unordered set of held cards into a Rank. It accepts
// any number of cards from one upward: five-card hands for draw poker, seven
// for stud and hold'em, and partial up-card hands when stud compares visible
// boards between betting phases. Straights and flushes need five cards and
// simply never match on smaller inputs.
//
// Frequency counts are taken over all held cards, so the seven-card case
// reduces to the same classification as the five-card one.
func Evaluate(cards []deck.Card) Rank {
	if len(cards) == 0 {
		panic("hand: cannot evaluate an empty hand")
	}

	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	highest := sorted[len(sorted)-1].Rank

	if high, ok := bestStraightFlush(sorted); ok {
		if high == deck.Ace {
			return Rank{Category: RoyalFlush}
		}
		// The wheel reports Five as its high card.
		return Rank{Category: StraightFlush, Ranks: []deck.Rank{high}}
	}

	if high, ok := bestFlush(sorted); ok {
		return Rank{Category: Flush, Ranks: []deck.Rank{high}}
	}

	if high, ok := bestStraight(rankSet(sorted)); ok {
		return Rank{Category: Straight, Ranks: []deck.Rank{high}}
	}

	freqs := countRanks(sorted)

	var quads, trips, pairs []deck.Rank
	for _, f := range freqs {
		switch f.count {
		case 4:
			quads = append(quads, f.rank)
		case 3:
			trips = append(trips, f.rank)
		case 2:
			pairs = append(pairs, f.rank)
		}
	}

	switch {
	case len(quads) > 0:
		return Rank{Category: FourOfAKind, Ranks: []deck.Rank{quads[0]}}
	case len(trips) > 0 && (len(pairs) > 0 || len(trips) > 1):
		// With seven cards there may be two sets of trips; the lower set
		// fills in as the pair.
		pair := deck.Rank(0)
		if len(trips) > 1 {
			pair = trips[1]
		}
		if len(pairs) > 0 && pairs[0] > pair {
			pair = pairs[0]
		}
		return Rank{Category: FullHouse, Ranks: []deck.Rank{trips[0], pair}}
	case len(trips) > 0:
		return Rank{Category: ThreeOfAKind, Ranks: []deck.Rank{trips[0]}}
	case len(pairs) > 1:
		return Rank{Category: TwoPair, Ranks: []deck.Rank{pairs[0], pairs[1]}}
	case len(pairs) == 1:
		return Rank{Category: OnePair, Ranks: []deck.Rank{pairs[0]}}
	default:
		return Rank{Category: HighCard, Ranks: []deck.Rank{highest}}
	}
}

type rankFreq struct {
	rank  deck.Rank
	count int
}

// countRanks returns per-rank frequencies sorted by count descending, then
// rank descending, so the first buckets are the ones that name the hand.
func countRanks(cards []deck.Card) []rankFreq {
	counts := make(map[deck.Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}

	freqs := make([]rankFreq, 0, len(counts))
	for r, n := range counts {
		freqs = append(freqs, rankFreq{rank: r, count: n})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].count != freqs[j].count {
			return freqs[i].count > freqs[j].count
		}
		return freqs[i].rank > freqs[j].rank
	})
	return freqs
}

func rankSet(cards []deck.Card) map[deck.Rank]bool {
	set := make(map[deck.Rank]bool, len(cards))
	for _, c := range cards {
		set[c.Rank] = true
	}
	return set
}

// bestStraight returns the high card of the best straight formed by the
// given ranks. The wheel (A-2-3-4-5) must be detected explicitly because the
// ace otherwise sorts high; it reports Five.
func bestStraight(ranks map[deck.Rank]bool) (deck.Rank, bool) {
	for high := deck.Ace; high >= deck.Six; high-- {
		run := true
		for r := high; r > high-5; r-- {
			if !ranks[r] {
				run = false
				break
			}
		}
		if run {
			return high, true
		}
	}

	if ranks[deck.Ace] && ranks[deck.Two] && ranks[deck.Three] && ranks[deck.Four] && ranks[deck.Five] {
		return deck.Five, true
	}
	return 0, false
}

// bestFlush returns the highest card of a five-plus card suit group.
func bestFlush(cards []deck.Card) (deck.Rank, bool) {
	bySuit := make(map[deck.Suit][]deck.Card, 4)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	for _, suited := range bySuit {
		if len(suited) >= 5 {
			// cards arrive sorted ascending, so the last suited card is
			// the flush high card
			return suited[len(suited)-1].Rank, true
		}
	}
	return 0, false
}

// bestStraightFlush returns the high card of the best straight confined to a
// single suit.
func bestStraightFlush(cards []deck.Card) (deck.Rank, bool) {
	bySuit := make(map[deck.Suit]map[deck.Rank]bool, 4)
	for _, c := range cards {
		if bySuit[c.Suit] == nil {
			bySuit[c.Suit] = make(map[deck.Rank]bool, 13)
		}
		bySuit[c.Suit][c.Rank] = true
	}

	best := deck.Rank(0)
	found := false
	for _, ranks := range bySuit {
		if len(ranks) < 5 {
			continue
		}
		if high, ok := bestStraight(ranks); ok && (!found || high > best) {
			best = high
			found = true
		}
	}
	return best, found
}
