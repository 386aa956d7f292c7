package hand

import (
	"fmt"
	"strings"

	"cardroom/internal/deck"
)

// Category is a poker hand classification. Higher is better; the category
// always dominates the embedded rank payload when comparing hands.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Rank is a totally ordered hand classification: a category plus the rank
// payload that breaks ties inside the category (pair rank, straight high
// card, and so on). Royal flushes carry no payload.
type Rank struct {
	Category Category
	Ranks    []deck.Rank
}

// Compare returns 1 if r is the better hand, -1 if other is better and 0 if
// the hands are exactly tied. Ties are resolved by the pot divider, never
// here.
func (r Rank) Compare(other Rank) int {
	if r.Category != other.Category {
		if r.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(r.Ranks) && i < len(other.Ranks); i++ {
		if r.Ranks[i] != other.Ranks[i] {
			if r.Ranks[i] > other.Ranks[i] {
				return 1
			}
			return -1
		}
	}
	if len(r.Ranks) != len(other.Ranks) {
		if len(r.Ranks) > len(other.Ranks) {
			return 1
		}
		return -1
	}
	return 0
}

// String returns a description like "Full House (6 over 8)"
func (r Rank) String() string {
	switch r.Category {
	case RoyalFlush:
		return r.Category.String()
	case FullHouse:
		if len(r.Ranks) == 2 {
			return fmt.Sprintf("%s (%s over %s)", r.Category, r.Ranks[0], r.Ranks[1])
		}
	}
	if len(r.Ranks) == 0 {
		return r.Category.String()
	}
	parts := make([]string, len(r.Ranks))
	for i, rk := range r.Ranks {
		parts[i] = rk.String()
	}
	return fmt.Sprintf("%s (%s)", r.Category, strings.Join(parts, ", "))
}
