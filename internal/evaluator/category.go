// Package evaluator defines the hand-strength oracle contract consumed by
// the engine and provides the production implementation backed by the
// chehsunliu/poker lookup-table evaluator.
package evaluator

import (
	"fmt"
	"strings"
)

// Category enumerates hand categories ordered from weakest to strongest.
// The ordering is total: a direct > comparison between categories is the
// "strict improvement" test used by the outs enumerator.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the wire name of a category (e.g. "two_pair").
func (c Category) String() string {
	switch c {
	case HighCard:
		return "high_card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two_pair"
	case ThreeOfAKind:
		return "three_of_a_kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case FourOfAKind:
		return "four_of_a_kind"
	case StraightFlush:
		return "straight_flush"
	case RoyalFlush:
		return "royal_flush"
	default:
		return "unknown"
	}
}

// Display returns a human-readable category name for terminal output.
func (c Category) Display() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
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

// MarshalJSON renders the category as its wire name.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON parses a wire name back into a category.
func (c *Category) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	for cat := HighCard; cat <= RoyalFlush; cat++ {
		if cat.String() == name {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown hand category %q", name)
}

// Strength is a totally ordered hand strength on the 7462-class scale
// used by Cactus Kev style evaluators. Lower values are stronger.
type Strength int32

// Beats reports whether s is strictly stronger than other.
func (s Strength) Beats(other Strength) bool {
	return s < other
}

// AtLeast reports whether s is at least as strong as other (ties included).
func (s Strength) AtLeast(other Strength) bool {
	return s <= other
}

// Category boundaries on the 7462-class scale. Rank 1 is the royal flush.
const (
	maxStraightFlush = 10
	maxFourOfAKind   = 166
	maxFullHouse     = 322
	maxFlush         = 1599
	maxStraight      = 1609
	maxThreeOfAKind  = 2467
	maxTwoPair       = 3325
	maxPair          = 6185
)

// Category returns the hand category this strength falls into.
func (s Strength) Category() Category {
	switch {
	case s == 1:
		return RoyalFlush
	case s <= maxStraightFlush:
		return StraightFlush
	case s <= maxFourOfAKind:
		return FourOfAKind
	case s <= maxFullHouse:
		return FullHouse
	case s <= maxFlush:
		return Flush
	case s <= maxStraight:
		return Straight
	case s <= maxThreeOfAKind:
		return ThreeOfAKind
	case s <= maxTwoPair:
		return TwoPair
	case s <= maxPair:
		return Pair
	default:
		return HighCard
	}
}
