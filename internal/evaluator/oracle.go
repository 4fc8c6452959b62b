package evaluator

import (
	"fmt"

	"github.com/chehsunliu/poker"

	"github.com/lox/potodds/internal/deck"
)

// ErrEvaluation indicates an oracle contract violation (wrong card count or
// duplicate cards). It is an internal failure, not a user error: callers
// must abort the calculation rather than return a partial result.
var ErrEvaluation = fmt.Errorf("hand evaluation failed")

// Result is the oracle's answer for a 5-7 card hand: the category of the
// best 5-card subset and its totally ordered strength value.
type Result struct {
	Category Category
	Strength Strength
}

// Oracle evaluates the best 5-card hand from 5-7 distinct cards. It is a
// pure function and must be safe to call from multiple goroutines.
type Oracle interface {
	Evaluate(cards []deck.Card) (Result, error)
}

// LookupOracle implements Oracle on top of the chehsunliu/poker
// lookup-table evaluator. The zero value is not usable; construct with
// NewLookupOracle. It holds no mutable state and is safe for concurrent use.
type LookupOracle struct {
	cards map[deck.Card]poker.Card
}

// NewLookupOracle creates the production oracle. Card translation is
// precomputed for all 52 cards so evaluation does no string building.
func NewLookupOracle() *LookupOracle {
	cards := make(map[deck.Card]poker.Card, 52)
	for _, c := range deck.Universe() {
		cards[c] = poker.NewCard(c.String())
	}
	return &LookupOracle{cards: cards}
}

// Evaluate returns the category and strength of the best 5-card hand
// selectable from the given cards.
func (o *LookupOracle) Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return Result{}, fmt.Errorf("%w: need 5-7 cards, got %d", ErrEvaluation, len(cards))
	}
	if set := deck.NewCardSet(cards); set.Count() != len(cards) {
		return Result{}, fmt.Errorf("%w: duplicate cards in %v", ErrEvaluation, cards)
	}

	libCards := make([]poker.Card, len(cards))
	for i, c := range cards {
		libCards[i] = o.cards[c]
	}

	strength := Strength(poker.Evaluate(libCards))
	return Result{Category: strength.Category(), Strength: strength}, nil
}
