package evaluator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/potodds/internal/deck"
)

func TestEvaluateCategories(t *testing.T) {
	oracle := NewLookupOracle()

	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{name: "royal flush", cards: "AsKsQsJsTs", expected: RoyalFlush},
		{name: "straight flush", cards: "9s8s7s6s5s", expected: StraightFlush},
		{name: "wheel straight flush", cards: "As2s3s4s5s", expected: StraightFlush},
		{name: "four of a kind", cards: "AsAhAdAcKs", expected: FourOfAKind},
		{name: "full house", cards: "AsAhAdKsKh", expected: FullHouse},
		{name: "flush", cards: "AsKs7s3s2s", expected: Flush},
		{name: "straight", cards: "9s8h7d6c5s", expected: Straight},
		{name: "wheel straight", cards: "As2h3d4c5s", expected: Straight},
		{name: "three of a kind", cards: "AsAhAd7c2s", expected: ThreeOfAKind},
		{name: "two pair", cards: "AsAhKdKc2s", expected: TwoPair},
		{name: "pair", cards: "AsAh9d7c2s", expected: Pair},
		{name: "high card", cards: "AsKh9d7c2s", expected: HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := oracle.Evaluate(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Category)
			assert.Equal(t, tt.expected, result.Strength.Category())
		})
	}
}

func TestEvaluateSelectsBestFive(t *testing.T) {
	oracle := NewLookupOracle()

	// 6 cards containing a 9-high straight
	result, err := oracle.Evaluate(deck.MustParseCards("9s8h5c6dKs7s"))
	require.NoError(t, err)
	assert.Equal(t, Straight, result.Category)

	// 7 cards where the flush beats the pair
	result, err = oracle.Evaluate(deck.MustParseCards("AsKs7s3s2sAh9d"))
	require.NoError(t, err)
	assert.Equal(t, Flush, result.Category)
}

func TestEvaluateOrdering(t *testing.T) {
	oracle := NewLookupOracle()

	flush, err := oracle.Evaluate(deck.MustParseCards("AsKs7s3s2s"))
	require.NoError(t, err)
	straight, err := oracle.Evaluate(deck.MustParseCards("9s8h7d6c5s"))
	require.NoError(t, err)

	assert.True(t, flush.Strength.Beats(straight.Strength))
	assert.False(t, straight.Strength.Beats(flush.Strength))
	assert.True(t, flush.Category > straight.Category)
}

func TestEvaluateTies(t *testing.T) {
	oracle := NewLookupOracle()

	a, err := oracle.Evaluate(deck.MustParseCards("AsKhQdJcTs"))
	require.NoError(t, err)
	b, err := oracle.Evaluate(deck.MustParseCards("AhKsQcJdTh"))
	require.NoError(t, err)

	assert.Equal(t, a.Strength, b.Strength)
	assert.False(t, a.Strength.Beats(b.Strength))
	assert.True(t, a.Strength.AtLeast(b.Strength))
}

func TestEvaluateErrors(t *testing.T) {
	oracle := NewLookupOracle()

	_, err := oracle.Evaluate(deck.MustParseCards("AsKsQsJs"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEvaluation))

	_, err = oracle.Evaluate(deck.MustParseCards("AsKsQsJsTs9s8s7s"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEvaluation))

	_, err = oracle.Evaluate(deck.MustParseCards("AsAsQsJsTs"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEvaluation))
}

func TestEvaluateDeterministic(t *testing.T) {
	oracle := NewLookupOracle()
	cards := deck.MustParseCards("9s8h5c6dKs")

	first, err := oracle.Evaluate(cards)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := oracle.Evaluate(cards)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
