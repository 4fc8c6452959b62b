package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryWireNames(t *testing.T) {
	expected := map[Category]string{
		HighCard:      "high_card",
		Pair:          "pair",
		TwoPair:       "two_pair",
		ThreeOfAKind:  "three_of_a_kind",
		Straight:      "straight",
		Flush:         "flush",
		FullHouse:     "full_house",
		FourOfAKind:   "four_of_a_kind",
		StraightFlush: "straight_flush",
		RoyalFlush:    "royal_flush",
	}
	for cat, name := range expected {
		assert.Equal(t, name, cat.String())
	}
}

func TestCategoryOrdering(t *testing.T) {
	ordered := []Category{
		HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
	}
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i] > ordered[i-1],
			"%s should outrank %s", ordered[i], ordered[i-1])
	}
}

func TestStrengthBoundaries(t *testing.T) {
	tests := []struct {
		strength Strength
		expected Category
	}{
		{1, RoyalFlush},
		{2, StraightFlush},
		{10, StraightFlush},
		{11, FourOfAKind},
		{166, FourOfAKind},
		{167, FullHouse},
		{322, FullHouse},
		{323, Flush},
		{1599, Flush},
		{1600, Straight},
		{1609, Straight},
		{1610, ThreeOfAKind},
		{2467, ThreeOfAKind},
		{2468, TwoPair},
		{3325, TwoPair},
		{3326, Pair},
		{6185, Pair},
		{6186, HighCard},
		{7462, HighCard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.strength.Category(), "strength %d", tt.strength)
	}
}

func TestCategoryJSON(t *testing.T) {
	b, err := FullHouse.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"full_house"`, string(b))

	var cat Category
	assert.NoError(t, cat.UnmarshalJSON([]byte(`"straight_flush"`)))
	assert.Equal(t, StraightFlush, cat)

	assert.Error(t, cat.UnmarshalJSON([]byte(`"monster"`)))
}
