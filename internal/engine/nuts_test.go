package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/potodds/internal/deck"
)

func TestUnbeatableRoyalFlush(t *testing.T) {
	e := newTestEngine(t)

	nuts, err := e.Unbeatable(context.Background(), deck.MustParseCards("AhKh"), deck.MustParseCards("QhJhTh"))
	require.NoError(t, err)
	assert.True(t, nuts)
}

func TestUnbeatableSetIsNot(t *testing.T) {
	e := newTestEngine(t)

	// Top set of sevens loses to aces in the hole
	nuts, err := e.Unbeatable(context.Background(), deck.MustParseCards("7c7s"), deck.MustParseCards("7hAdKs"))
	require.NoError(t, err)
	assert.False(t, nuts)
}

func TestUnbeatableTiesDoNotDisqualify(t *testing.T) {
	e := newTestEngine(t)

	// Broadway on a rainbow board: any ace ties, nothing beats it
	nuts, err := e.Unbeatable(context.Background(), deck.MustParseCards("AsAd"), deck.MustParseCards("KsQhJdTc9s"))
	require.NoError(t, err)
	assert.True(t, nuts)
}

func TestUnbeatableBoardOnlyHand(t *testing.T) {
	e := newTestEngine(t)

	// Royal flush entirely on the board belongs to everyone
	nuts, err := e.Unbeatable(context.Background(), deck.MustParseCards("2c3d"), deck.MustParseCards("AsKsQsJsTs"))
	require.NoError(t, err)
	assert.False(t, nuts)
}

func TestUnbeatableQuadsWithBlockedBoard(t *testing.T) {
	e := newTestEngine(t)

	// Quad aces with no straight flush possible
	nuts, err := e.Unbeatable(context.Background(), deck.MustParseCards("AhAd"), deck.MustParseCards("AcAsKh"))
	require.NoError(t, err)
	assert.True(t, nuts)
}

func TestUnbeatableWorkerCountIrrelevant(t *testing.T) {
	cases := []struct {
		hole      string
		community string
	}{
		{hole: "AhKh", community: "QhJhTh"},
		{hole: "7c7s", community: "7hAdKs"},
		{hole: "AsAd", community: "KsQhJdTc9s"},
	}

	parallel := newTestEngine(t)
	sequential := newTestEngine(t, WithWorkers(1))

	for _, tc := range cases {
		hole := deck.MustParseCards(tc.hole)
		community := deck.MustParseCards(tc.community)

		a, err := parallel.Unbeatable(context.Background(), hole, community)
		require.NoError(t, err)
		b, err := sequential.Unbeatable(context.Background(), hole, community)
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s / %s", tc.hole, tc.community)
	}
}

func TestUnbeatableRequiresBoard(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Unbeatable(context.Background(), deck.MustParseCards("AhKh"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCardCount))
}

func TestUnbeatableHonorsContext(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Unbeatable(ctx, deck.MustParseCards("AhKh"), deck.MustParseCards("QhJhTh"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
