package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/potodds/internal/deck"
)

// errBeaten aborts the adversarial search as soon as one beating pair is
// found. Never returned to callers.
var errBeaten = errors.New("beating hand found")

// Unbeatable reports whether no opponent, holding any two of the unseen
// cards, can beat the player's current best hand on the board as revealed.
// Ties do not disqualify: a hand that can be matched but not beaten still
// counts. A hand playing the board alone never qualifies.
//
// This is the engine's most expensive operation, worst case C(47,2)=1081
// oracle evaluations; the pair search runs across workers and exits early
// on the first beating pair.
func (e *Engine) Unbeatable(ctx context.Context, hole, community []deck.Card) (bool, error) {
	if len(community) < 3 || len(community) > 5 {
		return false, fmt.Errorf("%w: invincibility requires 3-5 community cards, got %d", ErrCardCount, len(community))
	}

	known := make([]deck.Card, 0, len(hole)+len(community))
	known = append(known, hole...)
	known = append(known, community...)

	player, err := e.oracle.Evaluate(known)
	if err != nil {
		return false, err
	}

	// On a full board the best hand may be the board itself; a board-only
	// hand belongs to every player and never qualifies as unbeatable.
	if len(community) == 5 {
		board, err := e.oracle.Evaluate(community)
		if err != nil {
			return false, err
		}
		if board.Strength.AtLeast(player.Strength) {
			return false, nil
		}
	}

	unseen := deck.Unseen(hole, community)

	workers := e.workers
	if workers > len(unseen) {
		workers = len(unseen)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			hand := make([]deck.Card, len(community)+2)
			copy(hand, community)

			for i := w; i < len(unseen); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}

				hand[len(community)] = unseen[i]
				for j := i + 1; j < len(unseen); j++ {
					hand[len(community)+1] = unseen[j]
					opponent, err := e.oracle.Evaluate(hand)
					if err != nil {
						return err
					}
					if opponent.Strength.Beats(player.Strength) {
						return errBeaten
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, errBeaten) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
