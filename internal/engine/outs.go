package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/potodds/internal/deck"
)

// The ten 5-card straights, wheel first.
var straights = [10][5]deck.Rank{
	{deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five},
	{deck.Two, deck.Three, deck.Four, deck.Five, deck.Six},
	{deck.Three, deck.Four, deck.Five, deck.Six, deck.Seven},
	{deck.Four, deck.Five, deck.Six, deck.Seven, deck.Eight},
	{deck.Five, deck.Six, deck.Seven, deck.Eight, deck.Nine},
	{deck.Six, deck.Seven, deck.Eight, deck.Nine, deck.Ten},
	{deck.Seven, deck.Eight, deck.Nine, deck.Ten, deck.Jack},
	{deck.Eight, deck.Nine, deck.Ten, deck.Jack, deck.Queen},
	{deck.Nine, deck.Ten, deck.Jack, deck.Queen, deck.King},
	{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace},
}

// FindOuts enumerates the unseen cards that strictly improve the player's
// current hand category. Candidate cards come from the draw detectors
// (flush, straight, straight-flush, pairing improvements); each candidate
// is then confirmed against the oracle, and the recorded draw type is the
// oracle's achieved category for that card, so there is exactly one
// category per out by construction. Outs are returned in universe order.
func (e *Engine) FindOuts(ctx context.Context, hole, community []deck.Card) ([]Out, error) {
	known := make([]deck.Card, 0, len(hole)+len(community))
	known = append(known, hole...)
	known = append(known, community...)

	// One more card must fit under the oracle's 7-card limit, so outs are
	// only defined at the flop and turn.
	if len(known) < 5 || len(known) > 6 {
		return nil, fmt.Errorf("%w: outs require 5 or 6 known cards, got %d", ErrCardCount, len(known))
	}

	current, err := e.oracle.Evaluate(known)
	if err != nil {
		return nil, err
	}

	unseen := deck.Unseen(hole, community)
	candidates := drawCandidates(hole, community, unseen)

	ordered := make([]deck.Card, 0, candidates.Count())
	for _, c := range unseen {
		if candidates.Contains(c) {
			ordered = append(ordered, c)
		}
	}
	if len(ordered) == 0 {
		return []Out{}, nil
	}

	// Per-card evaluations are independent; stripe them across workers
	// and write into slots indexed by candidate position so the output
	// order stays deterministic.
	outs := make([]Out, len(ordered))
	valid := make([]bool, len(ordered))

	workers := e.workers
	if workers > len(ordered) {
		workers = len(ordered)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			hand := make([]deck.Card, len(known)+1)
			copy(hand, known)

			for i := w; i < len(ordered); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}

				hand[len(known)] = ordered[i]
				candidate, err := e.oracle.Evaluate(hand)
				if err != nil {
					return err
				}
				if candidate.Category > current.Category {
					outs[i] = Out{Card: ordered[i], Draw: candidate.Category}
					valid[i] = true
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	confirmed := make([]Out, 0, len(ordered))
	for i, ok := range valid {
		if ok {
			confirmed = append(confirmed, outs[i])
		}
	}
	return confirmed, nil
}

// drawCandidates collects the unseen cards worth confirming as outs: cards
// completing a flush, straight, or straight flush, cards pairing an
// overcard, and cards upgrading pairs and sets. The heuristics mirror how
// players count outs at the table; only candidates that the oracle later
// confirms as strict improvements become outs.
func drawCandidates(hole, community, unseen []deck.Card) deck.CardSet {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	var rankCount [15]int
	var suitCount [4]int
	var suitHas [4][15]bool
	for _, c := range all {
		rankCount[c.Rank]++
		suitCount[c.Suit]++
		suitHas[c.Suit][c.Rank] = true
	}

	var boardRankCount [15]int
	boardPaired := false
	for _, c := range community {
		boardRankCount[c.Rank]++
		if boardRankCount[c.Rank] >= 2 {
			boardPaired = true
		}
	}

	var candidates deck.CardSet

	// Flush draws: four or more cards of one suit make every remaining
	// card of that suit a candidate (also covers straight and royal flush
	// completions in that suit).
	for s := deck.Spades; s <= deck.Clubs; s++ {
		if suitCount[s] >= 4 {
			for _, c := range unseen {
				if c.Suit == s {
					candidates.Add(c)
				}
			}
		}
	}

	// Straight flush completions: a straight missing exactly one rank
	// within a single suit.
	for s := deck.Spades; s <= deck.Clubs; s++ {
		for _, straight := range straights {
			missing := deck.Card{}
			missingCount := 0
			for _, r := range straight {
				if !suitHas[s][r] {
					missing = deck.Card{Suit: s, Rank: r}
					missingCount++
				}
			}
			if missingCount == 1 {
				candidates.Add(missing)
			}
		}
	}

	// Straight completions: a straight with four ranks present and one
	// missing makes every unseen card of the missing rank a candidate.
	straightOutCards := 0
	var straightRank [15]bool
	for _, straight := range straights {
		missing := deck.Rank(0)
		missingCount := 0
		for _, r := range straight {
			if rankCount[r] == 0 {
				missing = r
				missingCount++
			}
		}
		if missingCount == 1 && !straightRank[missing] {
			straightRank[missing] = true
			for _, c := range unseen {
				if c.Rank == missing {
					candidates.Add(c)
					straightOutCards++
				}
			}
		}
	}

	// Overcards to the board make top pair, but only when no flush or
	// straight draw dominates the hand.
	flushDraw := false
	for s := deck.Spades; s <= deck.Clubs; s++ {
		if suitCount[s] == 4 {
			flushDraw = true
		}
	}
	if !flushDraw && straightOutCards < 4 && len(community) > 0 {
		highestBoard := deck.Rank(0)
		for _, c := range community {
			if c.Rank > highestBoard {
				highestBoard = c.Rank
			}
		}
		for _, h := range hole {
			if h.Rank > highestBoard {
				for _, c := range unseen {
					if c.Rank == h.Rank {
						candidates.Add(c)
					}
				}
			}
		}
	}

	// Pairs upgrade to trips; trips upgrade to quads or fill up against
	// any unpaired rank.
	for r := deck.Two; r <= deck.Ace; r++ {
		switch rankCount[r] {
		case 2:
			// Trips outs on a paired board involving that board rank are
			// dominated by full house threats; skip them.
			if boardPaired && boardRankCount[r] >= 1 {
				continue
			}
			for _, c := range unseen {
				if c.Rank == r {
					candidates.Add(c)
				}
			}
		case 3:
			for _, c := range unseen {
				if c.Rank == r {
					candidates.Add(c) // quads
				}
			}
			for other := deck.Two; other <= deck.Ace; other++ {
				if rankCount[other] != 1 {
					continue
				}
				for _, c := range unseen {
					if c.Rank == other {
						candidates.Add(c) // pairs up into a full house
					}
				}
			}
		}
	}

	// An unpaired hole card pairing up against an already-paired board
	// makes two pair, as long as the hand is not already two pair or
	// better on rank counts.
	pairedRanks := 0
	for r := deck.Two; r <= deck.Ace; r++ {
		if rankCount[r] >= 2 {
			pairedRanks++
		}
	}
	if pairedRanks < 2 && boardPaired {
		for _, h := range hole {
			if rankCount[h.Rank] != 1 {
				continue
			}
			for _, c := range unseen {
				if c.Rank == h.Rank {
					candidates.Add(c)
				}
			}
		}
	}

	return candidates
}
