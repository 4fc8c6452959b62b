// Package engine implements the pot-odds calculation core: street
// resolution, outs enumeration with draw classification, exhaustive
// invincibility detection, and closed-form win probability. Every
// calculation is a pure function of its input cards; the engine holds no
// state between calls beyond its oracle and logger.
package engine

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/lox/potodds/internal/deck"
	"github.com/lox/potodds/internal/evaluator"
)

var (
	// ErrDuplicateCard reports the same card appearing twice across the
	// hole and community sets.
	ErrDuplicateCard = fmt.Errorf("duplicate card")

	// ErrCardCount reports hole or community card counts outside the
	// 2-and-0..5 contract.
	ErrCardCount = fmt.Errorf("invalid card count")
)

// Out is a single unseen card that strictly improves the player's hand,
// together with the category it achieves.
type Out struct {
	Card deck.Card          `json:"card"`
	Draw evaluator.Category `json:"draw_type"`
}

// Result is the engine's answer: the pot-odds ratio (or the "NUTS!"
// sentinel) and the outs that produced it.
type Result struct {
	PotOddsRatio string `json:"pot_odds_ratio"`
	Outs         []Out  `json:"outs"`
}

// Engine computes pot odds and outs for a partially-revealed hold'em hand.
// Safe for concurrent use: calculations share only the oracle, which is
// itself required to be concurrency-safe.
type Engine struct {
	oracle  evaluator.Oracle
	logger  *log.Logger
	workers int
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers sets the number of goroutines used for the per-card and
// per-pair evaluation loops. Values below 1 fall back to the default.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// New creates an engine backed by the given oracle. A nil logger discards
// all output.
func New(oracle evaluator.Oracle, logger *log.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8 // diminishing returns beyond this for ~1000 evaluations
	}

	e := &Engine{
		oracle:  oracle,
		logger:  logger.WithPrefix("engine"),
		workers: workers,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate computes the pot-odds ratio and outs for the given hole and
// community cards. Input invariants (2 hole cards, 0-5 community cards, no
// duplicates) are validated up front and fail loudly; the combinatorial
// work only starts on valid input.
func (e *Engine) Calculate(ctx context.Context, hole, community []deck.Card) (Result, error) {
	if err := validateInput(hole, community); err != nil {
		return Result{}, err
	}

	street, err := ResolveStreet(len(community))
	if err != nil {
		return Result{}, err
	}

	// Before the flop there is no defined current hand category, so no
	// outs calculation is attempted and the capped ratio is returned.
	if street == Preflop {
		e.logger.Debug("preflop request, no outs calculation", "hole", deck.Notation(hole))
		return Result{PotOddsRatio: ratioCapped, Outs: []Out{}}, nil
	}

	unbeatable, err := e.Unbeatable(ctx, hole, community)
	if err != nil {
		return Result{}, err
	}
	if unbeatable {
		e.logger.Debug("hand is unbeatable", "street", street)
		return Result{PotOddsRatio: RatioUnbeatable, Outs: []Out{}}, nil
	}

	// On the river there are no more cards to come; only the
	// invincibility check is meaningful.
	if street == River {
		return Result{PotOddsRatio: ratioCapped, Outs: []Out{}}, nil
	}

	outs, err := e.FindOuts(ctx, hole, community)
	if err != nil {
		return Result{}, err
	}
	if len(outs) == 0 {
		return Result{PotOddsRatio: ratioCapped, Outs: []Out{}}, nil
	}

	p := WinProbability(street, len(outs))
	ratio := formatRatio(p)
	e.logger.Debug("calculated pot odds",
		"street", street, "outs", len(outs), "probability", p, "ratio", ratio)

	return Result{PotOddsRatio: ratio, Outs: outs}, nil
}

// validateInput enforces the input contract: exactly 2 hole cards, 0-5
// community cards, all distinct.
func validateInput(hole, community []deck.Card) error {
	if len(hole) != 2 {
		return fmt.Errorf("%w: need exactly 2 hole cards, got %d", ErrCardCount, len(hole))
	}
	if len(community) > 5 {
		return fmt.Errorf("%w: at most 5 community cards, got %d", ErrCardCount, len(community))
	}

	var seen deck.CardSet
	for _, c := range hole {
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.Add(c)
	}
	for _, c := range community {
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.Add(c)
	}
	return nil
}
