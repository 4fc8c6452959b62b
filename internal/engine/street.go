package engine

import "fmt"

// ErrUnsupportedStreet is returned for community card counts that have no
// defined game stage (exactly 1 or 2 shared cards).
var ErrUnsupportedStreet = fmt.Errorf("unsupported street")

// Street is the game stage implied by the number of revealed community
// cards. It is derived from the input on every calculation, never stored.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the lower-case street name
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// ResolveStreet maps a community card count to its street. Counts of 1 and
// 2 have no defined stage and counts outside 0-5 are invalid input.
func ResolveStreet(communityCount int) (Street, error) {
	switch communityCount {
	case 0:
		return Preflop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	case 1, 2:
		return 0, fmt.Errorf("%w: %d community cards", ErrUnsupportedStreet, communityCount)
	default:
		return 0, fmt.Errorf("%w: community card count %d out of range", ErrCardCount, communityCount)
	}
}
