package engine

import (
	"fmt"
	"math"
)

// RatioUnbeatable is the pot-odds sentinel reported when the invincibility
// detector confirms no opponent can beat the hand.
const RatioUnbeatable = "NUTS!"

// ratioCapped stands in for a ratio when the win probability is zero or
// undefined: no outs, the river, or before the flop.
const ratioCapped = "999.0:1"

// WinProbability is the closed-form chance of hitting at least one of k
// outs on the remaining streets. At the flop two cards are still to come
// from 47 unseen; at the turn one card from 46.
func WinProbability(street Street, outs int) float64 {
	if outs <= 0 {
		return 0
	}

	switch street {
	case Flop:
		if outs >= 47 {
			return 1
		}
		missTurn := float64(47-outs) / 47
		missRiver := float64(46-outs) / 46
		return 1 - missTurn*missRiver
	case Turn:
		if outs >= 46 {
			return 1
		}
		return float64(outs) / 46
	default:
		// No formula exists for the remaining streets; callers handle
		// preflop and river through the sentinel paths.
		return 0
	}
}

// formatRatio renders the losing-to-winning ratio (1-P):P rounded to one
// decimal, collapsing a trailing ".0" to an integer ("4:1", not "4.0:1").
func formatRatio(p float64) string {
	if p <= 0 {
		return ratioCapped
	}
	if p >= 1 {
		return "0.0:1"
	}

	ratio := (1 - p) / p
	rounded := math.Round(ratio*10) / 10
	if rounded == math.Trunc(rounded) {
		return fmt.Sprintf("%d:1", int(rounded))
	}
	return fmt.Sprintf("%.1f:1", rounded)
}
