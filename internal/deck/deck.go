package deck

import "math/bits"

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to a bit: index = (rank-2)*4 + suit
type CardSet uint64

// cardIndex converts a card to its bit index (0-51)
func cardIndex(card Card) int {
	return int(card.Rank-Two)*4 + int(card.Suit)
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// Count returns the number of cards in the set
func (cs CardSet) Count() int {
	return bits.OnesCount64(uint64(cs))
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Universe returns all 52 cards in deterministic order (suits Spades
// through Clubs, ranks Two through Ace within each suit).
func Universe() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Unseen returns the universe minus the player's hole cards and the
// community cards, in universe order. The result is freshly allocated on
// every call; nothing is cached between calls.
func Unseen(hole, community []Card) []Card {
	used := NewCardSet(hole)
	for _, card := range community {
		used.Add(card)
	}

	unseen := make([]Card, 0, 52-len(hole)-len(community))
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Suit: suit, Rank: rank}
			if !used.Contains(card) {
				unseen = append(unseen, card)
			}
		}
	}
	return unseen
}
