package ewansgame

import "ewansgame/pkg/deck"

// HandsPerGame is the number of hands in a game
const HandsPerGame = 13

// cardCounts and trumps always have the same length
var cardCounts = [HandsPerGame]int{1, 2, 3, 4, 5, 6, 7, 6, 5, 4, 3, 2, 1}

var trumps = [HandsPerGame]deck.Suit{
	deck.Hearts, deck.Clubs, deck.Diamonds, deck.Spades,
	deck.Hearts, deck.Clubs, deck.NoTrump, deck.Diamonds,
	deck.Spades, deck.Hearts, deck.Clubs, deck.Diamonds, deck.Spades,
}

// HandSpec describes a single hand
type HandSpec struct {
	// Number is the 1-based position of the hand in the game
	Number    int
	CardCount int
	Trump     deck.Suit
}

// Sequencer hands out the hands of a game in order
// It does not wrap and cannot be reset
type Sequencer struct {
	index int
}

// NewSequencer returns a sequencer positioned at the first hand
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next returns the next hand
// The second return value is false once every hand has been handed out
func (s *Sequencer) Next() (HandSpec, bool) {
	if s.index >= len(cardCounts) {
		return HandSpec{}, false
	}

	hand := HandSpec{
		Number:    s.index + 1,
		CardCount: cardCounts[s.index],
		Trump:     trumps[s.index],
	}

	s.index++
	return hand, true
}

// Remaining returns how many hands are left
func (s *Sequencer) Remaining() int {
	return len(cardCounts) - s.index
}
