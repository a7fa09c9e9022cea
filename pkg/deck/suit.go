package deck

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"

	// NoTrump marks a hand that is played without a trump suit
	NoTrump Suit = "none"
)

// String returns the display name of the suit, e.g., "Hearts"
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case NoTrump:
		return "None"
	}

	return string(s)
}

// Symbol returns the unicode symbol for the suit
// NoTrump and unknown suits have no symbol
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	}

	return ""
}

// IsTrump returns true if the suit names an actual trump suit
func (s Suit) IsTrump() bool {
	return s.Symbol() != ""
}
