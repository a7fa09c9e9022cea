package ewansgame

// State represents where the game is within a hand
type State int

// constants for State
const (
	StateAwaitingHand State = iota
	StateAwaitingBidOne
	StateAwaitingBidTwo
	StateAwaitingTricks
	StateScored
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateAwaitingHand:
		return "awaiting-hand"
	case StateAwaitingBidOne:
		return "awaiting-bid-one"
	case StateAwaitingBidTwo:
		return "awaiting-bid-two"
	case StateAwaitingTricks:
		return "awaiting-tricks"
	case StateScored:
		return "scored"
	case StateGameOver:
		return "game-over"
	}

	return ""
}
