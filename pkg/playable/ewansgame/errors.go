package ewansgame

import (
	"errors"
	"fmt"
)

// ErrInvalidInteger is returned when the input is not a whole number
var ErrInvalidInteger = errors.New("please enter a whole number")

// ErrNegativeNumber is returned when a bid or trick count is below zero
var ErrNegativeNumber = errors.New("the number cannot be negative")

// ErrEmptyPlayerName is returned when a player has no name
var ErrEmptyPlayerName = errors.New("player name cannot be empty")

// ErrDuplicatePlayerName is returned when both players have the same name
var ErrDuplicatePlayerName = errors.New("player names must be different")

// ErrGameIsOver is an error when the game is advanced after it ended
var ErrGameIsOver = errors.New("game is over")

// BidSumError happens when the bids add up to the number of cards dealt
type BidSumError int

func (b BidSumError) Error() string {
	return fmt.Sprintf("sum of bids cannot equal the number of cards (%d)", int(b))
}

// Message returns the text shown to the players
func (b BidSumError) Message() string {
	return "Sum of bids cannot equal the number of cards."
}

// TrickSumError happens when the tricks don't add up to the number of cards dealt
type TrickSumError int

func (t TrickSumError) Error() string {
	return fmt.Sprintf("tricks must add up to %d", int(t))
}

// Message returns the text shown to the players
func (t TrickSumError) Message() string {
	return fmt.Sprintf("Tricks must add up to %d.", int(t))
}

// ruleError is an error that breaks a hand rule
type ruleError interface {
	error
	Message() string
}
