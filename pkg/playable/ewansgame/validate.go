package ewansgame

// ValidateBids returns true if the bids can be accepted
// Bids may not add up to the number of cards dealt
func ValidateBids(bidOne, bidTwo, cardCount int) bool {
	return bidOne+bidTwo != cardCount
}

// ValidateTricks returns true if the tricks account for every card dealt
func ValidateTricks(tricksOne, tricksTwo, cardCount int) bool {
	return tricksOne+tricksTwo == cardCount
}

func checkBids(bidOne, bidTwo, cardCount int) ruleError {
	if !ValidateBids(bidOne, bidTwo, cardCount) {
		return BidSumError(cardCount)
	}

	return nil
}

func checkTricks(tricksOne, tricksTwo, cardCount int) ruleError {
	if !ValidateTricks(tricksOne, tricksTwo, cardCount) {
		return TrickSumError(cardCount)
	}

	return nil
}
