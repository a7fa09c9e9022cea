package ewansgame

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestValidateBids(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for b1 := 0; b1 <= 8; b1++ {
			for b2 := 0; b2 <= 8; b2++ {
				assert.Equal(t, b1+b2 != n, ValidateBids(b1, b2, n), "bids %d+%d, %d cards", b1, b2, n)
			}
		}
	}
}

func TestValidateTricks(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for t1 := 0; t1 <= 8; t1++ {
			for t2 := 0; t2 <= 8; t2++ {
				assert.Equal(t, t1+t2 == n, ValidateTricks(t1, t2, n), "tricks %d+%d, %d cards", t1, t2, n)
			}
		}
	}
}

func Test_checkBids(t *testing.T) {
	assert.NoError(t, checkBids(3, 1, 5))
	err := checkBids(3, 2, 5)
	assert.Equal(t, BidSumError(5), err)
	assert.EqualError(t, err, "sum of bids cannot equal the number of cards (5)")
}

func Test_checkTricks(t *testing.T) {
	assert.NoError(t, checkTricks(3, 2, 5))
	err := checkTricks(3, 1, 5)
	assert.Equal(t, TrickSumError(5), err)
	assert.EqualError(t, err, "tricks must add up to 5")
}

func TestRuleError_Message(t *testing.T) {
	a := assert.New(t)
	a.Equal("Sum of bids cannot equal the number of cards.", BidSumError(5).Message())
	a.Equal("Tricks must add up to 4.", TrickSumError(4).Message())
}
