package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandTypeOrdering(t *testing.T) {
	ordered := []HandType{
		HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
	}

	for i, ht := range ordered {
		assert.Equal(t, i+1, int(ht))
	}

	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}

func TestHandTypeString(t *testing.T) {
	assert.Equal(t, "High Card", HighCard.String())
	assert.Equal(t, "Two Pair", TwoPair.String())
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Unknown", HandType(0).String())
	assert.Equal(t, "Unknown", HandType(11).String())
}
