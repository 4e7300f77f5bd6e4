package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	hand := Hand(CardsFromString("15s,3d,7h,7c"))
	sort.Sort(hand)
	assert.Equal(t, "3d,7c,7h,15s", hand.String())

	assert.True(t, hand.HasCard(CardFromString("7h")))
	assert.False(t, hand.HasCard(CardFromString("7s")))

	assert.True(t, hand.Discard(CardFromString("7c")))
	assert.False(t, hand.Discard(CardFromString("7c")))
	assert.Equal(t, "3d,7h,15s", hand.String())

	assert.Equal(t, CardFromString("3d"), hand.FirstCard())
	assert.Equal(t, CardFromString("15s"), hand.LastCard())

	clone := hand.Clone()
	hand.AddCard(CardFromString("4d"))
	assert.Equal(t, 3, clone.Len())
	assert.Equal(t, 4, hand.Len())
}
