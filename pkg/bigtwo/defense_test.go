package bigtwo

import (
	"testing"

	"bigtwo-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func lastSingle(t *testing.T, s string, seat int) *LastPlay {
	t.Helper()
	return &LastPlay{Seat: seat, Combination: combo(t, s)}
}

func TestRequiredDefensiveSingle(t *testing.T) {
	hand := deck.Hand(deck.CardsFromString("3d,5h,9c,13s"))

	// one qualifying single
	got := RequiredDefensiveSingle(deck.CardsFromString("5h"), lastSingle(t, "4h", 0))
	assert.True(t, got.Equal(deck.CardFromString("5h")))

	// multiple qualifying singles: the highest is required
	got = RequiredDefensiveSingle(hand, lastSingle(t, "4h", 0))
	assert.True(t, got.Equal(deck.CardFromString("13s")))

	// zero qualifying singles
	assert.Nil(t, RequiredDefensiveSingle(hand, lastSingle(t, "14s", 0)))

	// leading after a trick clear: the highest card outright
	got = RequiredDefensiveSingle(hand, nil)
	assert.True(t, got.Equal(deck.CardFromString("13s")))

	// a multi-card last play cannot be beaten by a single
	last := &LastPlay{Seat: 0, Combination: combo(t, "4c,4h")}
	assert.Nil(t, RequiredDefensiveSingle(hand, last))
}
