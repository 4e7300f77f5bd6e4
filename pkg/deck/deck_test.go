package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, 52, len(d.Cards))
	assert.Equal(t, &Card{Rank: 3, Suit: Diamonds}, d.Cards[0])
	assert.Equal(t, &Card{Rank: Two, Suit: Spades}, d.Cards[51])

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		assert.False(t, seen[card.ID()])
		seen[card.ID()] = true
	}
}

func TestDeck_Shuffle(t *testing.T) {
	d := New()
	d.Shuffle(42)
	assert.Equal(t, int64(42), d.Seed())

	d2 := New()
	d2.Shuffle(42)
	assert.Equal(t, d.HashCode(), d2.HashCode())

	d3 := New()
	d3.Shuffle(43)
	assert.NotEqual(t, d.HashCode(), d3.HashCode())

	assert.Panics(t, func() {
		New().Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	d := New()
	assert.True(t, d.CanDraw(52))
	assert.False(t, d.CanDraw(53))

	card, err := d.Draw()
	assert.NoError(t, err)
	assert.NotNil(t, card)
	assert.Equal(t, 51, d.CardsLeft())

	for d.CardsLeft() > 0 {
		_, err := d.Draw()
		assert.NoError(t, err)
	}

	card, err = d.Draw()
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Nil(t, card)
}
