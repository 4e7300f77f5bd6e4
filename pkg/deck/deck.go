package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"time"
)

// deckSize is a full four-suit deck
const deckSize = 52

// ErrEndOfDeck is returned when drawing from an empty deck
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck is an ordered stack of cards; the next card drawn is index 0
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
}

// New returns a fresh, unshuffled deck ordered by GlobalOrder
func New() *Deck {
	return &Deck{
		Cards: buildCards(),
		seed:  -1,
	}
}

func buildCards() []*Card {
	cards := make([]*Card, 0, deckSize)
	for rank := LowRank; rank <= HighRank; rank++ {
		for _, suit := range Suits {
			cards = append(cards, &Card{Rank: rank, Suit: suit})
		}
	}

	return cards
}

// Shuffle rebuilds and shuffles the deck from the seed.
// A zero seed takes the seed from the clock; the seed actually used is
// recorded so a deal can be replayed.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.seed = seed
	d.Cards = buildCards()

	rng := rand.New(rand.NewSource(seed)) // nolint:gosec
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Seed returns the seed the deck was shuffled from
func (d *Deck) Seed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash of the deck order
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw removes and returns the next card
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if at least want cards remain
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
