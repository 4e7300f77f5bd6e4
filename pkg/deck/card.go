package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits is every suit in ascending Big Two order
var Suits = []Suit{Diamonds, Clubs, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
// In Big Two the deuce outranks everything, so it sits above the ace
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
	Two   = 15
)

// LowRank and HighRank bound the Big Two rank range (3 low, 2 high)
const (
	LowRank  = 3
	HighRank = Two
)

// Order returns the suit's tie-break position (diamonds low, spades high)
func (s Suit) Order() int {
	switch s {
	case Diamonds:
		return 0
	case Clubs:
		return 1
	case Hearts:
		return 2
	case Spades:
		return 3
	}

	panic(fmt.Sprintf("unknown suit: %s", s))
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	case Two:
		rank = "2"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Diamonds:
		suit = "♢"
	case Clubs:
		suit = "♣"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// ID returns the unique wire identifier for the card (e.g., "3d", "15s")
func (c *Card) ID() string {
	return fmt.Sprintf("%d%s", c.Rank, string(c.Suit[0]))
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// GlobalOrder returns the card's position in the strict 0–51 Big Two ordering.
// Rank dominates; suit breaks ties.
func (c *Card) GlobalOrder() int {
	return (c.Rank-LowRank)*4 + c.Suit.Order()
}

// Beats returns true if the card strictly outranks the other card
func (c *Card) Beats(other *Card) bool {
	return c.GlobalOrder() > other.GlobalOrder()
}

var cardRx = regexp.MustCompile(`(?i)^([3-9]|1[0-5])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 3 and <= 15 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardFromID parses a wire identifier like "3d" or "15s".
// Unlike CardFromString it returns an error instead of panicking, so it is
// safe for untrusted input.
func CardFromID(s string) (*Card, error) {
	if cardRx.FindStringSubmatch(s) == nil {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	return CardFromString(s), nil
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Two of Spades) to a string (15s)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return card.ID()
}

// CardsToString converts a slice of cards to a comma-separated string
func CardsToString(cards []*Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = CardToString(card)
	}

	return strings.Join(parts, ",")
}
