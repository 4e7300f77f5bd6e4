package bigtwo

import (
	"encoding/json"
	"sort"

	"bigtwo-server/pkg/deck"
)

// Kind classifies a set of 1, 2, 3, or 5 cards
type Kind int

// combination kinds
const (
	KindInvalid Kind = iota
	KindSingle
	KindPair
	KindTriple
	KindStraight
	KindFlush
	KindFullHouse
	KindFourOfAKind
	KindStraightFlush
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindPair:
		return "pair"
	case KindTriple:
		return "triple"
	case KindStraight:
		return "straight"
	case KindFlush:
		return "flush"
	case KindFullHouse:
		return "full-house"
	case KindFourOfAKind:
		return "four-of-a-kind"
	case KindStraightFlush:
		return "straight-flush"
	}

	return "invalid"
}

// MarshalJSON encodes JSON
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// precedence orders the five-card kinds against each other
func (k Kind) precedence() int {
	switch k {
	case KindStraight:
		return 0
	case KindFlush:
		return 1
	case KindFullHouse:
		return 2
	case KindFourOfAKind:
		return 3
	case KindStraightFlush:
		return 4
	}

	panic("precedence is only defined for five-card kinds")
}

// Ordering is the result of comparing two combinations
type Ordering int

// ordering results
const (
	Incomparable Ordering = iota
	Beats
	Loses
)

// Combination is a classified set of cards.
// Cards are sorted ascending by the global Big Two ordering; the comparison
// key (top card, or the defining rank for full houses and quads) is derived
// at classification time.
type Combination struct {
	Kind  Kind         `json:"kind"`
	Cards []*deck.Card `json:"cards"`

	// top is the card that decides same-kind comparisons
	top *deck.Card
	// keyRank is the triple rank for a full house or the quad rank for four-of-a-kind
	keyRank int
}

// Top returns the card that decides same-kind comparisons
func (c *Combination) Top() *deck.Card {
	return c.top
}

// Size returns the number of cards in the combination
func (c *Combination) Size() int {
	return len(c.Cards)
}

// Classify determines the combination formed by the given cards.
// Input order does not matter. Any count other than 1, 2, 3, or 5 is invalid;
// 2- and 3-card sets must share a rank; 5-card sets are checked in order:
// straight flush, four-of-a-kind, full house, flush, straight.
func Classify(cards []*deck.Card) (*Combination, error) {
	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Sort(deck.Hand(sorted))

	switch len(sorted) {
	case 1:
		return &Combination{Kind: KindSingle, Cards: sorted, top: sorted[0]}, nil
	case 2, 3:
		for _, card := range sorted[1:] {
			if card.Rank != sorted[0].Rank {
				return nil, ErrInvalidCombination
			}
		}

		kind := KindPair
		if len(sorted) == 3 {
			kind = KindTriple
		}

		return &Combination{Kind: kind, Cards: sorted, top: sorted[len(sorted)-1]}, nil
	case 5:
		return classifyFive(sorted)
	}

	return nil, ErrInvalidCombination
}

// classifyFive expects cards sorted ascending
func classifyFive(cards []*deck.Card) (*Combination, error) {
	sameSuit := true
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			sameSuit = false
			break
		}
	}

	consecutive := true
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank != cards[i-1].Rank+1 {
			consecutive = false
			break
		}
	}

	if sameSuit && consecutive {
		return &Combination{Kind: KindStraightFlush, Cards: cards, top: cards[4]}, nil
	}

	counts := make(map[int]int)
	for _, card := range cards {
		counts[card.Rank]++
	}

	if len(counts) == 2 {
		for rank, n := range counts {
			switch n {
			case 4:
				return &Combination{Kind: KindFourOfAKind, Cards: cards, top: cards[4], keyRank: rank}, nil
			case 3:
				return &Combination{Kind: KindFullHouse, Cards: cards, top: cards[4], keyRank: rank}, nil
			}
		}
	}

	if sameSuit {
		return &Combination{Kind: KindFlush, Cards: cards, top: cards[4]}, nil
	}

	if consecutive {
		return &Combination{Kind: KindStraight, Cards: cards, top: cards[4]}, nil
	}

	return nil, ErrInvalidCombination
}

// Compare determines whether a beats b.
// Combinations of different sizes are incomparable. Five-card combinations of
// different kinds compare by kind precedence; otherwise the top card (or the
// defining rank for full houses and quads) decides.
func Compare(a, b *Combination) Ordering {
	if a.Size() != b.Size() {
		return Incomparable
	}

	if a.Kind != b.Kind {
		if a.Size() != 5 {
			return Incomparable
		}

		if a.Kind.precedence() > b.Kind.precedence() {
			return Beats
		}

		return Loses
	}

	switch a.Kind {
	case KindFullHouse, KindFourOfAKind:
		if a.keyRank > b.keyRank {
			return Beats
		}

		return Loses
	default:
		if a.top.Beats(b.top) {
			return Beats
		}

		return Loses
	}
}
