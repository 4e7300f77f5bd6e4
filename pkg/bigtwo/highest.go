package bigtwo

import (
	"bigtwo-server/pkg/deck"
)

// CardSet tracks cards removed from circulation, keyed by card ID
type CardSet map[string]bool

// NewCardSet returns a set containing the given cards
func NewCardSet(cards ...*deck.Card) CardSet {
	s := make(CardSet, len(cards))
	s.Add(cards...)
	return s
}

// Add inserts cards into the set
func (s CardSet) Add(cards ...*deck.Card) {
	for _, card := range cards {
		s[card.ID()] = true
	}
}

// Has returns true if the card is in the set
func (s CardSet) Has(card *deck.Card) bool {
	return s[card.ID()]
}

// Clone returns a copy of the set
func (s CardSet) Clone() CardSet {
	s2 := make(CardSet, len(s))
	for id := range s {
		s2[id] = true
	}

	return s2
}

// Cards returns the members of the set in ascending order
func (s CardSet) Cards() []*deck.Card {
	cards := make([]*deck.Card, 0, len(s))
	for _, card := range deck.New().Cards {
		if s.Has(card) {
			cards = append(cards, card)
		}
	}

	return cards
}

// remaining holds the complement of the out-set, bucketed for O(n) lookups
type remaining struct {
	// byRank maps rank to the unseen cards of that rank, ascending by suit
	byRank map[int][]*deck.Card
	// bySuit maps suit to the unseen cards of that suit, ascending by rank
	bySuit map[deck.Suit][]*deck.Card
}

func remainingCards(play *Combination, out CardSet) *remaining {
	exclude := out.Clone()
	exclude.Add(play.Cards...)

	rem := &remaining{
		byRank: make(map[int][]*deck.Card),
		bySuit: make(map[deck.Suit][]*deck.Card),
	}

	for _, card := range deck.New().Cards {
		if exclude.Has(card) {
			continue
		}

		rem.byRank[card.Rank] = append(rem.byRank[card.Rank], card)
		rem.bySuit[card.Suit] = append(rem.bySuit[card.Suit], card)
	}

	return rem
}

// IsUnbeatable reports whether no card or combination still in circulation
// can beat the play. It must be called before the play's own cards are added
// to the out-set: the play is the candidate under test, not a played card.
// This is a deck-exhaustion test only; cards visible in opponents' hands are
// not inferable and are intentionally ignored.
func IsUnbeatable(play *Combination, out CardSet) bool {
	rem := remainingCards(play, out)

	switch play.Kind {
	case KindSingle:
		return !rem.hasHigherSingle(play.top)
	case KindPair:
		return !rem.hasBeatingOfSameRankKind(play, 2)
	case KindTriple:
		return !rem.hasBeatingOfSameRankKind(play, 3)
	}

	return !rem.hasBeatingFiveCard(play)
}

func (r *remaining) hasHigherSingle(top *deck.Card) bool {
	for _, cards := range r.byRank {
		for _, card := range cards {
			if card.Beats(top) {
				return true
			}
		}
	}

	return false
}

// hasBeatingOfSameRankKind checks whether a pair or triple that beats the play
// can be assembled from unseen cards. The best candidate for a rank uses its
// highest unseen cards, so only the top of each rank bucket matters.
func (r *remaining) hasBeatingOfSameRankKind(play *Combination, size int) bool {
	for _, cards := range r.byRank {
		if len(cards) < size {
			continue
		}

		if cards[len(cards)-1].Beats(play.top) {
			return true
		}
	}

	return false
}

// hasBeatingFiveCard checks every five-card kind of equal or higher precedence
func (r *remaining) hasBeatingFiveCard(play *Combination) bool {
	prec := play.Kind.precedence()

	if top := r.bestStraightFlushTop(); top != nil {
		if play.Kind != KindStraightFlush || top.Beats(play.top) {
			return true
		}
	}

	if prec <= KindFourOfAKind.precedence() {
		if rank := r.bestQuadRank(); rank > 0 {
			if play.Kind != KindFourOfAKind || rank > play.keyRank {
				return true
			}
		}
	}

	if prec <= KindFullHouse.precedence() {
		if rank := r.bestFullHouseTripleRank(); rank > 0 {
			if play.Kind != KindFullHouse || rank > play.keyRank {
				return true
			}
		}
	}

	if prec <= KindFlush.precedence() {
		if top := r.bestFlushTop(); top != nil {
			if play.Kind != KindFlush || top.Beats(play.top) {
				return true
			}
		}
	}

	if prec <= KindStraight.precedence() {
		if top := r.bestStraightTop(); top != nil {
			if play.Kind != KindStraight || top.Beats(play.top) {
				return true
			}
		}
	}

	return false
}

// bestStraightTop returns the highest top card among assemblable straights
func (r *remaining) bestStraightTop() *deck.Card {
	var best *deck.Card
	for start := deck.LowRank; start+4 <= deck.HighRank; start++ {
		ok := true
		for rank := start; rank <= start+4; rank++ {
			if len(r.byRank[rank]) == 0 {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		topBucket := r.byRank[start+4]
		top := topBucket[len(topBucket)-1]
		if best == nil || top.Beats(best) {
			best = top
		}
	}

	return best
}

// bestFlushTop returns the highest top card among assemblable flushes
func (r *remaining) bestFlushTop() *deck.Card {
	var best *deck.Card
	for _, cards := range r.bySuit {
		if len(cards) < 5 {
			continue
		}

		top := cards[len(cards)-1]
		if best == nil || top.Beats(best) {
			best = top
		}
	}

	return best
}

// bestFullHouseTripleRank returns the highest triple rank for which a full
// house can still be assembled, or 0 if none can
func (r *remaining) bestFullHouseTripleRank() int {
	ranksWithPair := 0
	for _, cards := range r.byRank {
		if len(cards) >= 2 {
			ranksWithPair++
		}
	}

	best := 0
	for rank, cards := range r.byRank {
		if len(cards) < 3 {
			continue
		}

		// the pair must come from a different rank
		if ranksWithPair < 2 {
			continue
		}

		if rank > best {
			best = rank
		}
	}

	return best
}

// bestQuadRank returns the highest rank with all four cards unseen, provided a
// kicker exists, or 0 if no quad can be assembled
func (r *remaining) bestQuadRank() int {
	total := 0
	for _, cards := range r.byRank {
		total += len(cards)
	}

	best := 0
	for rank, cards := range r.byRank {
		if len(cards) != 4 {
			continue
		}

		if total < 5 {
			continue
		}

		if rank > best {
			best = rank
		}
	}

	return best
}

// bestStraightFlushTop returns the highest top card among assemblable straight
// flushes, or nil if none can be formed
func (r *remaining) bestStraightFlushTop() *deck.Card {
	var best *deck.Card
	for suit, cards := range r.bySuit {
		if len(cards) < 5 {
			continue
		}

		present := make(map[int]bool, len(cards))
		for _, card := range cards {
			present[card.Rank] = true
		}

		for start := deck.LowRank; start+4 <= deck.HighRank; start++ {
			ok := true
			for rank := start; rank <= start+4; rank++ {
				if !present[rank] {
					ok = false
					break
				}
			}

			if ok {
				top := &deck.Card{Rank: start + 4, Suit: suit}
				if best == nil || top.Beats(best) {
					best = top
				}
			}
		}
	}

	return best
}
