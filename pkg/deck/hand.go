package deck

// Hand is a seat's cards, kept in ascending GlobalOrder
type Hand []*Card

func (h Hand) Len() int      { return len(h) }
func (h Hand) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Less orders cards by the Big Two global ordering
func (h Hand) Less(i, j int) bool {
	return h[i].GlobalOrder() < h[j].GlobalOrder()
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand holds the card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard removes the card and reports whether it was held
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// FirstCard returns the lowest card, or nil for an empty hand
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the highest card, or nil for an empty hand
func (h Hand) LastCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[len(h)-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a shallow copy of the hand
func (h Hand) Clone() Hand {
	clone := make(Hand, len(h))
	copy(clone, h)

	return clone
}
