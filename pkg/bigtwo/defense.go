package bigtwo

import (
	"bigtwo-server/pkg/deck"
)

// RequiredDefensiveSingle returns the single the acting seat is forced to play
// when the next seat is down to one card, or nil if the rule imposes no
// constraint.
//
// With a single on the table it is the highest card in hand that beats it.
// With no play on the table (leading after a trick clear) it is the highest
// card in hand outright. A multi-card last play cannot be beaten by a single,
// so the rule never binds there. Callers are responsible for skipping the rule
// on the opening lead of a round, where no one-card seat can exist yet.
func RequiredDefensiveSingle(hand deck.Hand, last *LastPlay) *deck.Card {
	if last != nil && last.Combination.Kind != KindSingle {
		return nil
	}

	var best *deck.Card
	for _, card := range hand {
		if last != nil && !card.Beats(last.Combination.top) {
			continue
		}

		if best == nil || card.Beats(best) {
			best = card
		}
	}

	return best
}
