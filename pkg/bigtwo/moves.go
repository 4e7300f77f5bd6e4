package bigtwo

import (
	"sort"

	"bigtwo-server/pkg/deck"
)

// LegalPlays enumerates every combination in the hand that could legally be
// played over the given last play. With no play on the table every valid
// combination qualifies; otherwise only same-size, strictly beating
// combinations do. Results are ordered weakest first.
//
// The one-card-left rule is not applied here; use the Round's
// RequiredDefensiveFor when the next seat is down to a single card.
func LegalPlays(hand deck.Hand, last *LastPlay) []*Combination {
	var plays []*Combination

	add := func(cards ...*deck.Card) {
		comb, err := Classify(cards)
		if err != nil {
			return
		}

		if last != nil && Compare(comb, last.Combination) != Beats {
			return
		}

		plays = append(plays, comb)
	}

	size := 0
	if last != nil {
		size = last.Combination.Size()
	}

	if size == 0 || size == 1 {
		for _, card := range hand {
			add(card)
		}
	}

	byRank := make(map[int][]*deck.Card)
	for _, card := range hand {
		byRank[card.Rank] = append(byRank[card.Rank], card)
	}

	if size == 0 || size == 2 {
		for _, cards := range byRank {
			forEachSubset(cards, 2, add)
		}
	}

	if size == 0 || size == 3 {
		for _, cards := range byRank {
			forEachSubset(cards, 3, add)
		}
	}

	if size == 0 || size == 5 {
		forEachSubset(hand, 5, add)
	}

	sort.Slice(plays, func(i, j int) bool {
		if cmp := Compare(plays[i], plays[j]); cmp != Incomparable {
			return cmp == Loses
		}

		return plays[i].Size() < plays[j].Size()
	})

	return plays
}

// forEachSubset invokes fn with every size-k subset of cards
func forEachSubset(cards []*deck.Card, k int, fn func(...*deck.Card)) {
	if len(cards) < k {
		return
	}

	subset := make([]*deck.Card, k)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			fn(subset...)
			return
		}

		for i := start; i <= len(cards)-(k-depth); i++ {
			subset[depth] = cards[i]
			recurse(i+1, depth+1)
		}
	}

	recurse(0, 0)
}
