// Package bot fills empty seats with automated players.
//
// A Brain picks a move from the full round state; the Coordinator watches the
// turn and submits the chosen move through the regular dispatcher, so bot
// moves face exactly the same validation as human ones.
package bot

import (
	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/deck"
)

// tiers
const (
	TierCasual = "casual"
	TierShark  = "shark"
)

// Move is a chosen action for a seat
type Move struct {
	Cards []*deck.Card
	Pass  bool
}

// Brain decides the seat's next move.
// Implementations may assume it is the seat's turn and must return a move the
// engine will accept.
type Brain interface {
	ChooseMove(round *bigtwo.Round, seat int) Move
}

// requiredMove handles the constraints every tier must honor: the one-card-left
// rule and the no-pass-while-leading rule. The second return is false when the
// brain is free to choose.
func requiredMove(round *bigtwo.Round, seat int) (Move, bool) {
	if required := round.RequiredDefensiveFor(seat); required != nil {
		return Move{Cards: []*deck.Card{required}}, true
	}

	return Move{}, false
}
