package bigtwo

import (
	"errors"
	"fmt"

	"bigtwo-server/pkg/deck"
)

// ErrInvalidCombination is an error when the cards do not form a playable combination
var ErrInvalidCombination = errors.New("cards do not form a valid combination")

// ErrNotYourTurn is returned when a seat acts out of turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrMustBeatLastPlay is returned when the submitted combination does not beat the play on the table
var ErrMustBeatLastPlay = errors.New("play does not beat the last play")

// ErrCannotPassWhileLeading is returned when the leading seat attempts to pass
var ErrCannotPassWhileLeading = errors.New("cannot pass while leading")

// ErrCardNotInHand happens when a seat tries to play a card it does not hold
var ErrCardNotInHand = errors.New("card is not in your hand")

// ErrStaleTimerSequence is returned for an auto-pass referencing an invalidated timer
var ErrStaleTimerSequence = errors.New("auto-pass timer is no longer active")

// ErrRoundOver is an error when an action is attempted after a seat has gone out
var ErrRoundOver = errors.New("the round is over")

// ErrInvariantViolation indicates the engine detected a state it claims cannot happen.
// The current request must be aborted; continuing would corrupt subsequent trick resolution.
var ErrInvariantViolation = errors.New("engine invariant violation")

// DefensiveSingleError is returned when the one-card-left rule forces a specific single
type DefensiveSingleError struct {
	Card *deck.Card
}

func (e DefensiveSingleError) Error() string {
	return fmt.Sprintf("next player has one card left; you must play your %s", e.Card)
}

// error kinds for the wire protocol
const (
	KindErrInvalidCombination  = "InvalidCombination"
	KindErrNotYourTurn         = "NotYourTurn"
	KindErrMustBeatLastPlay    = "MustBeatLastPlay"
	KindErrCannotPassLeading   = "CannotPassWhileLeading"
	KindErrDefensiveSingle     = "MustPlayRequiredDefensiveSingle"
	KindErrStaleTimerSequence  = "StaleTimerSequence"
	KindErrConflict            = "ConcurrentWriteConflict"
	KindErrInvariantViolation  = "InvariantViolation"
	KindErrCardNotInHand       = "CardNotInHand"
	KindErrRoundOver           = "RoundOver"
	KindErrInternal            = "Internal"
)

// ErrorKind maps an engine error to its wire kind
func ErrorKind(err error) string {
	var dse DefensiveSingleError
	if errors.As(err, &dse) {
		return KindErrDefensiveSingle
	}

	switch {
	case errors.Is(err, ErrInvalidCombination):
		return KindErrInvalidCombination
	case errors.Is(err, ErrNotYourTurn):
		return KindErrNotYourTurn
	case errors.Is(err, ErrMustBeatLastPlay):
		return KindErrMustBeatLastPlay
	case errors.Is(err, ErrCannotPassWhileLeading):
		return KindErrCannotPassLeading
	case errors.Is(err, ErrStaleTimerSequence):
		return KindErrStaleTimerSequence
	case errors.Is(err, ErrCardNotInHand):
		return KindErrCardNotInHand
	case errors.Is(err, ErrRoundOver):
		return KindErrRoundOver
	case errors.Is(err, ErrInvariantViolation):
		return KindErrInvariantViolation
	}

	return KindErrInternal
}
