package bigtwo

import (
	"bigtwo-server/pkg/deck"
)

// TimerState is the networked projection of an AutoPassTimer.
// The expiry and creation timestamps are the only timer data that ever cross
// the network; clients derive everything else locally.
type TimerState struct {
	// ExpiresAt is the absolute expiry, unix milliseconds, server clock
	ExpiresAt int64 `json:"expiresAt"`
	// ServerTime is the server clock at creation, unix milliseconds
	ServerTime int64 `json:"serverTime"`
	ExemptSeat int   `json:"exemptSeat"`
	Sequence   int64 `json:"sequence"`
}

// LastPlayState is the broadcast form of the play on the table
type LastPlayState struct {
	Seat  int          `json:"seat"`
	Kind  Kind         `json:"kind"`
	Cards []*deck.Card `json:"cards"`
}

// GameState is the full turn-state snapshot broadcast to every seat.
// Broadcasts are at-least-once; receivers re-render the whole snapshot rather
// than applying deltas. Hand contents are not included here — only counts are
// safe for all seats to see.
type GameState struct {
	CurrentTurn int            `json:"currentTurn"`
	PassCount   int            `json:"passCount"`
	TurnSeq     int64          `json:"turnSeq"`
	LastPlay    *LastPlayState `json:"lastPlay"`
	Timer       *TimerState    `json:"timer"`
	HandCounts  [NumSeats]int  `json:"handCounts"`
	IsOver      bool           `json:"isOver"`
	Winner      int            `json:"winner"`
	Scores      *[NumSeats]int `json:"scores,omitempty"`
}

// State builds the shared snapshot for the round
func (r *Round) State() *GameState {
	var counts [NumSeats]int
	for seat, hand := range r.Hands {
		counts[seat] = len(hand)
	}

	var last *LastPlayState
	if r.Last != nil {
		last = &LastPlayState{
			Seat:  r.Last.Seat,
			Kind:  r.Last.Combination.Kind,
			Cards: r.Last.Combination.Cards,
		}
	}

	var timer *TimerState
	if r.Timer != nil {
		timer = &TimerState{
			ExpiresAt:  r.Timer.ExpiresAt.UnixMilli(),
			ServerTime: r.Timer.ServerTime.UnixMilli(),
			ExemptSeat: r.Timer.ExemptSeat,
			Sequence:   r.Timer.Sequence,
		}
	}

	state := &GameState{
		CurrentTurn: r.CurrentTurn,
		PassCount:   r.PassCount,
		TurnSeq:     r.TurnSeq,
		LastPlay:    last,
		Timer:       timer,
		HandCounts:  counts,
		IsOver:      r.IsOver(),
		Winner:      r.Winner,
	}

	if r.IsOver() {
		scores := r.Scores()
		state.Scores = &scores
	}

	return state
}
