// Package dispatch applies validated moves against the persisted round.
//
// The dispatcher is stateless: every request loads the room's round from the
// store, runs it through the engine, and writes it back with a conditional
// save. Lost version races are retried by reloading; the engine revalidates
// the move against the fresh state on every attempt.
package dispatch

import (
	"context"
	"errors"
	"time"

	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/deck"
	"bigtwo-server/pkg/match"

	"github.com/sirupsen/logrus"
)

// maxAttempts bounds the reload-and-retry loop on version conflicts
const maxAttempts = 3

// Action is the move type a seat submits
type Action string

// actions
const (
	ActionPlay Action = "play"
	ActionPass Action = "pass"
)

// ErrUnknownAction is returned for an unrecognized request action
var ErrUnknownAction = errors.New("unknown action")

// Request is one move submission.
//
// Auto marks a request minted by the auto-pass timer rather than a seat; for
// those the Seat field is ignored and TimerSeq must carry the sequence of the
// timer that minted the batch.
type Request struct {
	RoomUUID string   `json:"roomUuid"`
	Seat     int      `json:"seat"`
	Action   Action   `json:"action"`
	Cards    []string `json:"cards,omitempty"`
	Auto     bool     `json:"auto,omitempty"`
	TimerSeq int64    `json:"timerSeq,omitempty"`
}

// Result is the post-move public state
type Result struct {
	State   *bigtwo.GameState `json:"state"`
	Version int64             `json:"version"`
}

// Dispatcher routes move requests through the engine and the store
type Dispatcher struct {
	store  match.Store
	logger logrus.FieldLogger
	now    func() time.Time
}

// New returns a dispatcher backed by the store
func New(store match.Store, logger logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Dispatch applies the request to the room's live round.
// Engine rejections come back unwrapped so callers can map them to wire
// kinds; nothing is persisted for a rejected move.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		rec, err := d.store.GetRound(ctx, req.RoomUUID)
		if err != nil {
			return nil, err
		}

		seqBefore := rec.Round.TurnSeq
		if err := d.apply(rec.Round, req); err != nil {
			return nil, err
		}

		if rec.Round.TurnSeq == seqBefore {
			// absorbed no-op, nothing to persist
			return result(rec), nil
		}

		if err := d.store.SaveRound(ctx, rec); err != nil {
			if errors.Is(err, match.ErrConcurrentWriteConflict) {
				lastErr = err
				d.logger.WithFields(logrus.Fields{
					"room":    req.RoomUUID,
					"attempt": attempt,
				}).Debug("round save lost a version race")
				continue
			}

			return nil, err
		}

		return result(rec), nil
	}

	return nil, lastErr
}

func (d *Dispatcher) apply(round *bigtwo.Round, req Request) error {
	if req.Auto {
		return round.AutoPass(req.TimerSeq)
	}

	switch req.Action {
	case ActionPass:
		return round.Pass(req.Seat)
	case ActionPlay:
		cards, err := parseCards(req.Cards)
		if err != nil {
			return err
		}

		return round.Play(req.Seat, cards, d.now())
	}

	return ErrUnknownAction
}

func parseCards(ids []string) ([]*deck.Card, error) {
	cards := make([]*deck.Card, len(ids))
	for i, id := range ids {
		card, err := deck.CardFromID(id)
		if err != nil {
			return nil, bigtwo.ErrInvalidCombination
		}

		cards[i] = card
	}

	return cards, nil
}

func result(rec *match.RoundRecord) *Result {
	return &Result{
		State:   rec.Round.State(),
		Version: rec.Version,
	}
}

// ErrorKind maps a dispatch error to its wire kind
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, match.ErrConcurrentWriteConflict):
		return bigtwo.KindErrConflict
	case errors.Is(err, ErrUnknownAction):
		return bigtwo.KindErrInternal
	}

	return bigtwo.ErrorKind(err)
}
