package bot

import (
	"context"
	"sync"

	"bigtwo-server/pkg/deck"
	"bigtwo-server/pkg/dispatch"
	"bigtwo-server/pkg/match"

	"github.com/sirupsen/logrus"
)

// Coordinator drives the bot seats of one room.
//
// Act is called whenever the room's state may have changed; the coordinator
// submits at most one move per turn sequence, so redundant wake-ups and slow
// dispatches cannot double-act.
type Coordinator struct {
	store      match.Store
	dispatcher *dispatch.Dispatcher
	roomUUID   string
	logger     logrus.FieldLogger

	mu     sync.Mutex
	brains map[int]Brain
	// actedSeq is the turn sequence a move is in flight for, -1 when idle
	actedSeq int64
}

// NewCoordinator returns a coordinator with no bot seats
func NewCoordinator(store match.Store, dispatcher *dispatch.Dispatcher, roomUUID string, logger logrus.FieldLogger) *Coordinator {
	return &Coordinator{
		store:      store,
		dispatcher: dispatcher,
		roomUUID:   roomUUID,
		logger:     logger,
		brains:     make(map[int]Brain),
		actedSeq:   -1,
	}
}

// Seat assigns a brain to the seat index
func (c *Coordinator) Seat(seat int, brain Brain) {
	c.mu.Lock()
	c.brains[seat] = brain
	c.mu.Unlock()
}

// HasSeat returns true if the seat is bot-controlled
func (c *Coordinator) HasSeat(seat int) bool {
	c.mu.Lock()
	_, ok := c.brains[seat]
	c.mu.Unlock()
	return ok
}

// Act submits a move if it is currently a bot seat's turn.
// Returns true if a move was submitted. Human seats are never acted for.
func (c *Coordinator) Act(ctx context.Context) (bool, error) {
	rec, err := c.store.GetRound(ctx, c.roomUUID)
	if err != nil {
		return false, err
	}

	if rec.Round.IsOver() {
		return false, nil
	}

	seat := rec.Round.CurrentTurn
	c.mu.Lock()
	brain, ok := c.brains[seat]
	if !ok || c.actedSeq == rec.Round.TurnSeq {
		c.mu.Unlock()
		return false, nil
	}

	c.actedSeq = rec.Round.TurnSeq
	c.mu.Unlock()

	move := brain.ChooseMove(rec.Round, seat)

	req := dispatch.Request{
		RoomUUID: c.roomUUID,
		Seat:     seat,
		Action:   dispatch.ActionPlay,
		Cards:    cardIDs(move.Cards),
	}
	if move.Pass {
		req.Action = dispatch.ActionPass
		req.Cards = nil
	}

	if _, err := c.dispatcher.Dispatch(ctx, req); err != nil {
		c.mu.Lock()
		if c.actedSeq == rec.Round.TurnSeq {
			c.actedSeq = -1
		}
		c.mu.Unlock()

		c.logger.WithError(err).WithFields(logrus.Fields{
			"room": c.roomUUID,
			"seat": seat,
		}).Warn("bot move rejected")
		return false, err
	}

	return true, nil
}

func cardIDs(cards []*deck.Card) []string {
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID()
	}

	return ids
}
