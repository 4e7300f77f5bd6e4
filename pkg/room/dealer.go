package room

import (
	"context"
	"sync"
	"time"

	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/bot"
	"bigtwo-server/pkg/dispatch"
	"bigtwo-server/pkg/match"

	"bigtwo-server/internal/config"
	"bigtwo-server/internal/rng"

	"github.com/sirupsen/logrus"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
	stateRoundEnded
)

// tickInterval is how often the dealer checks the auto-pass timer and gives
// the bot seats a chance to act
const tickInterval = time.Second

// ErrNotSeated happens when a spectator tries to act
var ErrNotSeated = match.UserError("you are not seated at this room")

// ErrNotHost happens when a non-host tries a host-only action
var ErrNotHost = match.UserError("only the host can do that")

// Dealer is responsible for controlling the rounds of a single room
type Dealer struct {
	pitBoss    *PitBoss
	room       *match.Room
	store      match.Store
	dispatcher *dispatch.Dispatcher
	bots       *bot.Coordinator
	clients    map[*Client]bool
	lock       sync.RWMutex

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool

	// resolvedTimerSeq is the newest timer sequence the dealer has already
	// submitted an auto-pass batch for
	resolvedTimerSeq int64
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, room *match.Room, store match.Store) *Dealer {
	dispatcher := dispatch.New(store, logrus.WithField("room", room.UUID))
	d := &Dealer{
		pitBoss:       pitBoss,
		room:          room,
		store:         store,
		dispatcher:    dispatcher,
		bots:          bot.NewCoordinator(store, dispatcher, room.UUID, logrus.WithField("room", room.UUID)),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}

	return d
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	d.seatBots()
	go d.runLoop()
}

func (d *Dealer) seatBots() {
	seats, err := d.room.GetSeats(context.Background())
	if err != nil {
		logrus.WithField("room", d.room.UUID).WithError(err).Error("could not load seats")
		return
	}

	for _, seat := range seats {
		if seat.IsBot {
			d.bots.Seat(seat.Seat, bot.BrainForTier(seat.BotTier, rng.Crypto{}))
		}
	}
}

func (d *Dealer) runLoop() {
	log := logrus.WithFields(logrus.Fields{
		"uuid": d.room.UUID,
		"name": d.room.Name,
	})

	log.Debug("creating dealer run loop")
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendSeatState()
			case stateGameEvent:
				d.sendGameState()
			case stateRoundEnded:
				d.sendRoundEnded()
				d.sendSeatState()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-ticker.C:
			update, err := d.Tick()
			if err != nil {
				log.WithError(err).Error("dealer tick failed")
			}

			if update {
				d.sendGameState()
			}
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// Tick advances anything time-driven: an expired auto-pass timer is resolved
// and idle bot seats get a chance to act.
// Returns true if the shared state changed.
// NOTE: must only be called from the run loop
func (d *Dealer) Tick() (bool, error) {
	ctx := context.Background()

	update, err := d.resolveExpiredTimer(ctx)
	if err != nil {
		return update, err
	}

	for i := 0; i < bigtwo.NumSeats; i++ {
		acted, err := d.bots.Act(ctx)
		if err != nil || !acted {
			return update, err
		}

		update = true
		if d.checkRoundOver(ctx) {
			break
		}
	}

	return update, nil
}

// resolveExpiredTimer submits the sequential auto-pass batch for an expired
// timer. Each timer sequence is resolved at most once; a manual move that
// lands mid-batch invalidates the timer and the remaining requests become
// stale no-ops on the engine side.
func (d *Dealer) resolveExpiredTimer(ctx context.Context) (bool, error) {
	rec, err := d.store.GetRound(ctx, d.room.UUID)
	if err != nil {
		if err == match.ErrRoundNotFound {
			return false, nil
		}

		return false, err
	}

	timer := rec.Round.Timer
	if rec.Round.IsOver() || timer == nil || !timer.Expired(time.Now()) {
		return false, nil
	}

	if d.resolvedTimerSeq == timer.Sequence {
		return false, nil
	}

	d.resolvedTimerSeq = timer.Sequence

	update := false
	for i := 0; i < bigtwo.NumSeats-1; i++ {
		_, err := d.dispatcher.Dispatch(ctx, dispatch.Request{
			RoomUUID: d.room.UUID,
			Auto:     true,
			TimerSeq: timer.Sequence,
		})
		if err != nil {
			if err == bigtwo.ErrStaleTimerSequence {
				break
			}

			logrus.WithField("room", d.room.UUID).WithError(err).Warn("auto-pass batch aborted")
			break
		}

		update = true
	}

	return update, nil
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		d.sendStateTo(client, "")
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "deal":
		if c.player == nil || c.player.ID != d.room.HostID {
			c.Send(newErrorResponse(msg.Context, ErrNotHost))
			return
		}

		d.execInRunLoop <- func() {
			if err := d.deal(); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(OK(msg.Context))
			d.stateChanged <- stateGameEvent
		}
	case "play", "pass":
		if c.seat < 0 {
			c.Send(newErrorResponse(msg.Context, ErrNotSeated))
			return
		}

		d.execInRunLoop <- func() {
			d.playerMove(c, msg)
		}
	case "state":
		d.execInRunLoop <- func() {
			d.sendStateTo(c, msg.Context)
		}
	case "legalPlays":
		d.execInRunLoop <- func() {
			d.sendLegalPlays(c, msg.Context)
		}
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) deal() error {
	ctx := context.Background()

	if rec, err := d.store.GetRound(ctx, d.room.UUID); err == nil && !rec.Round.IsOver() {
		return match.UserError("a round is already in progress")
	}

	seats, err := d.room.GetSeats(ctx)
	if err != nil {
		return err
	}

	// open seats are filled with casual bots
	taken := make(map[int]bool, len(seats))
	for _, seat := range seats {
		taken[seat.Seat] = true
	}

	for seat := 0; seat < bigtwo.NumSeats; seat++ {
		if taken[seat] {
			continue
		}

		if _, err := d.room.SeatBot(ctx, seat, bot.TierCasual); err != nil {
			return err
		}

		d.bots.Seat(seat, bot.BrainForTier(bot.TierCasual, rng.Crypto{}))
	}

	if len(taken) < bigtwo.NumSeats {
		d.stateChanged <- stateClientEvent
	}

	round := bigtwo.NewRound(rng.Seed())
	round.AutoPassDelay = time.Second * time.Duration(config.Instance().AutoPassDelay)

	if _, err := d.store.CreateRound(ctx, d.room.UUID, round); err != nil {
		return err
	}

	d.resolvedTimerSeq = 0
	return nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) playerMove(c *Client, msg *PayloadIn) {
	req := dispatch.Request{
		RoomUUID: d.room.UUID,
		Seat:     c.seat,
		Action:   dispatch.Action(msg.Action),
		Cards:    msg.Cards,
	}

	res, err := d.dispatcher.Dispatch(context.Background(), req)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	d.stateChanged <- stateGameEvent

	if res.State.IsOver {
		d.recordRound()
		d.stateChanged <- stateRoundEnded
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) checkRoundOver(ctx context.Context) bool {
	rec, err := d.store.GetRound(ctx, d.room.UUID)
	if err != nil || !rec.Round.IsOver() {
		return false
	}

	d.recordRound()
	d.stateChanged <- stateRoundEnded
	return true
}

// NOTE: must only be called from the run loop
func (d *Dealer) recordRound() {
	ctx := context.Background()
	rec, err := d.store.GetRound(ctx, d.room.UUID)
	if err != nil {
		logrus.WithField("room", d.room.UUID).WithError(err).Error("could not load finished round")
		return
	}

	if _, err := match.CreateReport(ctx, d.room.UUID, rec.Round); err != nil {
		logrus.WithField("room", d.room.UUID).WithError(err).Error("could not record round result")
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendRoundEnded() {
	for _, client := range d.Clients() {
		client.Send(&Response{Key: "roundEnded"})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameState() {
	rec, err := d.store.GetRound(context.Background(), d.room.UUID)
	if err != nil {
		if err != match.ErrRoundNotFound {
			logrus.WithField("room", d.room.UUID).WithError(err).Error("could not load round")
		}

		return
	}

	state := rec.Round.State()
	for _, client := range d.Clients() {
		client.Send(&Response{Key: "gameState", Data: state})
		if client.seat >= 0 {
			client.Send(&Response{Key: "hand", Data: rec.Round.Hands[client.seat]})
		}
	}
}

// sendStateTo sends the shared state plus the client's private hand
// NOTE: must only be called from the run loop
func (d *Dealer) sendStateTo(client *Client, ctx string) {
	rec, err := d.store.GetRound(context.Background(), d.room.UUID)
	if err != nil {
		if err != match.ErrRoundNotFound {
			logrus.WithField("room", d.room.UUID).WithError(err).Error("could not load round")
		}

		return
	}

	client.Send(&Response{Key: "gameState", Data: rec.Round.State(), Context: ctx})
	if client.seat >= 0 {
		client.Send(&Response{Key: "hand", Data: rec.Round.Hands[client.seat], Context: ctx})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendLegalPlays(client *Client, ctx string) {
	if client.seat < 0 {
		client.Send(newErrorResponse(ctx, ErrNotSeated))
		return
	}

	rec, err := d.store.GetRound(context.Background(), d.room.UUID)
	if err != nil {
		client.Send(newErrorResponse(ctx, err))
		return
	}

	plays := bigtwo.LegalPlays(rec.Round.Hands[client.seat], rec.Round.Last)
	client.Send(&Response{Key: "legalPlays", Data: plays, Context: ctx})
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendSeatState() {
	seats, err := d.room.GetSeats(context.Background())
	if err != nil {
		logrus.WithField("room", d.room.UUID).WithError(err).Error("could not load seats")
		return
	}

	connected := make(map[int64]bool)
	for _, client := range d.Clients() {
		connected[client.player.ID] = true
	}

	csSeats := make([]*clientStateSeat, 0, len(seats))
	for _, seat := range seats {
		csSeats = append(csSeats, &clientStateSeat{
			Seat:        seat,
			IsConnected: seat.IsBot || connected[seat.PlayerID],
		})
	}

	for _, client := range d.Clients() {
		client.Send(&Response{Key: "clientState", Data: csSeats})
	}
}
