package room

import (
	"bigtwo-server/pkg/match"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for dispatching players to rooms
type PitBoss struct {
	store      match.Store
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new PitBoss backed by the round store
func NewPitBoss(store match.Store) *PitBoss {
	return &PitBoss{
		store:      store,
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("player", client.String()).Debug("client connected")
			dealer, found := p.dealers[client.room.UUID]
			if !found {
				dealer = NewDealer(p, client.room, p.store)
				dealer.StartShift()
				p.dealers[client.room.UUID] = dealer
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("player", client.String()).Debug("client disconnected")
			dealer, found := p.dealers[client.room.UUID]
			if !found {
				logrus.WithField("uuid", client.room.UUID).WithField("type", "exception").Error("room not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(p.dealers, client.room.UUID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
