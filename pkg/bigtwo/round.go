package bigtwo

import (
	"encoding/json"
	"sort"
	"time"

	"bigtwo-server/pkg/deck"
)

// NumSeats is the fixed seat count; turn order is anticlockwise 0→1→2→3→0
const NumSeats = 4

// cardsPerSeat is the deal size for a 52-card, four-seat round
const cardsPerSeat = 13

// LastPlay records the most recently accepted play
type LastPlay struct {
	Seat        int
	Combination *Combination
}

// MarshalJSON encodes the seat, kind, and cards
func (lp *LastPlay) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Seat  int          `json:"seat"`
		Kind  Kind         `json:"kind"`
		Cards []*deck.Card `json:"cards"`
	}{
		Seat:  lp.Seat,
		Kind:  lp.Combination.Kind,
		Cards: lp.Combination.Cards,
	})
}

// UnmarshalJSON decodes a LastPlay, reclassifying the cards so the derived
// comparison keys survive a round trip through storage
func (lp *LastPlay) UnmarshalJSON(b []byte) error {
	var raw struct {
		Seat  int          `json:"seat"`
		Cards []*deck.Card `json:"cards"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	comb, err := Classify(raw.Cards)
	if err != nil {
		return err
	}

	lp.Seat = raw.Seat
	lp.Combination = comb
	return nil
}

// Round is the authoritative turn/trick record for one deal-to-empty-hand
// cycle. Fields are exported so a round survives a trip through the persisted
// store; all mutation goes through Play, Pass, and AutoPass.
type Round struct {
	// Hands holds each seat's cards, ascending. A hand is mutated only by
	// that seat's own accepted play.
	Hands [NumSeats]deck.Hand `json:"hands"`
	// CurrentTurn is the seat that may act
	CurrentTurn int `json:"currentTurn"`
	// PassCount is the consecutive passes since the last accepted play
	PassCount int `json:"passCount"`
	// Last is the play on the table, nil when a seat is leading
	Last *LastPlay `json:"lastPlay"`
	// Timer is the active auto-pass countdown, if any
	Timer *AutoPassTimer `json:"timer"`
	// TimerSeq is the monotonically increasing timer sequence source
	TimerSeq int64 `json:"timerSeq"`
	// TurnSeq increments on every accepted action
	TurnSeq int64 `json:"turnSeq"`
	// Out is every card no longer in circulation
	Out CardSet `json:"out"`
	// PlayCount is the number of accepted plays this round
	PlayCount int `json:"playCount"`
	// LastPlaySeat is where the lead returns when a trick clears
	LastPlaySeat int `json:"lastPlaySeat"`
	// Winner is the seat that emptied its hand, or -1 while the round is live
	Winner int `json:"winner"`
	// AutoPassDelay overrides DefaultAutoPassDelay when non-zero
	AutoPassDelay time.Duration `json:"autoPassDelay,omitempty"`
	// Seed is the shuffle seed the round was dealt from
	Seed int64 `json:"seed"`
}

// NewRound deals a fresh round from the given shuffle seed.
// The holder of the three of diamonds, the lowest card of the starting suit,
// leads the first trick.
func NewRound(seed int64) *Round {
	d := deck.New()
	d.Shuffle(seed)

	var hands [NumSeats]deck.Hand
	for i := 0; i < cardsPerSeat; i++ {
		for seat := 0; seat < NumSeats; seat++ {
			card, err := d.Draw()
			if err != nil {
				panic(err)
			}

			hands[seat].AddCard(card)
		}
	}

	for seat := range hands {
		sort.Sort(hands[seat])
	}

	return newRound(hands, d.Seed())
}

// NewRoundFromHands builds a round from explicit hands.
// Intended for tests and for replaying persisted deals.
func NewRoundFromHands(hands [NumSeats]deck.Hand) *Round {
	for seat := range hands {
		sort.Sort(hands[seat])
	}

	return newRound(hands, 0)
}

func newRound(hands [NumSeats]deck.Hand, seed int64) *Round {
	return &Round{
		Hands:        hands,
		CurrentTurn:  startingSeat(hands),
		Last:         nil,
		Out:          NewCardSet(),
		Winner:       -1,
		LastPlaySeat: -1,
		Seed:         seed,
	}
}

// startingSeat returns the seat holding the three of diamonds
func startingSeat(hands [NumSeats]deck.Hand) int {
	lowest := &deck.Card{Rank: deck.LowRank, Suit: deck.Diamonds}
	for seat, hand := range hands {
		if hand.HasCard(lowest) {
			return seat
		}
	}

	panic("no seat holds the three of diamonds")
}

func nextSeat(seat int) int {
	return (seat + 1) % NumSeats
}

// IsLeading returns true if the current seat acts with nothing to beat
func (r *Round) IsLeading() bool {
	return r.Last == nil
}

// IsOver returns true once a seat has emptied its hand
func (r *Round) IsOver() bool {
	return r.Winner >= 0
}

func (r *Round) autoPassDelay() time.Duration {
	if r.AutoPassDelay > 0 {
		return r.AutoPassDelay
	}

	return DefaultAutoPassDelay
}

// RequiredDefensiveFor returns the single the seat would be forced to play
// under the one-card-left rule, or nil if the rule does not bind.
// The rule is off on the opening lead of the round; it is on for a seat
// leading after a trick clear.
func (r *Round) RequiredDefensiveFor(seat int) *deck.Card {
	if len(r.Hands[nextSeat(seat)]) != 1 {
		return nil
	}

	if r.Last == nil && r.PlayCount == 0 {
		return nil
	}

	return RequiredDefensiveSingle(r.Hands[seat], r.Last)
}

// Play applies a play for the seat.
// On success the play becomes the table's LastPlay, the pass count resets,
// the turn advances, any active timer is invalidated, and a fresh timer is
// created if the play is provably unbeatable. Failed plays mutate nothing.
func (r *Round) Play(seat int, cards []*deck.Card, now time.Time) error {
	if r.IsOver() {
		return ErrRoundOver
	}

	if seat != r.CurrentTurn {
		return ErrNotYourTurn
	}

	seen := NewCardSet()
	for _, card := range cards {
		if seen.Has(card) || !r.Hands[seat].HasCard(card) {
			return ErrCardNotInHand
		}

		seen.Add(card)
	}

	comb, err := Classify(cards)
	if err != nil {
		return err
	}

	if required := r.RequiredDefensiveFor(seat); required != nil {
		if comb.Kind != KindSingle || !comb.top.Equal(required) {
			return DefensiveSingleError{Card: required}
		}
	}

	if r.Last != nil && Compare(comb, r.Last.Combination) != Beats {
		return ErrMustBeatLastPlay
	}

	// the play itself is the candidate under test, so it must be checked
	// before its cards join the out-set
	unbeatable := IsUnbeatable(comb, r.Out)

	for _, card := range comb.Cards {
		if !r.Hands[seat].Discard(card) {
			return ErrInvariantViolation
		}
	}

	r.Out.Add(comb.Cards...)
	r.Last = &LastPlay{Seat: seat, Combination: comb}
	r.PassCount = 0
	r.PlayCount++
	r.LastPlaySeat = seat
	r.TurnSeq++
	r.Timer = nil

	if len(r.Hands[seat]) == 0 {
		r.Winner = seat
		return nil
	}

	r.CurrentTurn = nextSeat(seat)

	if unbeatable {
		r.TimerSeq++
		r.Timer = &AutoPassTimer{
			ExpiresAt:  now.Add(r.autoPassDelay()),
			ServerTime: now,
			ExemptSeat: seat,
			Sequence:   r.TimerSeq,
		}
	}

	return nil
}

// Pass applies a manual pass for the seat.
// A leading seat can never pass; a pass that the one-card-left rule forbids is
// rejected naming the required card. An accepted pass invalidates any active
// auto-pass timer.
func (r *Round) Pass(seat int) error {
	if r.IsOver() {
		return ErrRoundOver
	}

	if seat != r.CurrentTurn {
		return ErrNotYourTurn
	}

	if r.Last == nil {
		return ErrCannotPassWhileLeading
	}

	if required := r.RequiredDefensiveFor(seat); required != nil {
		return DefensiveSingleError{Card: required}
	}

	r.Timer = nil
	r.applyPass(seat)
	return nil
}

// AutoPass applies one tagged pass from an auto-pass batch.
//
// The batch is submitted sequentially, so by the time a request lands the
// turn has advanced past the seat it was minted for; the pass therefore
// applies to whichever seat currently holds the turn and the turn-ownership
// check is skipped. Every other legality check still applies.
//
// A batch that raced the trick clear it caused is absorbed as a no-op: if the
// table is empty because the third pass just cleared it, the stray request
// succeeds without mutating anything rather than punishing the race.
func (r *Round) AutoPass(timerSeq int64) error {
	if r.IsOver() {
		return ErrRoundOver
	}

	if r.Timer == nil || r.Timer.Sequence != timerSeq {
		if r.Last == nil && r.PassCount == 0 && r.PlayCount > 0 {
			return nil
		}

		return ErrStaleTimerSequence
	}

	if r.Last == nil {
		// an active timer always has a play on record
		return ErrInvariantViolation
	}

	seat := r.CurrentTurn
	if seat == r.Timer.ExemptSeat {
		// the third pass clears the trick before the batch can reach the
		// exempt seat
		return ErrInvariantViolation
	}

	if required := r.RequiredDefensiveFor(seat); required != nil {
		return DefensiveSingleError{Card: required}
	}

	r.applyPass(seat)
	return nil
}

func (r *Round) applyPass(seat int) {
	r.PassCount++
	r.TurnSeq++

	if r.PassCount >= NumSeats-1 {
		// trick clears: the lead returns to the seat that made the last play
		r.Last = nil
		r.PassCount = 0
		r.CurrentTurn = r.LastPlaySeat
		r.Timer = nil
		return
	}

	r.CurrentTurn = nextSeat(seat)
}

// Scores returns per-seat penalty scores once the round is over.
// A seat scores its remaining card count, doubled at ten or more cards and
// tripled on a full untouched hand; the winner scores zero.
func (r *Round) Scores() [NumSeats]int {
	var scores [NumSeats]int
	for seat, hand := range r.Hands {
		n := len(hand)
		switch {
		case n == cardsPerSeat:
			scores[seat] = n * 3
		case n >= 10:
			scores[seat] = n * 2
		default:
			scores[seat] = n
		}
	}

	return scores
}
