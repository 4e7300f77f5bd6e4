package bigtwo

import (
	"time"
)

// DefaultAutoPassDelay is how long seats have to act before the auto-pass
// batch resolves an unbeatable play
const DefaultAutoPassDelay = 10 * time.Second

// AutoPassTimer is the countdown attached to a provably unbeatable play.
// The expiry is an absolute timestamp in the server's clock domain, not a
// duration, so reconnecting clients and clients with skewed clocks all render
// the same countdown. The sequence number lets in-flight resolutions detect
// that the timer they were counting down has been superseded.
type AutoPassTimer struct {
	// ExpiresAt is when the countdown ends, server clock
	ExpiresAt time.Time `json:"expiresAt"`
	// ServerTime is the server clock at timer creation; clients subtract it
	// from their local receipt time to derive a one-time clock offset
	ServerTime time.Time `json:"serverTime"`
	// ExemptSeat made the unbeatable play and is never auto-passed
	ExemptSeat int `json:"exemptSeat"`
	// Sequence increases monotonically across timer instances in a round
	Sequence int64 `json:"sequence"`
}

// Expired returns true once the countdown has elapsed in the server clock domain
func (t *AutoPassTimer) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Countdown renders an AutoPassTimer in a local clock domain.
//
// The offset is computed exactly once, from the server time stamped into the
// timer and the local time the snapshot arrived. Re-deriving the offset from
// later ticks would let network jitter walk the countdown, so Remaining never
// resynchronizes.
type Countdown struct {
	expiresAt time.Time
	offset    time.Duration
	sequence  int64
}

// NewCountdown returns a countdown for the given timer.
// localReceipt is the local clock reading when the timer was received.
func NewCountdown(timer *AutoPassTimer, localReceipt time.Time) *Countdown {
	return &Countdown{
		expiresAt: timer.ExpiresAt,
		offset:    timer.ServerTime.Sub(localReceipt),
		sequence:  timer.Sequence,
	}
}

// Sequence returns the timer sequence this countdown was created from
func (c *Countdown) Sequence() int64 {
	return c.sequence
}

// Remaining returns the time left on the countdown at the given local clock
// reading, never negative
func (c *Countdown) Remaining(localNow time.Time) time.Duration {
	remaining := c.expiresAt.Sub(localNow.Add(c.offset))
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Expired returns true once the local projection of the countdown reaches zero
func (c *Countdown) Expired(localNow time.Time) bool {
	return c.Remaining(localNow) == 0
}
