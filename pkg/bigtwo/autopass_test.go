package bigtwo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAutoPassTimer_Expired(t *testing.T) {
	now := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	timer := &AutoPassTimer{
		ExpiresAt:  now.Add(10 * time.Second),
		ServerTime: now,
		ExemptSeat: 2,
		Sequence:   1,
	}

	assert.False(t, timer.Expired(now))
	assert.False(t, timer.Expired(now.Add(9*time.Second)))
	assert.True(t, timer.Expired(now.Add(10*time.Second)))
	assert.True(t, timer.Expired(now.Add(time.Minute)))
}

func TestCountdown(t *testing.T) {
	serverNow := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	timer := &AutoPassTimer{
		ExpiresAt:  serverNow.Add(10 * time.Second),
		ServerTime: serverNow,
		ExemptSeat: 0,
		Sequence:   3,
	}

	// local clock runs 5 minutes behind the server
	localReceipt := serverNow.Add(-5 * time.Minute)
	cd := NewCountdown(timer, localReceipt)

	assert.Equal(t, int64(3), cd.Sequence())
	assert.Equal(t, 10*time.Second, cd.Remaining(localReceipt))
	assert.Equal(t, 4*time.Second, cd.Remaining(localReceipt.Add(6*time.Second)))
	assert.False(t, cd.Expired(localReceipt.Add(9*time.Second)))
	assert.True(t, cd.Expired(localReceipt.Add(10*time.Second)))

	// never negative
	assert.Equal(t, time.Duration(0), cd.Remaining(localReceipt.Add(time.Hour)))
}

// a client with a fast clock still renders the same countdown
func TestCountdown_fastLocalClock(t *testing.T) {
	serverNow := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	timer := &AutoPassTimer{
		ExpiresAt:  serverNow.Add(10 * time.Second),
		ServerTime: serverNow,
	}

	localReceipt := serverNow.Add(2 * time.Hour)
	cd := NewCountdown(timer, localReceipt)

	assert.Equal(t, 10*time.Second, cd.Remaining(localReceipt))
	assert.True(t, cd.Expired(localReceipt.Add(10*time.Second)))
}
