package bot

import (
	"context"
	"testing"

	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/dispatch"
	"bigtwo-server/pkg/match"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCoordinator(t *testing.T, round *bigtwo.Round) (*Coordinator, match.Store, *dispatch.Dispatcher) {
	t.Helper()

	store := match.NewMemoryStore()
	_, err := store.CreateRound(context.Background(), "room-1", round)
	require.NoError(t, err)

	d := dispatch.New(store, logrus.StandardLogger())
	c := NewCoordinator(store, d, "room-1", logrus.StandardLogger())
	return c, store, d
}

func TestCoordinator_neverActsForHumans(t *testing.T) {
	ctx := context.Background()
	r := testBotRound(t, "3d,5c,9h", "4d,7c,7h,12s", "4c,8c,11h", "4h,8d,12h")
	c, _, _ := testCoordinator(t, r)
	c.Seat(1, NewShark())

	// seat 0 is human and holds the turn
	acted, err := c.Act(ctx)
	require.NoError(t, err)
	assert.False(t, acted)
}

func TestCoordinator_actsInTurn(t *testing.T) {
	ctx := context.Background()
	r := testBotRound(t, "3d,5c,9h", "4d,7c,7h,12s", "4c,8c,11h", "4h,8d,12h")
	c, store, d := testCoordinator(t, r)
	c.Seat(1, NewShark())

	_, err := d.Dispatch(ctx, dispatch.Request{
		RoomUUID: "room-1",
		Seat:     0,
		Action:   dispatch.ActionPlay,
		Cards:    []string{"9h"},
	})
	require.NoError(t, err)

	acted, err := c.Act(ctx)
	require.NoError(t, err)
	assert.True(t, acted)

	rec, err := store.GetRound(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Round.CurrentTurn)
	require.NotNil(t, rec.Round.Last)
	assert.Equal(t, 1, rec.Round.Last.Seat)

	// seat 2 is human again
	acted, err = c.Act(ctx)
	require.NoError(t, err)
	assert.False(t, acted)
}

func TestCoordinator_playsRoundToCompletion(t *testing.T) {
	ctx := context.Background()
	r := bigtwo.NewRound(11)
	c, store, _ := testCoordinator(t, r)
	for seat := 0; seat < bigtwo.NumSeats; seat++ {
		c.Seat(seat, NewShark())
	}

	for i := 0; i < 1000; i++ {
		acted, err := c.Act(ctx)
		require.NoError(t, err)
		if !acted {
			break
		}
	}

	rec, err := store.GetRound(ctx, "room-1")
	require.NoError(t, err)
	assert.True(t, rec.Round.IsOver())
	assert.GreaterOrEqual(t, rec.Round.Winner, 0)
}
