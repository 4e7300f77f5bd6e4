package match

import (
	"context"
	"testing"

	"bigtwo-server/pkg/bigtwo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Store = (*MemoryStore)(nil)
var _ Store = (*PostgresStore)(nil)

func TestMemoryStore_versioning(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetRound(ctx, "room-1")
	assert.Equal(t, ErrRoundNotFound, err)

	rec, err := store.CreateRound(ctx, "room-1", bigtwo.NewRound(7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)

	loadedA, err := store.GetRound(ctx, "room-1")
	require.NoError(t, err)
	loadedB, err := store.GetRound(ctx, "room-1")
	require.NoError(t, err)

	// loads are independent copies
	loadedA.Round.TurnSeq = 99
	assert.Equal(t, int64(0), loadedB.Round.TurnSeq)

	require.NoError(t, store.SaveRound(ctx, loadedA))
	assert.Equal(t, int64(2), loadedA.Version)

	// the second writer loaded at version 1 and loses the race
	assert.Equal(t, ErrConcurrentWriteConflict, store.SaveRound(ctx, loadedB))

	reloaded, err := store.GetRound(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), reloaded.Version)
	assert.Equal(t, int64(99), reloaded.Round.TurnSeq)
}

func TestMemoryStore_createReplacesRound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec, err := store.CreateRound(ctx, "room-1", bigtwo.NewRound(1))
	require.NoError(t, err)
	require.NoError(t, store.SaveRound(ctx, rec))

	fresh, err := store.CreateRound(ctx, "room-1", bigtwo.NewRound(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.Version)

	// the stale handle from the replaced round cannot write
	assert.Equal(t, ErrConcurrentWriteConflict, store.SaveRound(ctx, rec))
}
