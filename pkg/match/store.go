package match

import (
	"context"

	"bigtwo-server/pkg/bigtwo"
)

// RoundRecord is a persisted round plus its write version.
// Version increments on every successful save; a save whose version no longer
// matches the stored row fails with ErrConcurrentWriteConflict.
type RoundRecord struct {
	RoomUUID string
	Version  int64
	Round    *bigtwo.Round
}

// Store persists the live round per room.
//
// Saves are conditional on the version the record was loaded at, so two
// concurrent writers cannot both apply a move against the same round state.
type Store interface {
	// CreateRound persists a fresh round for the room at version 1,
	// replacing any previous round
	CreateRound(ctx context.Context, roomUUID string, round *bigtwo.Round) (*RoundRecord, error)
	// GetRound loads the room's live round, or ErrRoundNotFound
	GetRound(ctx context.Context, roomUUID string) (*RoundRecord, error)
	// SaveRound writes the record back if its version still matches,
	// bumping rec.Version on success; ErrConcurrentWriteConflict otherwise
	SaveRound(ctx context.Context, rec *RoundRecord) error
}
