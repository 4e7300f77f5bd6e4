package match

import (
	"context"
	"database/sql"
	"encoding/json"

	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/db"
)

// PostgresStore persists rounds in the `rounds` table
type PostgresStore struct{}

// NewPostgresStore returns a store backed by the shared database instance
func NewPostgresStore() *PostgresStore {
	return &PostgresStore{}
}

// CreateRound persists a fresh round for the room at version 1
func (s *PostgresStore) CreateRound(ctx context.Context, roomUUID string, round *bigtwo.Round) (*RoundRecord, error) {
	state, err := json.Marshal(round)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO rounds (room_uuid, version, state)
VALUES ($1, 1, $2)
ON CONFLICT (room_uuid) DO UPDATE
SET version = 1,
    state = EXCLUDED.state,
    updated = (NOW() AT TIME ZONE 'utc')`

	if _, err := db.Instance().ExecContext(ctx, query, roomUUID, state); err != nil {
		return nil, err
	}

	return &RoundRecord{
		RoomUUID: roomUUID,
		Version:  1,
		Round:    round,
	}, nil
}

// GetRound loads the room's live round
func (s *PostgresStore) GetRound(ctx context.Context, roomUUID string) (*RoundRecord, error) {
	const query = `
SELECT version, state
FROM rounds
WHERE room_uuid = $1`

	var version int64
	var state []byte
	row := db.Instance().QueryRowContext(ctx, query, roomUUID)
	if err := row.Scan(&version, &state); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoundNotFound
		}

		return nil, err
	}

	var round bigtwo.Round
	if err := json.Unmarshal(state, &round); err != nil {
		return nil, err
	}

	return &RoundRecord{
		RoomUUID: roomUUID,
		Version:  version,
		Round:    &round,
	}, nil
}

// SaveRound writes the record back if its version still matches
func (s *PostgresStore) SaveRound(ctx context.Context, rec *RoundRecord) error {
	state, err := json.Marshal(rec.Round)
	if err != nil {
		return err
	}

	const query = `
UPDATE rounds
SET version = version + 1,
    state = $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE room_uuid = $2
  AND version = $3`

	res, err := db.Instance().ExecContext(ctx, query, state, rec.RoomUUID, rec.Version)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrConcurrentWriteConflict
	}

	rec.Version++
	return nil
}
