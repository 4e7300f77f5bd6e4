package match

import (
	"context"
	"encoding/json"
	"sync"

	"bigtwo-server/pkg/bigtwo"
)

// MemoryStore keeps rounds in memory with the same versioning semantics as
// the database-backed store. Intended for tests and local play.
type MemoryStore struct {
	mu     sync.Mutex
	rounds map[string]*memoryRecord
}

type memoryRecord struct {
	version int64
	state   []byte
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rounds: make(map[string]*memoryRecord),
	}
}

// CreateRound persists a fresh round for the room at version 1
func (s *MemoryStore) CreateRound(ctx context.Context, roomUUID string, round *bigtwo.Round) (*RoundRecord, error) {
	state, err := json.Marshal(round)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rounds[roomUUID] = &memoryRecord{version: 1, state: state}
	s.mu.Unlock()

	return &RoundRecord{
		RoomUUID: roomUUID,
		Version:  1,
		Round:    round,
	}, nil
}

// GetRound loads the room's live round
func (s *MemoryStore) GetRound(ctx context.Context, roomUUID string) (*RoundRecord, error) {
	s.mu.Lock()
	rec, ok := s.rounds[roomUUID]
	s.mu.Unlock()

	if !ok {
		return nil, ErrRoundNotFound
	}

	var round bigtwo.Round
	if err := json.Unmarshal(rec.state, &round); err != nil {
		return nil, err
	}

	return &RoundRecord{
		RoomUUID: roomUUID,
		Version:  rec.version,
		Round:    &round,
	}, nil
}

// SaveRound writes the record back if its version still matches
func (s *MemoryStore) SaveRound(ctx context.Context, rec *RoundRecord) error {
	state, err := json.Marshal(rec.Round)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rounds[rec.RoomUUID]
	if !ok || stored.version != rec.Version {
		return ErrConcurrentWriteConflict
	}

	stored.version++
	stored.state = state
	rec.Version = stored.version
	return nil
}
