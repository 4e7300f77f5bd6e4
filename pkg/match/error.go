package match

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrConcurrentWriteConflict happens when a round save loses a version race.
// The caller should reload and retry.
var ErrConcurrentWriteConflict = errors.New("round was modified by another writer")

// ErrRoundNotFound happens when a room has no live round
var ErrRoundNotFound = errors.New("no active round for the room")

// ErrRoomNotFound happens when the room does not exist
var ErrRoomNotFound = errors.New("room not found")

// ErrSeatTaken happens when a player tries to sit in an occupied seat
var ErrSeatTaken = UserError("seat is already taken")

// ErrRoomFull happens when every seat at the room is occupied
var ErrRoomFull = UserError("room is full")

// ErrInvalidPasscode happens when the room passcode does not match
var ErrInvalidPasscode = UserError("invalid room passcode")
