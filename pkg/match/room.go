package match

import (
	"context"
	"database/sql"
	"time"

	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/db"
	"bigtwo-server/pkg/token"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/synacor/argon2id"
)

const inviteCodeLength = 6

const roomColumns = `
rooms.uuid,
rooms.name,
rooms.invite_code,
rooms.passcode_hash,
rooms.host_id,
rooms.created`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// Room is a record in the `rooms` table.
// A room seats exactly four players and plays rounds back to back.
type Room struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	InviteCode string `json:"inviteCode"`
	// HostID is who created the room
	HostID       int64     `json:"hostId"`
	Created      time.Time `json:"created"`
	passcodeHash string
}

// Seat is a record in the `room_seats` table
type Seat struct {
	RoomUUID string `json:"-"`
	Seat     int    `json:"seat"`
	PlayerID int64  `json:"playerId"`
	IsBot    bool   `json:"isBot"`
	// BotTier is the bot difficulty, empty for human seats
	BotTier     string `json:"botTier,omitempty"`
	DisplayName string `json:"displayName"`
}

// CreateRoom creates a new room hosted by the player.
// An empty passcode leaves the room open to anyone with the invite code.
func (p *Player) CreateRoom(ctx context.Context, name, passcode string) (*Room, error) {
	var passcodeHash string
	if passcode != "" {
		hash, err := argon2id.DefaultHashPassword(passcode)
		if err != nil {
			return nil, err
		}

		passcodeHash = hash
	}

	inviteCode, err := token.Generate(inviteCodeLength)
	if err != nil {
		return nil, err
	}

	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	u := uuid.New().String()
	const query = `
INSERT INTO rooms (uuid, name, invite_code, passcode_hash, host_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING created`

	var created time.Time
	row := tx.QueryRowContext(ctx, query, u, name, inviteCode, passcodeHash, p.ID)
	if err := row.Scan(&created); err != nil {
		rollback(tx)
		return nil, err
	}

	const query2 = `
INSERT INTO room_seats (room_uuid, seat, player_id, is_bot)
VALUES ($1, 0, $2, false)`
	if _, err := tx.ExecContext(ctx, query2, u, p.ID); err != nil {
		rollback(tx)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &Room{
		UUID:       u,
		Name:       name,
		InviteCode: inviteCode,
		HostID:     p.ID,
		Created:    created,
	}, nil
}

func getRoomByRow(row db.Scanner) (*Room, error) {
	var r Room
	if err := row.Scan(&r.UUID, &r.Name, &r.InviteCode, &r.passcodeHash, &r.HostID, &r.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}

		return nil, err
	}

	return &r, nil
}

// GetRoomByUUID returns a room by its UUID
func GetRoomByUUID(ctx context.Context, uuid string) (*Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, uuid)
	return getRoomByRow(row)
}

// GetRoomByInviteCode returns a room by its invite code
func GetRoomByInviteCode(ctx context.Context, code string) (*Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms
WHERE invite_code = $1`

	row := db.Instance().QueryRowContext(ctx, query, code)
	return getRoomByRow(row)
}

// VerifyPasscode checks the supplied passcode against the room's hash.
// A room without a passcode accepts anything.
func (r *Room) VerifyPasscode(passcode string) error {
	if r.passcodeHash == "" {
		return nil
	}

	if err := argon2id.Compare(r.passcodeHash, passcode); err != nil {
		return ErrInvalidPasscode
	}

	return nil
}

// Join seats the player at the room.
// seat < 0 picks the first open seat.
func (r *Room) Join(ctx context.Context, p *Player, seat int) (*Seat, error) {
	seats, err := r.GetSeats(ctx)
	if err != nil {
		return nil, err
	}

	if seat < 0 {
		seat = firstOpenSeat(seats)
		if seat < 0 {
			return nil, ErrRoomFull
		}
	}

	const query = `
INSERT INTO room_seats (room_uuid, seat, player_id, is_bot)
VALUES ($1, $2, $3, false)`

	if _, err := db.Instance().ExecContext(ctx, query, r.UUID, seat, p.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqDuplicateKeyErrorCode {
			return nil, ErrSeatTaken
		}

		return nil, err
	}

	return &Seat{
		RoomUUID:    r.UUID,
		Seat:        seat,
		PlayerID:    p.ID,
		DisplayName: p.DisplayName,
	}, nil
}

// SeatBot fills the seat with a bot of the given tier
func (r *Room) SeatBot(ctx context.Context, seat int, tier string) (*Seat, error) {
	const query = `
INSERT INTO room_seats (room_uuid, seat, player_id, is_bot, bot_tier)
VALUES ($1, $2, NULL, true, $3)`

	if _, err := db.Instance().ExecContext(ctx, query, r.UUID, seat, tier); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqDuplicateKeyErrorCode {
			return nil, ErrSeatTaken
		}

		return nil, err
	}

	return &Seat{
		RoomUUID: r.UUID,
		Seat:     seat,
		IsBot:    true,
		BotTier:  tier,
	}, nil
}

// GetSeats returns the room's occupied seats in seat order
func (r *Room) GetSeats(ctx context.Context) ([]*Seat, error) {
	const query = `
SELECT room_seats.seat,
       COALESCE(room_seats.player_id, 0),
       room_seats.is_bot,
       COALESCE(room_seats.bot_tier, ''),
       COALESCE(players.display_name, '')
FROM room_seats
LEFT JOIN players ON room_seats.player_id = players.id
WHERE room_seats.room_uuid = $1
ORDER BY room_seats.seat`

	rows, err := db.Instance().QueryContext(ctx, query, r.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]*Seat, 0, bigtwo.NumSeats)
	for rows.Next() {
		s := Seat{RoomUUID: r.UUID}
		if err := rows.Scan(&s.Seat, &s.PlayerID, &s.IsBot, &s.BotTier, &s.DisplayName); err != nil {
			return nil, err
		}

		seats = append(seats, &s)
	}

	return seats, rows.Err()
}

// SeatFor returns the player's seat index at the room, or -1
func (r *Room) SeatFor(ctx context.Context, playerID int64) (int, error) {
	seats, err := r.GetSeats(ctx)
	if err != nil {
		return -1, err
	}

	for _, s := range seats {
		if !s.IsBot && s.PlayerID == playerID {
			return s.Seat, nil
		}
	}

	return -1, nil
}

func firstOpenSeat(seats []*Seat) int {
	taken := make(map[int]bool, len(seats))
	for _, s := range seats {
		taken[s.Seat] = true
	}

	for seat := 0; seat < bigtwo.NumSeats; seat++ {
		if !taken[seat] {
			return seat
		}
	}

	return -1
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
