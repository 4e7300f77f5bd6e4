package match

import (
	"context"
	"time"

	"bigtwo-server/internal/util"
	"bigtwo-server/pkg/db"
)

const playerColumns = `
players.id,
players.display_name,
players.created`

// Player is a record in the `players` table.
// Players are guests identified only by a session token; there is no account
// to register or verify.
type Player struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"displayName"`
	Created     time.Time `json:"created"`
}

func getPlayerByRow(row db.Scanner) (*Player, error) {
	var player Player
	if err := row.Scan(&player.ID, &player.DisplayName, &player.Created); err != nil {
		return nil, err
	}

	return &player, nil
}

// LastPlayerCreatedAt returns the time the last player was created from the
// remote address
func LastPlayerCreatedAt(ctx context.Context, remoteAddr string) (time.Time, error) {
	const query = `
SELECT COALESCE(MAX(created), TO_TIMESTAMP(0))
FROM players
WHERE remote_addr = $1`

	var at time.Time
	if err := db.Instance().QueryRowContext(ctx, query, remoteAddr).Scan(&at); err != nil {
		return time.Time{}, err
	}

	return at, nil
}

// CreatePlayer creates a new guest player.
// An empty display name gets a generated one.
func CreatePlayer(ctx context.Context, displayName, remoteAddr string) (*Player, error) {
	if displayName == "" {
		displayName = util.GetRandomName()
	}

	const query = `
INSERT INTO players (display_name, remote_addr)
VALUES ($1, $2)
RETURNING ` + playerColumns

	row := db.Instance().QueryRowContext(ctx, query, displayName, remoteAddr)
	return getPlayerByRow(row)
}

// GetPlayerByID returns a player based on the ID
func GetPlayerByID(ctx context.Context, id int64) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getPlayerByRow(row)
}

// SetDisplayName updates the player's display name
func (p *Player) SetDisplayName(ctx context.Context, displayName string) error {
	const query = `
UPDATE players
SET display_name = $1
WHERE id = $2`

	if _, err := db.Instance().ExecContext(ctx, query, displayName, p.ID); err != nil {
		return err
	}

	p.DisplayName = displayName
	return nil
}
