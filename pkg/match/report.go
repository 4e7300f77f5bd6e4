package match

import (
	"context"
	"encoding/json"
	"time"

	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/db"
)

// Report is a record in the `round_reports` table, one per completed round
type Report struct {
	ID       int64                   `json:"id"`
	RoomUUID string                  `json:"-"`
	Winner   int                     `json:"winner"`
	Scores   [bigtwo.NumSeats]int    `json:"scores"`
	Seed     int64                   `json:"seed"`
	Created  time.Time               `json:"created"`
}

// CreateReport records the outcome of a completed round
func CreateReport(ctx context.Context, roomUUID string, round *bigtwo.Round) (*Report, error) {
	if !round.IsOver() {
		return nil, ErrRoundNotFound
	}

	scores := round.Scores()
	b, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO round_reports (room_uuid, winner, scores, seed)
VALUES ($1, $2, $3, $4)
RETURNING id, created`

	var report Report
	row := db.Instance().QueryRowContext(ctx, query, roomUUID, round.Winner, b, round.Seed)
	if err := row.Scan(&report.ID, &report.Created); err != nil {
		return nil, err
	}

	report.RoomUUID = roomUUID
	report.Winner = round.Winner
	report.Scores = scores
	report.Seed = round.Seed
	return &report, nil
}

// GetReports returns the room's completed rounds, most recent first
func GetReports(ctx context.Context, roomUUID string, limit int) ([]*Report, error) {
	const query = `
SELECT id, winner, scores, seed, created
FROM round_reports
WHERE room_uuid = $1
ORDER BY id DESC
LIMIT $2`

	rows, err := db.Instance().QueryContext(ctx, query, roomUUID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*Report, 0)
	for rows.Next() {
		report := Report{RoomUUID: roomUUID}
		var scores []byte
		if err := rows.Scan(&report.ID, &report.Winner, &scores, &report.Seed, &report.Created); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(scores, &report.Scores); err != nil {
			return nil, err
		}

		reports = append(reports, &report)
	}

	return reports, rows.Err()
}
