package postgres

import (
	"context"

	"dashboard/internal/domain"
)

// AddRecording inserts a recording.
func (d *DB) AddRecording(ctx context.Context, rec domain.Recording) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO recordings(user_id, created_at, audio_url, transcript) VALUES($1, $2, $3, $4) RETURNING id;",
		rec.UserID, rec.CreatedAt.UTC(), rec.AudioURL, rec.Transcript,
	).Scan(&id)
	return id, err
}

// ListRecordings returns a user's recordings newest first, up to limit. A
// limit of zero or less returns all recordings.
func (d *DB) ListRecordings(ctx context.Context, userID int64, limit int) ([]domain.Recording, error) {
	query := "SELECT id, user_id, created_at, audio_url, transcript FROM recordings WHERE user_id=$1 ORDER BY created_at DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := d.sql.QueryContext(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Recording, 0)
	for rows.Next() {
		var rec domain.Recording
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CreatedAt, &rec.AudioURL, &rec.Transcript); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
