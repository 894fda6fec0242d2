package postgres

import (
	"context"

	"dashboard/internal/domain"
)

// AddSession inserts a meditation session.
func (d *DB) AddSession(ctx context.Context, s domain.MeditationSession) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO meditation_sessions(user_id, date, duration_min, type, notes) VALUES($1, $2, $3, $4, $5) RETURNING id;",
		s.UserID, s.Date.UTC(), s.DurationMin, s.Type, s.Notes,
	).Scan(&id)
	return id, err
}

// ListRecentSessions returns a user's sessions ordered by date, newest
// first, up to limit. A limit of zero or less returns all sessions.
func (d *DB) ListRecentSessions(ctx context.Context, userID int64, limit int) ([]domain.MeditationSession, error) {
	query := "SELECT id, user_id, date, duration_min, type, notes FROM meditation_sessions WHERE user_id=$1 ORDER BY date DESC"
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

	out := make([]domain.MeditationSession, 0)
	for rows.Next() {
		var s domain.MeditationSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.DurationMin, &s.Type, &s.Notes); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
