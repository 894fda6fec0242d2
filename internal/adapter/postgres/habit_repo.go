package postgres

import (
	"context"
	"database/sql"
	"time"

	"dashboard/internal/domain"
)

// AddHabit inserts a new habit with an empty streak history.
func (d *DB) AddHabit(ctx context.Context, name, purpose string, startedAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO habits(name, purpose, started_at) VALUES($1, $2, $3) RETURNING id;",
		name, purpose, startedAt.UTC(),
	).Scan(&id)
	return id, err
}

// GetHabit returns one habit, or nil if it does not exist.
func (d *DB) GetHabit(ctx context.Context, id int64) (*domain.Habit, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, name, purpose, started_at, history FROM habits WHERE id=$1;", id)

	var (
		h       domain.Habit
		history []byte
	)
	if err := row.Scan(&h.ID, &h.Name, &h.Purpose, &h.StartedAt, &history); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := unmarshalJSON(history, &h.History); err != nil {
		return nil, err
	}
	return &h, nil
}

// RestartHabit replaces a habit's current streak start and history.
func (d *DB) RestartHabit(ctx context.Context, id int64, startedAt time.Time, history []domain.Streak) error {
	b, err := marshalJSON(history)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		"UPDATE habits SET started_at=$1, history=$2 WHERE id=$3;",
		startedAt.UTC(), b, id,
	)
	return err
}

// DeleteHabit removes a habit.
func (d *DB) DeleteHabit(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM habits WHERE id=$1;", id)
	return err
}

// ListHabits returns all habits ordered by current streak start, newest first.
func (d *DB) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, purpose, started_at, history FROM habits ORDER BY started_at DESC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Habit, 0)
	for rows.Next() {
		var (
			h       domain.Habit
			history []byte
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.Purpose, &h.StartedAt, &history); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(history, &h.History); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
