package postgres

import (
	"context"
	"time"

	"dashboard/internal/domain"
)

// AddWorkout inserts a finished workout.
func (d *DB) AddWorkout(ctx context.Context, performedAt time.Time, exercises []domain.Exercise) (int64, error) {
	b, err := marshalJSON(exercises)
	if err != nil {
		return 0, err
	}
	var id int64
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO workouts(performed_at, exercises) VALUES($1, $2) RETURNING id;",
		performedAt.UTC(), b,
	).Scan(&id)
	return id, err
}

// ListWorkouts returns workouts ordered by date, newest first. A limit of
// zero or less returns all workouts.
func (d *DB) ListWorkouts(ctx context.Context, limit int) ([]domain.Workout, error) {
	query := "SELECT id, performed_at, exercises FROM workouts ORDER BY performed_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := d.sql.QueryContext(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Workout, 0)
	for rows.Next() {
		var (
			w         domain.Workout
			exercises []byte
		)
		if err := rows.Scan(&w.ID, &w.PerformedAt, &exercises); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(exercises, &w.Exercises); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
