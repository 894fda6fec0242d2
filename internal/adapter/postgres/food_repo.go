package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dashboard/internal/domain"
)

// CreateDayLog inserts the food log for a day. The unique index on day turns
// a create race into domain.ErrDuplicateDay.
func (d *DB) CreateDayLog(ctx context.Context, day string, foods []domain.Food) (int64, error) {
	b, err := marshalJSON(foods)
	if err != nil {
		return 0, err
	}
	var id int64
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO food_logs(day, foods) VALUES($1, $2) RETURNING id;",
		day, b,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateDay
		}
		return 0, err
	}
	return id, nil
}

// GetDayLog returns the log for a day, or nil if none exists.
func (d *DB) GetDayLog(ctx context.Context, day string) (*domain.FoodLog, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, day, foods FROM food_logs WHERE day=$1;", day)

	var (
		log   domain.FoodLog
		foods []byte
	)
	if err := row.Scan(&log.ID, &log.Day, &foods); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := unmarshalJSON(foods, &log.Foods); err != nil {
		return nil, err
	}
	return &log, nil
}

// AppendFood appends one food item to an existing day log.
func (d *DB) AppendFood(ctx context.Context, logID int64, f domain.Food) error {
	b, err := marshalJSON(f)
	if err != nil {
		return err
	}
	res, err := d.sql.ExecContext(ctx,
		"UPDATE food_logs SET foods = foods || $1::jsonb WHERE id=$2;", b, logID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("food log %d not found", logID)
	}
	return nil
}

// RemoveFood removes one food item from a day log by its item id.
func (d *DB) RemoveFood(ctx context.Context, logID, foodID int64) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var raw []byte
	if err := tx.QueryRowContext(ctx,
		"SELECT foods FROM food_logs WHERE id=$1 FOR UPDATE;", logID,
	).Scan(&raw); err != nil {
		return err
	}

	var foods []domain.Food
	if err := unmarshalJSON(raw, &foods); err != nil {
		return err
	}
	kept := make([]domain.Food, 0, len(foods))
	for _, f := range foods {
		if f.ID != foodID {
			kept = append(kept, f)
		}
	}

	b, err := marshalJSON(kept)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE food_logs SET foods=$1 WHERE id=$2;", b, logID); err != nil {
		return err
	}
	return tx.Commit()
}

// ListRecentDayLogs returns day logs ordered by day, newest first. A limit
// of zero or less returns all logs.
func (d *DB) ListRecentDayLogs(ctx context.Context, limit int) ([]domain.FoodLog, error) {
	query := "SELECT id, day, foods FROM food_logs ORDER BY day DESC"
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

	out := make([]domain.FoodLog, 0)
	for rows.Next() {
		var (
			log   domain.FoodLog
			foods []byte
		)
		if err := rows.Scan(&log.ID, &log.Day, &foods); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(foods, &log.Foods); err != nil {
			return nil, err
		}
		out = append(out, log)
	}
	return out, rows.Err()
}
