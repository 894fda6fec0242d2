package postgres

import (
	"context"

	"dashboard/internal/domain"
)

// AddEntry inserts one financial entry.
func (d *DB) AddEntry(ctx context.Context, e domain.FinancialEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO financial_entries(occurred_on, amount, category, description) VALUES($1, $2, $3, $4) RETURNING id;",
		e.OccurredOn.UTC(), e.Amount, e.Category, e.Description,
	).Scan(&id)
	return id, err
}

// AddEntries bulk-inserts financial entries in one transaction and returns
// the number inserted. The import is all-or-nothing.
func (d *DB) AddEntries(ctx context.Context, entries []domain.FinancialEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO financial_entries(occurred_on, amount, category, description) VALUES($1, $2, $3, $4);")
	if err != nil {
		return 0, err
	}
	defer stmt.Close() //nolint:errcheck

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.OccurredOn.UTC(), e.Amount, e.Category, e.Description); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ListRecentEntries returns entries ordered by date, newest first. A limit
// of zero or less returns all entries.
func (d *DB) ListRecentEntries(ctx context.Context, limit int) ([]domain.FinancialEntry, error) {
	query := "SELECT id, occurred_on, amount, category, description FROM financial_entries ORDER BY occurred_on DESC"
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

	out := make([]domain.FinancialEntry, 0)
	for rows.Next() {
		var e domain.FinancialEntry
		if err := rows.Scan(&e.ID, &e.OccurredOn, &e.Amount, &e.Category, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListSnapshots returns all wealth snapshots ordered by day, oldest first,
// ready for the chart series.
func (d *DB) ListSnapshots(ctx context.Context) ([]domain.WealthSnapshot, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, day, total_wealth FROM wealth_snapshots ORDER BY day ASC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WealthSnapshot, 0)
	for rows.Next() {
		var s domain.WealthSnapshot
		if err := rows.Scan(&s.ID, &s.Day, &s.TotalWealth); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
