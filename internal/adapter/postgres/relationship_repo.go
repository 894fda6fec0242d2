package postgres

import (
	"context"
	"time"

	"dashboard/internal/domain"
)

// AddRelationship inserts a relationship.
func (d *DB) AddRelationship(ctx context.Context, name string, lastInteraction time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO relationships(name, last_interaction) VALUES($1, $2) RETURNING id;",
		name, lastInteraction.UTC(),
	).Scan(&id)
	return id, err
}

// UpdateLastInteraction sets the last interaction date.
func (d *DB) UpdateLastInteraction(ctx context.Context, id int64, at time.Time) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE relationships SET last_interaction=$1 WHERE id=$2;", at.UTC(), id)
	return err
}

// DeleteRelationship removes a relationship.
func (d *DB) DeleteRelationship(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM relationships WHERE id=$1;", id)
	return err
}

// ListRelationships returns relationships ordered by last interaction,
// newest first.
func (d *DB) ListRelationships(ctx context.Context) ([]domain.Relationship, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, last_interaction FROM relationships ORDER BY last_interaction DESC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Relationship, 0)
	for rows.Next() {
		var r domain.Relationship
		if err := rows.Scan(&r.ID, &r.Name, &r.LastInteraction); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
