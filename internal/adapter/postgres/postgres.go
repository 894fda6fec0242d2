package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, email TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",

		"CREATE TABLE IF NOT EXISTS habits (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, purpose TEXT NOT NULL DEFAULT '', started_at TIMESTAMPTZ NOT NULL, history JSONB NOT NULL DEFAULT '[]');",
		"CREATE INDEX IF NOT EXISTS idx_habits_started_at ON habits(started_at);",

		"CREATE TABLE IF NOT EXISTS workouts (id BIGSERIAL PRIMARY KEY, performed_at TIMESTAMPTZ NOT NULL, exercises JSONB NOT NULL DEFAULT '[]');",
		"CREATE INDEX IF NOT EXISTS idx_workouts_performed_at ON workouts(performed_at);",

		"CREATE TABLE IF NOT EXISTS food_logs (id BIGSERIAL PRIMARY KEY, day TEXT NOT NULL, foods JSONB NOT NULL DEFAULT '[]');",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_food_logs_day ON food_logs(day);",

		"CREATE TABLE IF NOT EXISTS meditation_sessions (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, date TIMESTAMPTZ NOT NULL, duration_min INT NOT NULL, type TEXT NOT NULL, notes TEXT NOT NULL DEFAULT '');",
		"CREATE INDEX IF NOT EXISTS idx_meditation_sessions_user_date ON meditation_sessions(user_id, date);",

		"CREATE TABLE IF NOT EXISTS financial_entries (id BIGSERIAL PRIMARY KEY, occurred_on TIMESTAMPTZ NOT NULL, amount DOUBLE PRECISION NOT NULL, category TEXT NOT NULL CHECK(category IN ('income','expense','subscription')), description TEXT NOT NULL DEFAULT '');",
		"CREATE INDEX IF NOT EXISTS idx_financial_entries_occurred_on ON financial_entries(occurred_on);",
		"CREATE TABLE IF NOT EXISTS wealth_snapshots (id BIGSERIAL PRIMARY KEY, day TIMESTAMPTZ NOT NULL, total_wealth DOUBLE PRECISION NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_wealth_snapshots_day ON wealth_snapshots(day);",

		"CREATE TABLE IF NOT EXISTS relationships (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, last_interaction TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_relationships_last_interaction ON relationships(last_interaction);",

		"CREATE TABLE IF NOT EXISTS link_papers (id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL, url TEXT NOT NULL DEFAULT '', attachment_url TEXT NOT NULL DEFAULT '', description TEXT NOT NULL DEFAULT '', categories JSONB NOT NULL DEFAULT '[]', created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS categories (id BIGSERIAL PRIMARY KEY, name TEXT UNIQUE NOT NULL);",

		"CREATE TABLE IF NOT EXISTS recordings (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, created_at TIMESTAMPTZ NOT NULL, audio_url TEXT NOT NULL, transcript TEXT NOT NULL DEFAULT '');",
		"CREATE INDEX IF NOT EXISTS idx_recordings_user_created ON recordings(user_id, created_at);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-index violation.
func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func marshalJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	return b, nil
}

func unmarshalJSON(b []byte, v any) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}
