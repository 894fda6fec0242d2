package domain

import (
	"context"
	"time"
)

// MeditationSession is one recorded sit. Sessions belong to a user and are
// never mutated after creation.
type MeditationSession struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Date        time.Time `json:"date"`
	DurationMin int       `json:"duration"`
	Type        string    `json:"type"`
	Notes       string    `json:"notes"`
}

// MeditationRepository is the port for meditation session persistence.
type MeditationRepository interface {
	AddSession(ctx context.Context, s MeditationSession) (int64, error)
	ListRecentSessions(ctx context.Context, userID int64, limit int) ([]MeditationSession, error)
}
