package domain

import (
	"context"
	"time"
)

// Recording is a captured voice note with its transcript. Recordings belong
// to the user who captured them and are never mutated.
type Recording struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	CreatedAt  time.Time `json:"date"`
	AudioURL   string    `json:"audioUrl"`
	Transcript string    `json:"transcript"`
}

// RecordingRepository is the port for recording persistence.
type RecordingRepository interface {
	AddRecording(ctx context.Context, rec Recording) (int64, error)
	ListRecordings(ctx context.Context, userID int64, limit int) ([]Recording, error)
}
