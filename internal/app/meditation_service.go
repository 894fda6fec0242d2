package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

// ResourceMeditation is the live-subscription topic for meditation changes.
const ResourceMeditation = "meditation"

// MeditationService encapsulates meditation-tracking use cases.
type MeditationService struct {
	repo domain.MeditationRepository
	hub  *events.Hub
}

// NewMeditationService creates a MeditationService backed by the given repository.
func NewMeditationService(repo domain.MeditationRepository, hub *events.Hub) *MeditationService {
	return &MeditationService{repo: repo, hub: hub}
}

// AddSession validates and stores a meditation session for a user.
func (s *MeditationService) AddSession(ctx context.Context, userID int64, date time.Time, durationMin int, kind, notes string) (int64, error) {
	if durationMin <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if strings.TrimSpace(kind) == "" {
		return 0, fmt.Errorf("%w: type is required", ErrValidation)
	}
	if date.IsZero() {
		date = time.Now()
	}

	id, err := s.repo.AddSession(ctx, domain.MeditationSession{
		UserID:      userID,
		Date:        date,
		DurationMin: durationMin,
		Type:        kind,
		Notes:       notes,
	})
	if err != nil {
		return 0, err
	}
	s.hub.Publish(ResourceMeditation)
	return id, nil
}

// ListRecent returns the user's most recent sessions, newest first.
func (s *MeditationService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.MeditationSession, error) {
	return s.repo.ListRecentSessions(ctx, userID, limit)
}
