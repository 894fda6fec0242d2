package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

// ResourceHabits is the live-subscription topic for habit changes.
const ResourceHabits = "habits"

// HabitService encapsulates habit-tracking use cases.
type HabitService struct {
	repo domain.HabitRepository
	hub  *events.Hub
}

// NewHabitService creates a HabitService backed by the given repository.
func NewHabitService(repo domain.HabitRepository, hub *events.Hub) *HabitService {
	return &HabitService{repo: repo, hub: hub}
}

// Add creates a new habit starting now. The name is required.
func (s *HabitService) Add(ctx context.Context, name, purpose string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	id, err := s.repo.AddHabit(ctx, name, purpose, time.Now())
	if err != nil {
		return 0, err
	}
	s.hub.Publish(ResourceHabits)
	return id, nil
}

// Restart closes the habit's current streak into its history and starts a
// new one from now.
func (s *HabitService) Restart(ctx context.Context, id int64) error {
	habit, err := s.repo.GetHabit(ctx, id)
	if err != nil {
		return err
	}
	if habit == nil {
		return ErrNotFound
	}

	now := time.Now()
	history := append(habit.History, domain.Streak{StartedAt: habit.StartedAt, EndedAt: now})
	if err := s.repo.RestartHabit(ctx, id, now, history); err != nil {
		return err
	}
	s.hub.Publish(ResourceHabits)
	return nil
}

// Delete removes a habit and its history.
func (s *HabitService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteHabit(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(ResourceHabits)
	return nil
}

// List returns all habits ordered by current streak start, newest first.
func (s *HabitService) List(ctx context.Context) ([]domain.Habit, error) {
	return s.repo.ListHabits(ctx)
}
