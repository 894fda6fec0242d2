package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

// ResourceWorkouts is the live-subscription topic for workout changes.
const ResourceWorkouts = "workouts"

// FitnessService encapsulates workout-tracking use cases.
type FitnessService struct {
	repo domain.WorkoutRepository
	hub  *events.Hub
}

// NewFitnessService creates a FitnessService backed by the given repository.
func NewFitnessService(repo domain.WorkoutRepository, hub *events.Hub) *FitnessService {
	return &FitnessService{repo: repo, hub: hub}
}

// FinishWorkout records a completed workout. At least one exercise is
// required, every exercise needs a name, and sets must have positive reps.
func (s *FitnessService) FinishWorkout(ctx context.Context, exercises []domain.Exercise) (int64, error) {
	if len(exercises) == 0 {
		return 0, fmt.Errorf("%w: workout needs at least one exercise", ErrValidation)
	}
	for _, ex := range exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return 0, fmt.Errorf("%w: exercise name is required", ErrValidation)
		}
		for _, set := range ex.Sets {
			if set.Reps <= 0 || set.Weight < 0 {
				return 0, fmt.Errorf("%w: sets need positive reps and non-negative weight", ErrValidation)
			}
		}
	}

	id, err := s.repo.AddWorkout(ctx, time.Now(), exercises)
	if err != nil {
		return 0, err
	}
	s.hub.Publish(ResourceWorkouts)
	return id, nil
}

// List returns recorded workouts, newest first.
func (s *FitnessService) List(ctx context.Context, limit int) ([]domain.Workout, error) {
	return s.repo.ListWorkouts(ctx, limit)
}

// Progress derives the chart series for one exercise across all workouts.
func (s *FitnessService) Progress(ctx context.Context, exercise string) ([]domain.ProgressPoint, error) {
	if strings.TrimSpace(exercise) == "" {
		return nil, fmt.Errorf("%w: exercise is required", ErrValidation)
	}
	workouts, err := s.repo.ListWorkouts(ctx, 0)
	if err != nil {
		return nil, err
	}
	return domain.ExerciseProgress(workouts, exercise), nil
}
