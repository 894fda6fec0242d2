package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

// ResourceFoodLogs is the live-subscription topic for food log changes.
const ResourceFoodLogs = "foodlogs"

// DietService encapsulates food-logging use cases. At most one log exists
// per calendar day; the store enforces this with a unique index.
type DietService struct {
	repo domain.FoodLogRepository
	hub  *events.Hub
}

// NewDietService creates a DietService backed by the given repository.
func NewDietService(repo domain.FoodLogRepository, hub *events.Hub) *DietService {
	return &DietService{repo: repo, hub: hub}
}

// AddFood logs a food item under the given day, creating the day's log if it
// does not exist yet. A lost create race is retried once as an append to the
// winning log.
func (s *DietService) AddFood(ctx context.Context, day string, f domain.Food) (*domain.FoodLog, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, fmt.Errorf("%w: food name is required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return nil, fmt.Errorf("%w: day must be YYYY-MM-DD", ErrValidation)
	}
	f.ID = time.Now().UnixMilli()

	log, err := s.repo.GetDayLog(ctx, day)
	if err != nil {
		return nil, err
	}

	if log == nil {
		if _, err := s.repo.CreateDayLog(ctx, day, []domain.Food{f}); err != nil {
			if !errors.Is(err, domain.ErrDuplicateDay) {
				return nil, err
			}
			// Another writer created the day first; append to theirs.
			if log, err = s.repo.GetDayLog(ctx, day); err != nil {
				return nil, err
			}
			if log == nil {
				return nil, domain.ErrDuplicateDay
			}
			if err := s.repo.AppendFood(ctx, log.ID, f); err != nil {
				return nil, err
			}
		}
	} else {
		if err := s.repo.AppendFood(ctx, log.ID, f); err != nil {
			return nil, err
		}
	}

	s.hub.Publish(ResourceFoodLogs)

	fresh, err := s.repo.GetDayLog(ctx, day)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		// The log vanished between the write and the re-read.
		return nil, ErrNotFound
	}
	return fresh, nil
}

// RemoveFood deletes one food item from a day's log.
func (s *DietService) RemoveFood(ctx context.Context, day string, foodID int64) error {
	log, err := s.repo.GetDayLog(ctx, day)
	if err != nil {
		return err
	}
	if log == nil {
		return ErrNotFound
	}
	if err := s.repo.RemoveFood(ctx, log.ID, foodID); err != nil {
		return err
	}
	s.hub.Publish(ResourceFoodLogs)
	return nil
}

// LogForDay returns the food log for a day together with its macro totals.
// A day with no log yields an empty log with zero totals.
func (s *DietService) LogForDay(ctx context.Context, day string) (*domain.FoodLog, domain.MacroTotals, error) {
	log, err := s.repo.GetDayLog(ctx, day)
	if err != nil {
		return nil, domain.MacroTotals{}, err
	}
	if log == nil {
		log = &domain.FoodLog{Day: day, Foods: []domain.Food{}}
	}
	return log, domain.DailyTotals(log.Foods), nil
}

// ListRecent returns the most recent day logs, newest first.
func (s *DietService) ListRecent(ctx context.Context, limit int) ([]domain.FoodLog, error) {
	return s.repo.ListRecentDayLogs(ctx, limit)
}
