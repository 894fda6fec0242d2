package app

import (
	"context"
	"errors"
	"testing"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

type mockFoodLogRepo struct {
	createFn func(ctx context.Context, day string, foods []domain.Food) (int64, error)
	getFn    func(ctx context.Context, day string) (*domain.FoodLog, error)
	appendFn func(ctx context.Context, logID int64, f domain.Food) error
	removeFn func(ctx context.Context, logID, foodID int64) error
	listFn   func(ctx context.Context, limit int) ([]domain.FoodLog, error)
}

func (m *mockFoodLogRepo) CreateDayLog(ctx context.Context, day string, foods []domain.Food) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, day, foods)
	}
	return 1, nil
}

func (m *mockFoodLogRepo) GetDayLog(ctx context.Context, day string) (*domain.FoodLog, error) {
	if m.getFn != nil {
		return m.getFn(ctx, day)
	}
	return nil, nil
}

func (m *mockFoodLogRepo) AppendFood(ctx context.Context, logID int64, f domain.Food) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, logID, f)
	}
	return nil
}

func (m *mockFoodLogRepo) RemoveFood(ctx context.Context, logID, foodID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, logID, foodID)
	}
	return nil
}

func (m *mockFoodLogRepo) ListRecentDayLogs(ctx context.Context, limit int) ([]domain.FoodLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func TestDietService_AddFood_Validation(t *testing.T) {
	svc := NewDietService(&mockFoodLogRepo{}, events.NewHub())
	ctx := context.Background()

	_, err := svc.AddFood(ctx, "2026-03-01", domain.Food{Name: "  "})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}

	_, err = svc.AddFood(ctx, "March 1st", domain.Food{Name: "oats"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for bad day, got %v", err)
	}
}

func TestDietService_AddFood_CreatesFirstLog(t *testing.T) {
	ctx := context.Background()

	created := false
	var call int
	repo := &mockFoodLogRepo{
		getFn: func(ctx context.Context, day string) (*domain.FoodLog, error) {
			call++
			if call == 1 {
				return nil, nil
			}
			return &domain.FoodLog{ID: 1, Day: day, Foods: []domain.Food{{Name: "oats"}}}, nil
		},
		createFn: func(ctx context.Context, day string, foods []domain.Food) (int64, error) {
			created = true
			if len(foods) != 1 || foods[0].Name != "oats" {
				t.Errorf("expected seeded foods, got %+v", foods)
			}
			if foods[0].ID == 0 {
				t.Error("expected assigned food ID")
			}
			return 1, nil
		},
	}

	svc := NewDietService(repo, events.NewHub())
	log, err := svc.AddFood(ctx, "2026-03-01", domain.Food{Name: "oats", Calories: 300})
	if err != nil {
		t.Fatalf("AddFood: %v", err)
	}
	if !created {
		t.Error("expected day log to be created")
	}
	if log == nil || len(log.Foods) != 1 {
		t.Errorf("expected returned log with 1 food, got %+v", log)
	}
}

func TestDietService_AddFood_LostCreateRaceAppends(t *testing.T) {
	ctx := context.Background()

	appended := false
	var call int
	repo := &mockFoodLogRepo{
		getFn: func(ctx context.Context, day string) (*domain.FoodLog, error) {
			call++
			if call == 1 {
				// Nothing there when we first look.
				return nil, nil
			}
			return &domain.FoodLog{ID: 7, Day: day, Foods: []domain.Food{{Name: "theirs"}}}, nil
		},
		createFn: func(ctx context.Context, day string, foods []domain.Food) (int64, error) {
			// A concurrent writer won the create.
			return 0, domain.ErrDuplicateDay
		},
		appendFn: func(ctx context.Context, logID int64, f domain.Food) error {
			appended = true
			if logID != 7 {
				t.Errorf("expected append to winning log 7, got %d", logID)
			}
			return nil
		},
	}

	svc := NewDietService(repo, events.NewHub())
	if _, err := svc.AddFood(ctx, "2026-03-01", domain.Food{Name: "mine"}); err != nil {
		t.Fatalf("AddFood: %v", err)
	}
	if !appended {
		t.Error("expected retry to append to the winning log")
	}
}

func TestDietService_AddFood_LogVanishesBeforeReread(t *testing.T) {
	ctx := context.Background()

	var call int
	repo := &mockFoodLogRepo{
		getFn: func(ctx context.Context, day string) (*domain.FoodLog, error) {
			call++
			if call == 1 {
				return &domain.FoodLog{ID: 3, Day: day}, nil
			}
			// Concurrently deleted before the final re-read.
			return nil, nil
		},
	}

	svc := NewDietService(repo, events.NewHub())
	log, err := svc.AddFood(ctx, "2026-03-01", domain.Food{Name: "oats"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if log != nil {
		t.Errorf("expected nil log with error, got %+v", log)
	}
}

func TestDietService_RemoveFood_UnknownDay(t *testing.T) {
	svc := NewDietService(&mockFoodLogRepo{}, events.NewHub())

	err := svc.RemoveFood(context.Background(), "2026-03-01", 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDietService_LogForDay_EmptyDay(t *testing.T) {
	svc := NewDietService(&mockFoodLogRepo{}, events.NewHub())

	log, totals, err := svc.LogForDay(context.Background(), "2026-03-01")
	if err != nil {
		t.Fatalf("LogForDay: %v", err)
	}
	if log == nil || log.Day != "2026-03-01" || len(log.Foods) != 0 {
		t.Errorf("expected empty log for unknown day, got %+v", log)
	}
	if totals != (domain.MacroTotals{}) {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}
