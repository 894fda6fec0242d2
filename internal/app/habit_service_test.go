package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

type mockHabitRepo struct {
	addFn     func(ctx context.Context, name, purpose string, startedAt time.Time) (int64, error)
	getFn     func(ctx context.Context, id int64) (*domain.Habit, error)
	restartFn func(ctx context.Context, id int64, startedAt time.Time, history []domain.Streak) error
	deleteFn  func(ctx context.Context, id int64) error
	listFn    func(ctx context.Context) ([]domain.Habit, error)
}

func (m *mockHabitRepo) AddHabit(ctx context.Context, name, purpose string, startedAt time.Time) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, name, purpose, startedAt)
	}
	return 1, nil
}

func (m *mockHabitRepo) GetHabit(ctx context.Context, id int64) (*domain.Habit, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockHabitRepo) RestartHabit(ctx context.Context, id int64, startedAt time.Time, history []domain.Streak) error {
	if m.restartFn != nil {
		return m.restartFn(ctx, id, startedAt, history)
	}
	return nil
}

func (m *mockHabitRepo) DeleteHabit(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockHabitRepo) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestHabitService_Add_RequiresName(t *testing.T) {
	svc := NewHabitService(&mockHabitRepo{}, events.NewHub())

	_, err := svc.Add(context.Background(), "   ", "purpose")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestHabitService_Add_PublishesChange(t *testing.T) {
	hub := events.NewHub()
	ch, cancel := hub.Subscribe(ResourceHabits)
	defer cancel()

	svc := NewHabitService(&mockHabitRepo{}, hub)
	if _, err := svc.Add(context.Background(), "no sugar", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	select {
	case <-ch:
	default:
		t.Error("expected a change notification after Add")
	}
}

func TestHabitService_Restart_ClosesStreak(t *testing.T) {
	ctx := context.Background()
	origin := time.Now().Add(-72 * time.Hour)

	var gotHistory []domain.Streak
	var gotStart time.Time
	repo := &mockHabitRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Habit, error) {
			return &domain.Habit{ID: id, Name: "no sugar", StartedAt: origin}, nil
		},
		restartFn: func(ctx context.Context, id int64, startedAt time.Time, history []domain.Streak) error {
			gotStart = startedAt
			gotHistory = history
			return nil
		},
	}

	svc := NewHabitService(repo, events.NewHub())
	if err := svc.Restart(ctx, 1); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	if len(gotHistory) != 1 {
		t.Fatalf("expected 1 closed streak, got %d", len(gotHistory))
	}
	if !gotHistory[0].StartedAt.Equal(origin) {
		t.Errorf("closed streak should start at the old start, got %v", gotHistory[0].StartedAt)
	}
	if !gotHistory[0].EndedAt.Equal(gotStart) {
		t.Errorf("closed streak should end where the new one begins")
	}
}

func TestHabitService_Restart_NotFound(t *testing.T) {
	svc := NewHabitService(&mockHabitRepo{}, events.NewHub())

	err := svc.Restart(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
