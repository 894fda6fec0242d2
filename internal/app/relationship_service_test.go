package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

type mockRelationshipRepo struct {
	addFn    func(ctx context.Context, name string, lastInteraction time.Time) (int64, error)
	touchFn  func(ctx context.Context, id int64, at time.Time) error
	deleteFn func(ctx context.Context, id int64) error
	listFn   func(ctx context.Context) ([]domain.Relationship, error)
}

func (m *mockRelationshipRepo) AddRelationship(ctx context.Context, name string, lastInteraction time.Time) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, name, lastInteraction)
	}
	return 1, nil
}

func (m *mockRelationshipRepo) UpdateLastInteraction(ctx context.Context, id int64, at time.Time) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, id, at)
	}
	return nil
}

func (m *mockRelationshipRepo) DeleteRelationship(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRelationshipRepo) ListRelationships(ctx context.Context) ([]domain.Relationship, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestRelationshipService_Add(t *testing.T) {
	ctx := context.Background()

	var gotLast time.Time
	repo := &mockRelationshipRepo{
		addFn: func(ctx context.Context, name string, lastInteraction time.Time) (int64, error) {
			gotLast = lastInteraction
			return 1, nil
		},
	}

	svc := NewRelationshipService(repo, events.NewHub())
	if _, err := svc.Add(ctx, "Alice"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if time.Since(gotLast) > time.Minute {
		t.Errorf("expected last interaction to default to now, got %v", gotLast)
	}

	if _, err := svc.Add(ctx, "  "); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for blank name, got %v", err)
	}
}

func TestRelationshipService_Touch_RejectsFutureAndZero(t *testing.T) {
	svc := NewRelationshipService(&mockRelationshipRepo{}, events.NewHub())
	ctx := context.Background()

	if err := svc.Touch(ctx, 1, time.Time{}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero date, got %v", err)
	}
	if err := svc.Touch(ctx, 1, time.Now().Add(48*time.Hour)); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for future date, got %v", err)
	}
	if err := svc.Touch(ctx, 1, time.Now().Add(-time.Hour)); err != nil {
		t.Errorf("expected past date to pass, got %v", err)
	}
}
