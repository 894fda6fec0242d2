package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

// ResourceRelationships is the live-subscription topic for relationship changes.
const ResourceRelationships = "relationships"

// RelationshipService encapsulates relationship-tracking use cases.
type RelationshipService struct {
	repo domain.RelationshipRepository
	hub  *events.Hub
}

// NewRelationshipService creates a RelationshipService backed by the given repository.
func NewRelationshipService(repo domain.RelationshipRepository, hub *events.Hub) *RelationshipService {
	return &RelationshipService{repo: repo, hub: hub}
}

// Add creates a relationship with the last interaction set to now.
func (s *RelationshipService) Add(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	id, err := s.repo.AddRelationship(ctx, name, time.Now())
	if err != nil {
		return 0, err
	}
	s.hub.Publish(ResourceRelationships)
	return id, nil
}

// Touch updates the last interaction date. Future interaction dates are
// rejected; the latest allowed value is now.
func (s *RelationshipService) Touch(ctx context.Context, id int64, at time.Time) error {
	if at.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if at.After(time.Now()) {
		return fmt.Errorf("%w: last interaction cannot be in the future", ErrValidation)
	}
	if err := s.repo.UpdateLastInteraction(ctx, id, at); err != nil {
		return err
	}
	s.hub.Publish(ResourceRelationships)
	return nil
}

// Delete removes a relationship.
func (s *RelationshipService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRelationship(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(ResourceRelationships)
	return nil
}

// List returns relationships ordered by last interaction, newest first.
func (s *RelationshipService) List(ctx context.Context) ([]domain.Relationship, error) {
	return s.repo.ListRelationships(ctx)
}
