package domain

import (
	"context"
	"time"
)

// Relationship tracks when a person was last interacted with.
type Relationship struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	LastInteraction time.Time `json:"lastInteraction"`
}

// RelationshipRepository is the port for relationship persistence.
type RelationshipRepository interface {
	AddRelationship(ctx context.Context, name string, lastInteraction time.Time) (int64, error)
	UpdateLastInteraction(ctx context.Context, id int64, at time.Time) error
	DeleteRelationship(ctx context.Context, id int64) error
	ListRelationships(ctx context.Context) ([]Relationship, error)
}
