package domain

import (
	"context"
	"time"
)

// Streak is one completed (start, end) interval in a habit's history.
type Streak struct {
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
}

// Habit represents a tracked habit with its current streak and past attempts.
type Habit struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Purpose   string    `json:"purpose"`
	StartedAt time.Time `json:"startedAt"`
	History   []Streak  `json:"history"`
}

// HabitRepository is the port for habit persistence.
type HabitRepository interface {
	AddHabit(ctx context.Context, name, purpose string, startedAt time.Time) (int64, error)
	GetHabit(ctx context.Context, id int64) (*Habit, error)
	RestartHabit(ctx context.Context, id int64, startedAt time.Time, history []Streak) error
	DeleteHabit(ctx context.Context, id int64) error
	ListHabits(ctx context.Context) ([]Habit, error)
}
