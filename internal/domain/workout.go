package domain

import (
	"context"
	"strconv"
	"time"
)

// ExerciseSet is one set of an exercise within a workout.
type ExerciseSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Exercise is a named exercise with its ordered sets.
type Exercise struct {
	Name string        `json:"name"`
	Sets []ExerciseSet `json:"sets"`
}

// Workout is a finished workout. Workouts are immutable once recorded.
type Workout struct {
	ID          int64      `json:"id"`
	PerformedAt time.Time  `json:"performedAt"`
	Exercises   []Exercise `json:"exercises"`
}

// WorkoutRepository is the port for workout persistence.
type WorkoutRepository interface {
	AddWorkout(ctx context.Context, performedAt time.Time, exercises []Exercise) (int64, error)
	ListWorkouts(ctx context.Context, limit int) ([]Workout, error)
}

// ProgressPoint is one chart point in an exercise progress series: the
// heaviest set and the highest rep count within a single workout.
type ProgressPoint struct {
	Label     string  `json:"label"`
	MaxWeight float64 `json:"maxWeight"`
	MaxReps   int     `json:"maxReps"`
}

// ExerciseProgress derives the chart series for one exercise name from a
// list of workouts ordered newest first. Points come out oldest first, one
// per occurrence of the exercise.
func ExerciseProgress(workouts []Workout, name string) []ProgressPoint {
	var points []ProgressPoint
	for i := len(workouts) - 1; i >= 0; i-- {
		for _, ex := range workouts[i].Exercises {
			if ex.Name != name || len(ex.Sets) == 0 {
				continue
			}
			p := ProgressPoint{}
			for _, set := range ex.Sets {
				if set.Weight > p.MaxWeight {
					p.MaxWeight = set.Weight
				}
				if set.Reps > p.MaxReps {
					p.MaxReps = set.Reps
				}
			}
			p.Label = "Workout " + strconv.Itoa(len(points)+1)
			points = append(points, p)
		}
	}
	return points
}
