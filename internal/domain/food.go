package domain

import (
	"context"
	"errors"
)

// ErrDuplicateDay indicates a food log already exists for the calendar day.
var ErrDuplicateDay = errors.New("food log already exists for day")

// Food is a single logged food item with its macros.
type Food struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodLog is the single food log for one calendar day ("2006-01-02").
type FoodLog struct {
	ID    int64  `json:"id"`
	Day   string `json:"day"`
	Foods []Food `json:"foods"`
}

// MacroTotals is the field-wise sum over a day's foods.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyTotals sums macros over a list of foods.
func DailyTotals(foods []Food) MacroTotals {
	var t MacroTotals
	for _, f := range foods {
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fat += f.Fat
	}
	return t
}

// FoodLogRepository is the port for food log persistence. CreateDayLog must
// enforce at most one log per day and return ErrDuplicateDay on violation.
type FoodLogRepository interface {
	CreateDayLog(ctx context.Context, day string, foods []Food) (int64, error)
	GetDayLog(ctx context.Context, day string) (*FoodLog, error)
	AppendFood(ctx context.Context, logID int64, f Food) error
	RemoveFood(ctx context.Context, logID, foodID int64) error
	ListRecentDayLogs(ctx context.Context, limit int) ([]FoodLog, error)
}
