package domain

import "testing"

func TestDailyTotals(t *testing.T) {
	foods := []Food{
		{Name: "oats", Calories: 300, Protein: 10, Carbs: 50, Fat: 5},
		{Name: "eggs", Calories: 150, Protein: 12, Carbs: 1, Fat: 10},
		{Name: "banana", Calories: 100, Protein: 1, Carbs: 27, Fat: 0},
	}

	got := DailyTotals(foods)
	want := MacroTotals{Calories: 550, Protein: 23, Carbs: 78, Fat: 15}
	if got != want {
		t.Errorf("DailyTotals: got %+v, want %+v", got, want)
	}
}

func TestDailyTotalsEmpty(t *testing.T) {
	if got := DailyTotals(nil); got != (MacroTotals{}) {
		t.Errorf("expected zero totals for empty list, got %+v", got)
	}
}
