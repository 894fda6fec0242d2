package adapthttp

import (
	"net/http"
	"time"

	"dashboard/internal/domain"
)

// navItem is one tile on the home grid. The blurbs are static copy; the
// live numbers come from the aggregates below.
type navItem struct {
	Href  string `json:"href"`
	Title string `json:"title"`
	Blurb string `json:"blurb"`
}

var navItems = []navItem{
	{Href: "/habits", Title: "Habits", Blurb: "3/5 completed today"},
	{Href: "/fitness", Title: "Fitness", Blurb: "Upper body workout at 2 PM"},
	{Href: "/diet", Title: "Diet", Blurb: "1200/2000 calories consumed"},
	{Href: "/meditation", Title: "Meditation", Blurb: "15 min session completed"},
	{Href: "/wealth", Title: "Wealth", Blurb: "$500 saved this month"},
	{Href: "/relationships", Title: "Relationships", Blurb: "2 catch-ups scheduled"},
	{Href: "/transcribe", Title: "Transcribe", Blurb: "1 new note ready"},
}

// handleOverview returns the landing-page payload: the fixed route list with
// its status blurbs, the session state for the auth-aware nav bar, and the
// summary aggregates (streak ages, today's macro totals, who is overdue for
// a catch-up).
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()

	habits, err := s.habits.List(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	habitItems := make([]habitView, 0, len(habits))
	for _, h := range habits {
		habitItems = append(habitItems, habitView{
			Habit:    h,
			Duration: domain.FormatDuration(h.StartedAt, now),
		})
	}

	today := localDayString(now)
	_, totals, err := s.diet.LogForDay(ctx, today)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rels, err := s.relationships.List(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	relItems := make([]relationshipView, 0, len(rels))
	for _, rel := range rels {
		relItems = append(relItems, relationshipView{
			Relationship: rel,
			Recency:      domain.RecencyLabel(rel.LastInteraction, now),
		})
	}

	workouts, err := s.fitness.List(ctx, 1)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var lastWorkout *domain.Workout
	if len(workouts) > 0 {
		lastWorkout = &workouts[0]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"nav":           navItems,
		"authenticated": userFrom(ctx) != nil,
		"habits":        habitItems,
		"today":         today,
		"dietTotals":    totals,
		"relationships": relItems,
		"lastWorkout":   lastWorkout,
	})
}
