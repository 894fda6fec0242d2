package adapthttp

import (
	"net/http"
	"time"

	"dashboard/internal/domain"
)

func (s *Server) handleHabitList(w http.ResponseWriter, r *http.Request) {
	habits, err := s.habits.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Streak ages are rendered server-side so they read the same everywhere.
	now := time.Now()
	items := make([]habitView, 0, len(habits))
	for _, h := range habits {
		items = append(items, habitView{
			Habit:    h,
			Duration: domain.FormatDuration(h.StartedAt, now),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

type habitView struct {
	domain.Habit
	Duration string `json:"duration"`
}

func (s *Server) handleHabitAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Purpose string `json:"purpose"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := s.habits.Add(r.Context(), body.Name, body.Purpose)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleHabitRestart(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.habits.Restart(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHabitDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.habits.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
