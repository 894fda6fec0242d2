package adapthttp

import (
	"errors"
	"net/http"

	"dashboard/internal/domain"
)

func (s *Server) handleWorkoutList(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 20)
	workouts, err := s.fitness.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": workouts})
}

func (s *Server) handleWorkoutFinish(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Exercises []domain.Exercise `json:"exercises"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := s.fitness.FinishWorkout(r.Context(), body.Exercises)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleWorkoutProgress(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeError(w, http.StatusBadRequest, errors.New("exercise is required"))
		return
	}
	points, err := s.fitness.Progress(r.Context(), exercise)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercise": exercise, "points": points})
}
