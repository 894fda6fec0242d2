package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dashboard/internal/domain"
)

func (s *Server) handleDietDay(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	log, totals, err := s.diet.LogForDay(r.Context(), day)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"log": log, "totals": totals})
}

func (s *Server) handleDietRecent(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 7)
	logs, err := s.diet.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": logs})
}

func (s *Server) handleDietAddFood(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	var body struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	log, err := s.diet.AddFood(r.Context(), day, domain.Food{
		Name:     body.Name,
		Calories: body.Calories,
		Protein:  body.Protein,
		Carbs:    body.Carbs,
		Fat:      body.Fat,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"log": log, "totals": domain.DailyTotals(log.Foods)})
}

func (s *Server) handleDietRemoveFood(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	foodID, err := idParam(r, "foodID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.diet.RemoveFood(r.Context(), day, foodID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
