package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleMeditationList(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	limit := intQuery(r, "limit", 20)
	sessions, err := s.meditation.ListRecent(r.Context(), user.ID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": sessions})
}

func (s *Server) handleMeditationAdd(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	var body struct {
		Date     time.Time `json:"date"`
		Duration int       `json:"duration"`
		Type     string    `json:"type"`
		Notes    string    `json:"notes"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := s.meditation.AddSession(r.Context(), user.ID, body.Date, body.Duration, body.Type, body.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}
