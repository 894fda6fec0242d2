package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"dashboard/internal/domain"
)

func (s *Server) handleRelationshipList(w http.ResponseWriter, r *http.Request) {
	rels, err := s.relationships.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	now := time.Now()
	items := make([]relationshipView, 0, len(rels))
	for _, rel := range rels {
		items = append(items, relationshipView{
			Relationship: rel,
			Recency:      domain.RecencyLabel(rel.LastInteraction, now),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

type relationshipView struct {
	domain.Relationship
	Recency string `json:"recency"`
}

func (s *Server) handleRelationshipAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := s.relationships.Add(r.Context(), body.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleRelationshipTouch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Date string `json:"date"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	at, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}
	if err := s.relationships.Touch(r.Context(), id, at); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRelationshipDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.relationships.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
