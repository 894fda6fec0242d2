package adapthttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dashboard/internal/app"
	"dashboard/internal/domain"
)

// handleEvents streams live snapshots of one resource over server-sent
// events. The client receives the current state immediately and a fresh
// snapshot after every mutation; reconnecting is the client's job.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("resource")
	if !knownResource(resource) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown resource %q", resource))
		return
	}

	user := userFrom(r.Context())
	if userScoped(resource) && user == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errors.New("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch, cancel := s.hub.Subscribe(resource)
	defer cancel()

	send := func() bool {
		snapshot, err := s.snapshot(r.Context(), resource, user)
		if err != nil {
			return false
		}
		payload, err := json.Marshal(snapshot)
		if err != nil {
			return false
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", resource, payload); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !send() {
		return
	}

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			if !send() {
				return
			}
		case <-keepalive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (s *Server) snapshot(ctx context.Context, resource string, user *domain.User) (any, error) {
	switch resource {
	case app.ResourceHabits:
		return s.habits.List(ctx)
	case app.ResourceWorkouts:
		return s.fitness.List(ctx, 0)
	case app.ResourceFoodLogs:
		return s.diet.ListRecent(ctx, 7)
	case app.ResourceMeditation:
		return s.meditation.ListRecent(ctx, user.ID, 20)
	case app.ResourceWealth:
		return s.wealth.ListRecent(ctx, 50)
	case app.ResourceRelationships:
		return s.relationships.List(ctx)
	case app.ResourceLinkPapers:
		return s.library.ListLinkPapers(ctx, "")
	case app.ResourceCategories:
		return s.library.ListCategories(ctx)
	case app.ResourceRecordings:
		return s.transcribe.List(ctx, user.ID, 20)
	}
	return nil, fmt.Errorf("unknown resource %q", resource)
}

func knownResource(resource string) bool {
	switch resource {
	case app.ResourceHabits, app.ResourceWorkouts, app.ResourceFoodLogs,
		app.ResourceMeditation, app.ResourceWealth, app.ResourceRelationships,
		app.ResourceLinkPapers, app.ResourceCategories, app.ResourceRecordings:
		return true
	}
	return false
}

func userScoped(resource string) bool {
	return resource == app.ResourceMeditation || resource == app.ResourceRecordings
}
