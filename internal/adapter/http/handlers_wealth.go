package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"dashboard/internal/domain"
)

func (s *Server) handleWealthEntries(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 50)
	entries, err := s.wealth.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (s *Server) handleWealthSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := s.wealth.Snapshots(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": snapshots})
}

func (s *Server) handleWealthAddEntry(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	occurredOn, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}
	id, err := s.wealth.AddEntry(r.Context(), domain.FinancialEntry{
		OccurredOn:  occurredOn,
		Amount:      body.Amount,
		Category:    body.Category,
		Description: body.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// handleWealthImport accepts a bank statement CSV as multipart form data
// under the "file" field and bulk-inserts the rows it can parse.
func (s *Server) handleWealthImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("expected multipart form"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("file field is required"))
		return
	}
	defer file.Close() //nolint:errcheck

	result, err := s.wealth.ImportCSV(r.Context(), file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
