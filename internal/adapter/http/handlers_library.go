package adapthttp

import (
	"errors"
	"net/http"
	"strings"

	"dashboard/internal/app"
	"dashboard/internal/domain"
)

func (s *Server) handleLinkPaperList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	items, err := s.library.ListLinkPapers(r.Context(), category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleLinkPaperAdd accepts multipart form data so an attachment can ride
// along with the metadata. Fields: title, url, description, categories
// (comma separated), and an optional "attachment" file.
func (s *Server) handleLinkPaperAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("expected multipart form"))
		return
	}

	lp := domain.LinkPaper{
		Title:       r.FormValue("title"),
		URL:         r.FormValue("url"),
		Description: r.FormValue("description"),
		Categories:  splitCategories(r.FormValue("categories")),
	}

	var attachment *app.Upload
	if file, header, err := r.FormFile("attachment"); err == nil {
		defer file.Close() //nolint:errcheck
		attachment = &app.Upload{Filename: header.Filename, Content: file}
	}

	id, err := s.library.AddLinkPaper(r.Context(), lp, attachment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleLinkPaperDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.library.DeleteLinkPaper(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	items, err := s.library.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleCategoryAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := s.library.AddCategory(r.Context(), body.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.library.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func splitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			categories = append(categories, name)
		}
	}
	return categories
}
