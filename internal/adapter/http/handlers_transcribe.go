package adapthttp

import (
	"errors"
	"net/http"
)

func (s *Server) handleRecordingList(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	limit := intQuery(r, "limit", 20)
	recs, err := s.transcribe.List(r.Context(), user.ID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": recs})
}

// handleRecordingCreate accepts an audio file under the "audio" multipart
// field, transcribes it, and stores both the file and the transcript.
func (s *Server) handleRecordingCreate(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("expected multipart form"))
		return
	}
	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("audio field is required"))
		return
	}
	defer file.Close() //nolint:errcheck

	rec, err := s.transcribe.CreateRecording(r.Context(), user.ID, header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	reply, err := s.chat.Reply(r.Context(), body.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
