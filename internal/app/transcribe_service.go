package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"dashboard/internal/adapter/storage"
	"dashboard/internal/domain"
	"dashboard/internal/events"
	"dashboard/internal/transcribe"
)

// ResourceRecordings is the live-subscription topic for recording changes.
const ResourceRecordings = "recordings"

// TranscribeService turns uploaded voice notes into stored recordings with
// transcripts.
type TranscribeService struct {
	repo        domain.RecordingRepository
	files       storage.FileStore
	transcriber transcribe.Transcriber
	hub         *events.Hub
}

// NewTranscribeService creates a TranscribeService.
func NewTranscribeService(repo domain.RecordingRepository, files storage.FileStore, t transcribe.Transcriber, hub *events.Hub) *TranscribeService {
	return &TranscribeService{repo: repo, files: files, transcriber: t, hub: hub}
}

// CreateRecording stores the audio blob, transcribes it and persists the
// recording. A transcription failure persists nothing; the provider error
// is returned for inline display.
func (s *TranscribeService) CreateRecording(ctx context.Context, userID int64, filename string, audio io.Reader) (*domain.Recording, error) {
	// The audio is read twice (transcription, then storage), so buffer it.
	data, err := io.ReadAll(audio)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty audio upload", ErrValidation)
	}

	transcript, err := s.transcriber.Transcribe(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	audioURL, err := s.files.Save(filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store audio: %w", err)
	}

	rec := domain.Recording{
		UserID:     userID,
		CreatedAt:  time.Now(),
		AudioURL:   audioURL,
		Transcript: transcript,
	}
	rec.ID, err = s.repo.AddRecording(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(ResourceRecordings)
	return &rec, nil
}

// List returns the user's recordings, newest first.
func (s *TranscribeService) List(ctx context.Context, userID int64, limit int) ([]domain.Recording, error) {
	return s.repo.ListRecordings(ctx, userID, limit)
}
