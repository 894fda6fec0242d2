package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"dashboard/internal/adapter/storage"
	"dashboard/internal/domain"
	"dashboard/internal/events"
)

// Live-subscription topics for the links/papers tracker.
const (
	ResourceLinkPapers = "linkpapers"
	ResourceCategories = "categories"
)

// Upload carries an optional attachment alongside a new link/paper.
type Upload struct {
	Filename string
	Content  io.Reader
}

// LibraryService encapsulates the links-and-papers use cases.
type LibraryService struct {
	repo  domain.LibraryRepository
	files storage.FileStore
	hub   *events.Hub
}

// NewLibraryService creates a LibraryService backed by the given repository
// and file store.
func NewLibraryService(repo domain.LibraryRepository, files storage.FileStore, hub *events.Hub) *LibraryService {
	return &LibraryService{repo: repo, files: files, hub: hub}
}

// AddLinkPaper stores a link/paper, first uploading the attachment when one
// is provided. An upload failure aborts the whole operation so the caller
// can retry with the draft intact.
func (s *LibraryService) AddLinkPaper(ctx context.Context, lp domain.LinkPaper, attachment *Upload) (int64, error) {
	lp.Title = strings.TrimSpace(lp.Title)
	lp.Description = strings.TrimSpace(lp.Description)
	if lp.Title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if lp.Description == "" {
		return 0, fmt.Errorf("%w: description is required", ErrValidation)
	}

	if attachment != nil {
		url, err := s.files.Save(attachment.Filename, attachment.Content)
		if err != nil {
			return 0, fmt.Errorf("upload attachment: %w", err)
		}
		lp.AttachmentURL = url
	}
	lp.CreatedAt = time.Now()

	id, err := s.repo.AddLinkPaper(ctx, lp)
	if err != nil {
		return 0, err
	}
	s.hub.Publish(ResourceLinkPapers)
	return id, nil
}

// DeleteLinkPaper removes a link/paper.
func (s *LibraryService) DeleteLinkPaper(ctx context.Context, id int64) error {
	if err := s.repo.DeleteLinkPaper(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(ResourceLinkPapers)
	return nil
}

// ListLinkPapers returns links/papers, optionally filtered by category name.
func (s *LibraryService) ListLinkPapers(ctx context.Context, category string) ([]domain.LinkPaper, error) {
	return s.repo.ListLinkPapers(ctx, category)
}

// AddCategory creates a category. Names are unique.
func (s *LibraryService) AddCategory(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	id, err := s.repo.AddCategory(ctx, name)
	if err != nil {
		return 0, err
	}
	s.hub.Publish(ResourceCategories)
	return id, nil
}

// DeleteCategory removes a category. Links keep their category names.
func (s *LibraryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(ResourceCategories)
	return nil
}

// ListCategories returns all categories.
func (s *LibraryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}
