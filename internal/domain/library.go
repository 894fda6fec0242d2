package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateCategory indicates the category name is already taken.
var ErrDuplicateCategory = errors.New("category already exists")

// LinkPaper is a saved link or paper, optionally with an uploaded attachment.
type LinkPaper struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url,omitempty"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
	Description   string    `json:"description"`
	Categories    []string  `json:"categories"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Category is a user-defined label for links and papers.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LibraryRepository is the port for link/paper and category persistence.
type LibraryRepository interface {
	AddLinkPaper(ctx context.Context, lp LinkPaper) (int64, error)
	DeleteLinkPaper(ctx context.Context, id int64) error
	ListLinkPapers(ctx context.Context, category string) ([]LinkPaper, error)
	AddCategory(ctx context.Context, name string) (int64, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]Category, error)
}
