// Package storage implements a local-disk file store for uploads.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists uploaded blobs and returns retrievable URLs.
type FileStore interface {
	Save(name string, r io.Reader) (string, error)
}

// Local stores files under dir and addresses them beneath urlPrefix.
type Local struct {
	dir       string
	urlPrefix string
}

// NewLocal creates the upload directory if needed.
func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}
	return &Local{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Dir returns the directory files are stored in.
func (l *Local) Dir() string { return l.dir }

// Save writes the blob under a fresh object name derived from the original
// file name and returns its serving URL.
func (l *Local) Save(name string, r io.Reader) (string, error) {
	object := uuid.NewString() + sanitizeExt(name)
	path := filepath.Join(l.dir, object)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("storage: write: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close: %w", err)
	}
	return l.urlPrefix + "/" + object, nil
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '.' {
			return ""
		}
	}
	return ext
}
