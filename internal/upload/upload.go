// Package upload stores uploaded files in a single content directory.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// URLPrefix is the fixed prefix the content directory is served under.
const URLPrefix = "/uploads"

// Store writes uploaded files to disk. One write per call; files orphaned
// by callers that fail afterwards are not cleaned up.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store rooted at dir. The directory is created on
// first use.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// FileName builds the stored name for an upload. The millisecond timestamp
// prefix keeps same-named uploads from colliding; the original name is
// reduced to its base to strip any path components.
func FileName(ts time.Time, originalName string) string {
	return fmt.Sprintf("%d-%s", ts.UnixMilli(), filepath.Base(originalName))
}

// Save writes src under the content directory and returns the relative
// path clients reference it by.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := FileName(s.now(), originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return URLPrefix + "/" + name, nil
}

// SaveMultipart stores a multipart file part.
func (s *Store) SaveMultipart(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.Save(src, fh.Filename)
}
