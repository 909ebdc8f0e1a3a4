// Package upload stores candidate resumes on local disk and hands back the
// public path they are served from.
package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/curanova/curanova-site/internal/config"
)

// allowedTypes maps the accepted resume MIME types to their file extension.
var allowedTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// ErrUnsupportedType reports a resume upload with a MIME type outside the
// allow-list.
type ErrUnsupportedType struct {
	ContentType string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported file type %q, only PDF and Word documents are accepted", e.ContentType)
}

// ErrFileTooLarge reports a resume upload over the size cap.
type ErrFileTooLarge struct {
	MaxBytes int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("file exceeds the %dMB limit", e.MaxBytes/(1024*1024))
}

// Store writes resumes under a single directory. Filenames embed the owning
// candidate's ID and a millisecond timestamp so repeat uploads never collide.
type Store struct {
	dir          string
	publicPrefix string
	maxBytes     int64
	now          func() time.Time
}

// NewStore creates the upload directory if needed.
func NewStore(cfg config.UploadConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{
		dir:          cfg.Dir,
		publicPrefix: cfg.PublicPrefix,
		maxBytes:     cfg.MaxBytes,
		now:          time.Now,
	}, nil
}

// Save stores one resume and returns its public path. The declared content
// type must be on the allow-list and the body must fit the size cap; on any
// failure nothing is left on disk.
func (s *Store) Save(candidateID uuid.UUID, contentType string, r io.Reader) (string, error) {
	ext, ok := allowedTypes[normalizeContentType(contentType)]
	if !ok {
		return "", &ErrUnsupportedType{ContentType: contentType}
	}

	name := fmt.Sprintf("%s-%d%s", candidateID, s.now().UnixMilli(), ext)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create resume file: %w", err)
	}

	// Copy one byte past the cap so oversized bodies are detected without
	// buffering them whole.
	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write resume file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(dst)
		return "", &ErrFileTooLarge{MaxBytes: s.maxBytes}
	}

	return path.Join(s.publicPrefix, name), nil
}

// Dir returns the directory resumes are written to, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}

// PublicPrefix returns the URL prefix resumes are served under.
func (s *Store) PublicPrefix() string {
	return s.publicPrefix
}

func normalizeContentType(ct string) string {
	// Browsers may append parameters, e.g. "application/pdf; charset=binary".
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
