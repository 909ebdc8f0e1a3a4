package config

import (
	"fmt"
	"os"
	"strconv"
)

// ContentConfig locates the site content document.
type ContentConfig struct {
	Path string
}

// NewContentConfig reads CONTENT_PATH (default: content/site.json).
func NewContentConfig() *ContentConfig {
	path := os.Getenv("CONTENT_PATH")
	if path == "" {
		path = "content/site.json"
	}
	return &ContentConfig{Path: path}
}

// UploadConfig controls the resume upload store.
type UploadConfig struct {
	// Dir is the directory uploads are written to.
	Dir string
	// PublicPrefix is the URL path prefix returned to clients.
	PublicPrefix string
	// MaxBytes is the upload size ceiling.
	MaxBytes int64
}

// NewUploadConfig reads UPLOAD_DIR (default: public/uploads/resumes) and
// UPLOAD_MAX_MB (default: 5).
func NewUploadConfig() (*UploadConfig, error) {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "public/uploads/resumes"
	}

	maxMB := 5
	if raw := os.Getenv("UPLOAD_MAX_MB"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid UPLOAD_MAX_MB: %q", raw)
		}
		maxMB = n
	}

	return &UploadConfig{
		Dir:          dir,
		PublicPrefix: "/uploads/resumes",
		MaxBytes:     int64(maxMB) << 20,
	}, nil
}
