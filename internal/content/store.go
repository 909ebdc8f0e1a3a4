package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Pages is the fixed set of top-level page keys in the content document.
// A write targeting any other key is rejected.
var Pages = []string{"home", "services", "solutions", "about", "careers", "contact", "siteInfo"}

// Document is the full site content: one subtree per page key.
type Document map[string]any

// IsValidPage reports whether name is one of the declared page keys.
func IsValidPage(name string) bool {
	for _, p := range Pages {
		if p == name {
			return true
		}
	}
	return false
}

// Store persists the content document as a single JSON file. The whole
// document is the unit of persistence: ReplacePage rewrites the file through
// a temp-file rename so a crash mid-write never leaves it partially written.
// Concurrent page replacements are last-writer-wins at page granularity.
type Store struct {
	mu   sync.Mutex
	path string
	doc  Document
}

// NewStore creates a store backed by the JSON document at path. The file is
// read lazily on first access.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// GetAll returns a deep copy of the current document. Public, no auth.
func (s *Store) GetAll() (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	return deepCopy(s.doc)
}

// ReplacePage overwrites one page's subtree and commits the whole document
// atomically. Unknown page keys fail with ErrInvalidPage and leave the
// document untouched.
func (s *Store) ReplacePage(page string, data any) error {
	if !IsValidPage(page) {
		return &ErrInvalidPage{Page: page}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	prev, had := s.doc[page]
	s.doc[page] = data
	if err := s.persist(); err != nil {
		// Keep the in-memory document consistent with what is on disk.
		if had {
			s.doc[page] = prev
		} else {
			delete(s.doc, page)
		}
		return fmt.Errorf("failed to persist content: %w", err)
	}
	return nil
}

// load reads the document from disk on first use. Callers hold s.mu.
func (s *Store) load() error {
	if s.doc != nil {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read content file %s: %w", s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse content file %s: %w", s.path, err)
	}

	s.doc = doc
	return nil
}

// persist writes the document to a temp file in the same directory and
// renames it over the target. Callers hold s.mu.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".site-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace content file: %w", err)
	}
	return nil
}

// deepCopy clones a document through a JSON round trip so callers can mutate
// their copy freely.
func deepCopy(doc Document) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to copy document: %w", err)
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to copy document: %w", err)
	}
	return out, nil
}
