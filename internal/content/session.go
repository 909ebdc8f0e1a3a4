package content

import (
	"fmt"
	"sort"
)

// PageWriter is the slice of the store an edit session needs to flush.
type PageWriter interface {
	ReplacePage(page string, data any) error
}

// FlushError reports a failed page flush. Pages flushed before the failure
// stay committed; Saved lists them so the caller can surface exactly which
// pages made it.
type FlushError struct {
	Page  string
	Saved []string
	Err   error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("failed to save page %s: %v", e.Page, e.Err)
}

func (e *FlushError) Unwrap() error { return e.Err }

// EditSession holds one admin's in-progress edits: a working copy of the
// content document, the global edit-mode toggle, and the pending change set
// mapping each dirty page to its entire updated subtree. Pending changes
// live only in the session; they are lost if it ends before Flush.
//
// Two sessions editing the same page overwrite each other wholesale on save
// (full-page replacement, last writer wins). Known limitation.
type EditSession struct {
	writer   PageWriter
	doc      Document
	editMode bool
	pending  map[string]bool
}

// NewEditSession starts a session over a working copy of the document.
func NewEditSession(doc Document, writer PageWriter) *EditSession {
	return &EditSession{
		writer:  writer,
		doc:     doc,
		pending: make(map[string]bool),
	}
}

// SetEditMode toggles the session-wide edit mode. While off, editable fields
// render as static text and reject edits.
func (s *EditSession) SetEditMode(on bool) { s.editMode = on }

// EditMode reports whether the session is in edit mode.
func (s *EditSession) EditMode() bool { return s.editMode }

// Document returns the session's working copy.
func (s *EditSession) Document() Document { return s.doc }

// UpdateContent patches one field in the working copy and marks the page
// dirty. Successive edits to the same page coalesce into a single pending
// full-page replacement.
func (s *EditSession) UpdateContent(page, path string, value any) error {
	if !IsValidPage(page) {
		return &ErrInvalidPage{Page: page}
	}

	subtree, ok := s.doc[page].(map[string]any)
	if !ok {
		return &ErrPathNotFound{Path: path, Reason: "page " + page + " has no subtree"}
	}

	if err := Patch(subtree, path, value); err != nil {
		return err
	}

	s.pending[page] = true
	return nil
}

// HasUnsavedChanges reports whether any page is dirty.
func (s *EditSession) HasUnsavedChanges() bool { return len(s.pending) > 0 }

// PendingPages returns the dirty page names in flush order.
func (s *EditSession) PendingPages() []string {
	pages := make([]string, 0, len(s.pending))
	for p := range s.pending {
		pages = append(pages, p)
	}
	sort.Strings(pages)
	return pages
}

// Flush writes every dirty page to the store sequentially, replacing each
// stored page with the session's full subtree. There is no cross-page
// transaction: on failure the pages already written stay committed, the
// failing page and the rest stay pending, and the returned FlushError names
// both. On success the pending set is cleared.
func (s *EditSession) Flush() ([]string, error) {
	saved := make([]string, 0, len(s.pending))
	for _, page := range s.PendingPages() {
		if err := s.writer.ReplacePage(page, s.doc[page]); err != nil {
			return saved, &FlushError{Page: page, Saved: saved, Err: err}
		}
		delete(s.pending, page)
		saved = append(saved, page)
	}
	return saved, nil
}
