// Package content implements the site content document: a single JSON
// document keyed by page name, a path-addressed patch engine over it, and the
// edit-session model that accumulates per-page changes before an explicit save.
package content

import "fmt"

// ErrInvalidPage indicates a write targeted a page key that is not part of
// the fixed document layout.
type ErrInvalidPage struct {
	Page string
}

func (e *ErrInvalidPage) Error() string {
	return fmt.Sprintf("invalid page: %s", e.Page)
}

// ErrPathNotFound indicates a field path did not resolve against the page
// subtree. Missing members, out-of-range indexes, and type mismatches
// (index on a non-list, member on a non-object) all collapse into this error;
// intermediate nodes are never created implicitly.
type ErrPathNotFound struct {
	Path   string
	Reason string
}

func (e *ErrPathNotFound) Error() string {
	return fmt.Sprintf("path not found: %s (%s)", e.Path, e.Reason)
}

// ErrBadPath indicates the path string itself is malformed and could not be
// parsed into segments.
type ErrBadPath struct {
	Path   string
	Reason string
}

func (e *ErrBadPath) Error() string {
	return fmt.Sprintf("malformed field path: %s (%s)", e.Path, e.Reason)
}
