// Package server provides the HTTP API of the Curanova site: public content
// reads, site-admin content writes, and the careers portal.
package server

import (
	"errors"
	"net/http"

	"github.com/curanova/curanova-site/internal/careers"
	"github.com/curanova/curanova-site/internal/content"
	"github.com/curanova/curanova-site/internal/upload"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *careers.ErrEmailTaken, *careers.ErrDuplicateApplication:
		return http.StatusConflict
	case *careers.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *careers.ErrNotFound:
		return http.StatusNotFound
	case *careers.ErrJobNotOpen, *careers.ErrInvalidField:
		return http.StatusBadRequest
	case *upload.ErrUnsupportedType:
		return http.StatusBadRequest
	case *upload.ErrFileTooLarge:
		return http.StatusRequestEntityTooLarge
	}

	var invalidPage *content.ErrInvalidPage
	if errors.As(err, &invalidPage) {
		return http.StatusBadRequest
	}
	var badPath *content.ErrBadPath
	if errors.As(err, &badPath) {
		return http.StatusBadRequest
	}
	var pathNotFound *content.ErrPathNotFound
	if errors.As(err, &pathNotFound) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}
