package server

import (
	"encoding/json"
	"net/http"

	"github.com/curanova/curanova-site/internal/auth"
	"github.com/curanova/curanova-site/internal/types"
)

// handleGetContent returns the whole site content document. Public.
func (s *Server) handleGetContent(w http.ResponseWriter, _ *http.Request) {
	doc, err := s.content.GetAll()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to load content")
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleUpdateContent replaces one page's subtree. Site-admin only.
func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	var req types.UpdateContentRequest
	if !s.decode(w, r, &req) {
		return
	}

	var data any
	if err := json.Unmarshal(req.Data, &data); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid page data")
		return
	}

	if err := s.content.ReplacePage(req.Page, data); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
