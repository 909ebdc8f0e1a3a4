package server

import (
	"net/http"

	"github.com/curanova/curanova-site/internal/auth"
	"github.com/curanova/curanova-site/internal/types"
)

// maxUploadForm bounds the multipart form held in memory while parsing.
const maxUploadForm = 8 << 20

// handleListCandidates returns the candidate roster with application counts.
// HR only.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	candidates, err := s.accounts.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to list candidates")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": candidates})
}

// handleGetProfile returns the signed-in candidate's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request, p *auth.Principal) {
	id, ok := s.principalUUID(w, p)
	if !ok {
		return
	}

	candidate, err := s.accounts.Profile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"profile": candidate})
}

// handleUpdateProfile replaces the signed-in candidate's editable fields.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, p *auth.Principal) {
	id, ok := s.principalUUID(w, p)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if !s.decode(w, r, &req) {
		return
	}

	candidate, err := s.accounts.UpdateProfile(r.Context(), id, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"profile": candidate})
}

// handleUploadResume stores a resume from a multipart form field named "file"
// and records its public path on the candidate.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request, p *auth.Principal) {
	id, ok := s.principalUUID(w, p)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadForm); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	url, err := s.uploads.Save(id, header.Header.Get("Content-Type"), file)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.accounts.SetResumePath(r.Context(), id, url); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to record resume")
		return
	}
	s.jsonResponse(w, http.StatusOK, types.UploadResponse{URL: url})
}
