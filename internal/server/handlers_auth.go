package server

import (
	"net/http"

	"github.com/curanova/curanova-site/internal/auth"
	"github.com/curanova/curanova-site/internal/db"
	"github.com/curanova/curanova-site/internal/types"
)

// issueCookie mints a token for the principal and sets the kind's cookie.
func (s *Server) issueCookie(w http.ResponseWriter, kind auth.Kind, p auth.Principal) error {
	token, err := s.tokens.Issue(p, kind)
	if err != nil {
		return err
	}
	http.SetCookie(w, s.tokens.Cookie(kind, token))
	return nil
}

// handleSiteLogin signs the site administrator in. The admin authenticates
// against an HR credential record but receives a site-admin session.
func (s *Server) handleSiteLogin(w http.ResponseWriter, r *http.Request) {
	var req types.SiteLoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	admin, err := s.accounts.SiteAdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	principal := auth.Principal{ID: admin.ID.String(), Email: admin.Email, Name: admin.Name}
	if err := s.issueCookie(w, auth.KindSiteAdmin, principal); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"user": principal})
}

// handleHRLogin signs a careers administrator in.
func (s *Server) handleHRLogin(w http.ResponseWriter, r *http.Request) {
	var req types.HRLoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	admin, err := s.accounts.HRLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	principal := auth.Principal{ID: admin.ID.String(), Email: admin.Email, Name: admin.Name}
	if err := s.issueCookie(w, auth.KindHRAdmin, principal); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"user": principal})
}

// handleCandidateRegister creates a candidate account and signs it in.
func (s *Server) handleCandidateRegister(w http.ResponseWriter, r *http.Request) {
	var req types.CandidateRegisterRequest
	if !s.decode(w, r, &req) {
		return
	}

	candidate, err := s.accounts.RegisterCandidate(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.issueCookie(w, auth.KindCandidate, candidatePrincipal(candidate)); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]any{"user": candidate})
}

// handleCandidateLogin signs a candidate in.
func (s *Server) handleCandidateLogin(w http.ResponseWriter, r *http.Request) {
	var req types.CandidateLoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	candidate, err := s.accounts.CandidateLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.issueCookie(w, auth.KindCandidate, candidatePrincipal(candidate)); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"user": candidate})
}

// handleVerify reports whether the request carries a valid session of the
// kind. Missing or bad cookies answer authenticated=false, never an error.
func (s *Server) handleVerify(kind auth.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := s.tokens.FromRequest(r, kind)
		if principal == nil {
			s.jsonResponse(w, http.StatusOK, types.VerifyResponse{Authenticated: false})
			return
		}
		s.jsonResponse(w, http.StatusOK, types.VerifyResponse{Authenticated: true, User: principal})
	}
}

// handleLogout clears the kind's session cookie.
func (s *Server) handleLogout(kind auth.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, s.tokens.ClearCookie(kind))
		s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func candidatePrincipal(c *db.Candidate) auth.Principal {
	return auth.Principal{ID: c.ID.String(), Email: c.Email, Name: c.Name}
}
