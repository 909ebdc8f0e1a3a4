package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/curanova/curanova-site/internal/auth"
	"github.com/curanova/curanova-site/internal/types"
)

// principalUUID parses the principal's subject ID. A malformed ID means the
// token was minted for a record this store never issued.
func (s *Server) principalUUID(w http.ResponseWriter, p *auth.Principal) (uuid.UUID, bool) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return id, true
}

// handleSubmitApplication applies the signed-in candidate to a job.
func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request, p *auth.Principal) {
	candidateID, ok := s.principalUUID(w, p)
	if !ok {
		return
	}

	var req types.SubmitApplicationRequest
	if !s.decode(w, r, &req) {
		return
	}

	app, err := s.applications.Submit(r.Context(), candidateID, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]any{"application": app})
}

// handleListApplications lists applications: all of them for HR, the caller's
// own for a candidate, nothing for anyone else.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	if s.isHR(r) {
		apps, err := s.applications.ListAll(r.Context())
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), "Failed to list applications")
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"applications": apps})
		return
	}

	principal := s.tokens.FromRequest(r, auth.KindCandidate)
	if principal == nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	candidateID, ok := s.principalUUID(w, principal)
	if !ok {
		return
	}

	apps, err := s.applications.ListMine(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to list applications")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": apps})
}

// handleGetApplication returns one application. HR only.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := s.applications.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"application": app})
}

// handleReviewApplication applies an HR review update.
func (s *Server) handleReviewApplication(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req types.UpdateApplicationRequest
	if !s.decode(w, r, &req) {
		return
	}

	app, err := s.applications.Review(r.Context(), id, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"application": app})
}
