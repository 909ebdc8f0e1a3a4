package server

import (
	"net/http"

	"github.com/curanova/curanova-site/internal/auth"
)

// handleGetReferrals returns the signed-in candidate's referral code and its
// redemption history. The code is minted on first request.
func (s *Server) handleGetReferrals(w http.ResponseWriter, r *http.Request, p *auth.Principal) {
	id, ok := s.principalUUID(w, p)
	if !ok {
		return
	}

	code, err := s.referrals.CodeFor(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to get referral code")
		return
	}

	refs, err := s.referrals.List(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to list referrals")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"code": code, "referrals": refs})
}

// handleCreateReferralCode mints (or returns the existing) referral code.
func (s *Server) handleCreateReferralCode(w http.ResponseWriter, r *http.Request, p *auth.Principal) {
	id, ok := s.principalUUID(w, p)
	if !ok {
		return
	}

	code, err := s.referrals.CodeFor(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to create referral code")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"code": code})
}
