package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/curanova/curanova-site/internal/auth"
	"github.com/curanova/curanova-site/internal/types"
)

// handleListJobs lists postings. Public callers only see PUBLISHED jobs; a
// valid HR session sees everything.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobs.List(r.Context(), s.isHR(r))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to list jobs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleGetJob returns one posting, with the same visibility rule as the list.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.jobs.Get(r.Context(), id, s.isHR(r))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"job": job})
}

// handleCreateJob stores a new posting. HR only.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	var req types.CreateJobRequest
	if !s.decode(w, r, &req) {
		return
	}

	job, err := s.jobs.Create(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]any{"job": job})
}

// handleUpdateJob applies a partial update to a posting. HR only.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.UpdateJobRequest
	if !s.decode(w, r, &req) {
		return
	}

	job, err := s.jobs.Update(r.Context(), id, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"job": job})
}

// handleDeleteJob removes a posting and its applications. HR only.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.jobs.Delete(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleGenerateJob drafts a posting with the model. HR only.
func (s *Server) handleGenerateJob(w http.ResponseWriter, r *http.Request, _ *auth.Principal) {
	if s.generator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Job generation is not configured")
		return
	}

	var req types.GenerateJobRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Title == "" && req.Keywords == "" {
		s.errorResponse(w, http.StatusBadRequest, "Title or keywords required")
		return
	}

	job, err := s.generator.Generate(r.Context(), req.Title, req.Keywords)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate job description")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"job": job})
}
