package careers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/curanova/curanova-site/internal/db"
	"github.com/curanova/curanova-site/internal/types"
)

// JobStore is the subset of the database used for job postings.
type JobStore interface {
	CreateJob(ctx context.Context, j *db.Job) (uuid.UUID, error)
	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
	ListJobs(ctx context.Context, publishedOnly bool) ([]db.Job, error)
	UpdateJob(ctx context.Context, j *db.Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

// JobService provides job posting CRUD with status-based visibility: callers
// without HR access only ever see PUBLISHED jobs.
type JobService struct {
	store JobStore
}

// NewJobService creates a new JobService.
func NewJobService(store JobStore) *JobService {
	return &JobService{store: store}
}

// List returns job postings. Without includeUnpublished only PUBLISHED jobs
// are returned.
func (s *JobService) List(ctx context.Context, includeUnpublished bool) ([]db.Job, error) {
	jobs, err := s.store.ListJobs(ctx, !includeUnpublished)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Get returns one job. Unpublished jobs are indistinguishable from missing
// ones for callers without HR access.
func (s *JobService) Get(ctx context.Context, id uuid.UUID, includeUnpublished bool) (*db.Job, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil || (!includeUnpublished && job.Status != db.JobPublished) {
		return nil, &ErrNotFound{Resource: "job", ID: id.String()}
	}
	return job, nil
}

// Create stores a new posting. Status defaults to DRAFT.
func (s *JobService) Create(ctx context.Context, req *types.CreateJobRequest) (*db.Job, error) {
	status := req.Status
	if status == "" {
		status = db.JobDraft
	}
	if err := validateJobStatus(status); err != nil {
		return nil, err
	}

	closing, err := parseClosingDate(req.ClosingDate)
	if err != nil {
		return nil, err
	}

	job := &db.Job{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		MinSalary:    req.MinSalary,
		MaxSalary:    req.MaxSalary,
		Status:       status,
		ClosingDate:  closing,
	}

	id, err := s.store.CreateJob(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return s.store.GetJob(ctx, id)
}

// Update merges a partial update into the stored posting; nil request fields
// keep their stored values.
func (s *JobService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateJobRequest) (*db.Job, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, &ErrNotFound{Resource: "job", ID: id.String()}
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.MinSalary != nil {
		job.MinSalary = req.MinSalary
	}
	if req.MaxSalary != nil {
		job.MaxSalary = req.MaxSalary
	}
	if req.Status != nil {
		if err := validateJobStatus(*req.Status); err != nil {
			return nil, err
		}
		job.Status = *req.Status
	}
	if req.ClosingDate != nil {
		closing, err := parseClosingDate(*req.ClosingDate)
		if err != nil {
			return nil, err
		}
		job.ClosingDate = closing
	}

	if err := s.store.UpdateJob(ctx, job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{Resource: "job", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return s.store.GetJob(ctx, id)
}

// Delete removes a posting and its applications.
func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &ErrNotFound{Resource: "job", ID: id.String()}
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func validateJobStatus(status string) error {
	switch status {
	case db.JobDraft, db.JobPublished, db.JobClosed:
		return nil
	}
	return &ErrInvalidField{Field: "status", Message: "must be DRAFT, PUBLISHED, or CLOSED"}
}

// parseClosingDate accepts RFC 3339 timestamps or bare dates; an empty string
// clears the closing date.
func parseClosingDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, &ErrInvalidField{Field: "closingDate", Message: "must be an RFC 3339 timestamp or YYYY-MM-DD date"}
}
