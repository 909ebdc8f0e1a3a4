package careers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/curanova/curanova-site/internal/db"
	"github.com/curanova/curanova-site/internal/types"
)

// ApplicationStore is the subset of the database used for applications.
type ApplicationStore interface {
	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
	CreateApplication(ctx context.Context, jobID, candidateID uuid.UUID, coverLetter, resumePath, referralCode string) (uuid.UUID, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*db.Application, error)
	ListApplications(ctx context.Context) ([]db.Application, error)
	ListApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]db.Application, error)
	UpdateApplicationReview(ctx context.Context, id uuid.UUID, status string, rating *int, notes string) error
	RedeemReferral(ctx context.Context, code string) (int64, error)
}

// ApplicationService handles application submission and HR review.
type ApplicationService struct {
	store ApplicationStore
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(store ApplicationStore) *ApplicationService {
	return &ApplicationService{store: store}
}

// Submit applies a candidate to a job. The job must be PUBLISHED, and a
// candidate can hold at most one application per job. A supplied referral
// code is redeemed as a side effect; an already-redeemed or unknown code
// never fails the application.
func (s *ApplicationService) Submit(ctx context.Context, candidateID uuid.UUID, req *types.SubmitApplicationRequest) (*db.Application, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, &ErrInvalidField{Field: "jobId", Message: "must be a UUID"}
	}

	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, &ErrNotFound{Resource: "job", ID: jobID.String()}
	}
	if job.Status != db.JobPublished {
		return nil, &ErrJobNotOpen{JobID: jobID.String()}
	}

	id, err := s.store.CreateApplication(ctx, jobID, candidateID, req.CoverLetter, req.ResumePath, req.ReferralCode)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, &ErrDuplicateApplication{}
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if req.ReferralCode != "" {
		if _, err := s.store.RedeemReferral(ctx, req.ReferralCode); err != nil {
			log.Printf("Failed to redeem referral code %s: %v", req.ReferralCode, err)
		}
	}

	return s.store.GetApplication(ctx, id)
}

// ListAll returns every application with candidate and job display fields.
func (s *ApplicationService) ListAll(ctx context.Context) ([]db.Application, error) {
	apps, err := s.store.ListApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// ListMine returns one candidate's applications.
func (s *ApplicationService) ListMine(ctx context.Context, candidateID uuid.UUID) ([]db.Application, error) {
	apps, err := s.store.ListApplicationsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// Get returns one application.
func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*db.Application, error) {
	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, &ErrNotFound{Resource: "application", ID: id.String()}
	}
	return app, nil
}

// Review merges an HR review update into the stored application; nil request
// fields keep their stored values.
func (s *ApplicationService) Review(ctx context.Context, id uuid.UUID, req *types.UpdateApplicationRequest) (*db.Application, error) {
	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, &ErrNotFound{Resource: "application", ID: id.String()}
	}

	status := app.Status
	if req.Status != nil {
		if !db.IsValidApplicationStatus(*req.Status) {
			return nil, &ErrInvalidField{Field: "status", Message: "unknown application status"}
		}
		status = *req.Status
	}

	rating := app.Rating
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, &ErrInvalidField{Field: "rating", Message: "must be between 1 and 5"}
		}
		rating = req.Rating
	}

	notes := app.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := s.store.UpdateApplicationReview(ctx, id, status, rating, notes); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return s.store.GetApplication(ctx, id)
}
