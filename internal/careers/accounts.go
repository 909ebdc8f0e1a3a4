package careers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/curanova/curanova-site/internal/config"
	"github.com/curanova/curanova-site/internal/db"
	"github.com/curanova/curanova-site/internal/types"
)

// AccountStore is the subset of the database used for accounts and logins.
type AccountStore interface {
	GetHRAdminByEmail(ctx context.Context, email string) (*db.HRAdmin, error)
	CreateCandidate(ctx context.Context, email, passwordHash, name string) (uuid.UUID, error)
	GetCandidateByEmail(ctx context.Context, email string) (*db.Candidate, error)
	GetCandidateByID(ctx context.Context, id uuid.UUID) (*db.Candidate, error)
	UpdateCandidateProfile(ctx context.Context, id uuid.UUID, name, phone, bio, linkedInURL, portfolioURL string) (*db.Candidate, error)
	SetCandidateResumePath(ctx context.Context, id uuid.UUID, path string) error
	ListCandidates(ctx context.Context) ([]db.Candidate, error)
}

// AccountService provides registration, login, and profile operations for the
// three principal kinds.
type AccountService struct {
	store     AccountStore
	passwords *config.PasswordConfig
}

// NewAccountService creates a new AccountService with the given dependencies.
func NewAccountService(store AccountStore, passwords *config.PasswordConfig) *AccountService {
	return &AccountService{store: store, passwords: passwords}
}

// RegisterCandidate creates a candidate account and returns it.
func (s *AccountService) RegisterCandidate(ctx context.Context, req *types.CandidateRegisterRequest) (*db.Candidate, error) {
	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.store.CreateCandidate(ctx, req.Email, hash, req.Name)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, &ErrEmailTaken{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	candidate, err := s.store.GetCandidateByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created candidate: %w", err)
	}
	if candidate == nil {
		return nil, fmt.Errorf("created candidate not found: %s", id)
	}
	return candidate, nil
}

// CandidateLogin authenticates a candidate. Unknown email and wrong password
// collapse into the same error.
func (s *AccountService) CandidateLogin(ctx context.Context, email, password string) (*db.Candidate, error) {
	candidate, err := s.store.GetCandidateByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate by email: %w", err)
	}
	if candidate == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwords.VerifyPassword(password, candidate.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return candidate, nil
}

// HRLogin authenticates a careers administrator.
func (s *AccountService) HRLogin(ctx context.Context, email, password string) (*db.HRAdmin, error) {
	admin, err := s.store.GetHRAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	if admin == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwords.VerifyPassword(password, admin.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return admin, nil
}

// SiteAdminLogin authenticates the site administrator. Site admins sign in
// with an admin credential record's email as username; the caller issues a
// site-admin token, not an HR one.
func (s *AccountService) SiteAdminLogin(ctx context.Context, username, password string) (*db.HRAdmin, error) {
	return s.HRLogin(ctx, username, password)
}

// Profile returns a candidate by ID.
func (s *AccountService) Profile(ctx context.Context, id uuid.UUID) (*db.Candidate, error) {
	candidate, err := s.store.GetCandidateByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate == nil {
		return nil, &ErrNotFound{Resource: "candidate", ID: id.String()}
	}
	return candidate, nil
}

// SetResumePath records the public path of a candidate's uploaded resume.
func (s *AccountService) SetResumePath(ctx context.Context, id uuid.UUID, path string) error {
	if err := s.store.SetCandidateResumePath(ctx, id, path); err != nil {
		return fmt.Errorf("failed to set resume path: %w", err)
	}
	return nil
}

// ListCandidates returns every candidate with application counts, for HR.
func (s *AccountService) ListCandidates(ctx context.Context) ([]db.Candidate, error) {
	candidates, err := s.store.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// UpdateProfile replaces a candidate's editable profile fields and returns
// the updated record.
func (s *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*db.Candidate, error) {
	candidate, err := s.store.UpdateCandidateProfile(ctx, id, req.Name, req.Phone, req.Bio, req.LinkedInURL, req.PortfolioURL)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if candidate == nil {
		return nil, &ErrNotFound{Resource: "candidate", ID: id.String()}
	}
	return candidate, nil
}
