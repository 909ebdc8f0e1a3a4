package careers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/curanova/curanova-site/internal/db"
)

// ReferralStore is the subset of the database used for referral codes.
type ReferralStore interface {
	GetReferralCode(ctx context.Context, referrerID uuid.UUID) (string, error)
	CreateReferral(ctx context.Context, referrerID uuid.UUID, code string) error
	ListReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]db.Referral, error)
}

// ReferralService hands out one referral code per candidate and lists its
// redemptions.
type ReferralService struct {
	store ReferralStore
}

// NewReferralService creates a new ReferralService.
func NewReferralService(store ReferralStore) *ReferralService {
	return &ReferralService{store: store}
}

// GenerateCode returns a fresh referral code of the form REF-XXXXXXXX.
func GenerateCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate referral code: %w", err)
	}
	return "REF-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}

// CodeFor returns the candidate's referral code, minting one on first use.
func (s *ReferralService) CodeFor(ctx context.Context, candidateID uuid.UUID) (string, error) {
	code, err := s.store.GetReferralCode(ctx, candidateID)
	if err != nil {
		return "", fmt.Errorf("failed to get referral code: %w", err)
	}
	if code != "" {
		return code, nil
	}

	code, err = GenerateCode()
	if err != nil {
		return "", err
	}
	if err := s.store.CreateReferral(ctx, candidateID, code); err != nil {
		return "", fmt.Errorf("failed to create referral: %w", err)
	}
	return code, nil
}

// List returns the candidate's referral records, completed ones included.
func (s *ReferralService) List(ctx context.Context, candidateID uuid.UUID) ([]db.Referral, error) {
	refs, err := s.store.ListReferralsByReferrer(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return refs, nil
}
