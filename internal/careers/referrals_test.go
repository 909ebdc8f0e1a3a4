package careers

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanova/curanova-site/internal/db"
)

// fakeReferralStore keeps one referral list per referrer.
type fakeReferralStore struct {
	referrals map[uuid.UUID][]db.Referral
	created   int
}

func newFakeReferralStore() *fakeReferralStore {
	return &fakeReferralStore{referrals: make(map[uuid.UUID][]db.Referral)}
}

func (f *fakeReferralStore) GetReferralCode(_ context.Context, referrerID uuid.UUID) (string, error) {
	refs := f.referrals[referrerID]
	if len(refs) == 0 {
		return "", nil
	}
	return refs[0].Code, nil
}

func (f *fakeReferralStore) CreateReferral(_ context.Context, referrerID uuid.UUID, code string) error {
	f.created++
	f.referrals[referrerID] = append(f.referrals[referrerID], db.Referral{
		ID:         uuid.New(),
		ReferrerID: referrerID,
		Code:       code,
		Status:     db.ReferralPending,
	})
	return nil
}

func (f *fakeReferralStore) ListReferralsByReferrer(_ context.Context, referrerID uuid.UUID) ([]db.Referral, error) {
	return f.referrals[referrerID], nil
}

var codePattern = regexp.MustCompile(`^REF-[0-9A-F]{8}$`)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
		seen[code] = true
	}
	// 100 draws from a 32-bit space should not collide.
	assert.Len(t, seen, 100)
}

func TestCodeFor_MintsOnce(t *testing.T) {
	store := newFakeReferralStore()
	svc := NewReferralService(store)
	candidateID := uuid.New()

	first, err := svc.CodeFor(context.Background(), candidateID)
	require.NoError(t, err)
	assert.Regexp(t, codePattern, first)

	second, err := svc.CodeFor(context.Background(), candidateID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.created, "repeat calls reuse the stored code")
}

func TestReferralList(t *testing.T) {
	store := newFakeReferralStore()
	svc := NewReferralService(store)
	candidateID := uuid.New()

	_, err := svc.CodeFor(context.Background(), candidateID)
	require.NoError(t, err)

	refs, err := svc.List(context.Background(), candidateID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, db.ReferralPending, refs[0].Status)
}
