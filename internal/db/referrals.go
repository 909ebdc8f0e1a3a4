package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetReferralCode returns the candidate's referral code, or "" when none has
// been generated yet.
func (db *DB) GetReferralCode(ctx context.Context, referrerID uuid.UUID) (string, error) {
	var code string
	err := db.pool.QueryRow(ctx,
		`SELECT code FROM referrals WHERE referrer_id = $1 LIMIT 1`,
		referrerID,
	).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get referral code: %w", err)
	}
	return code, nil
}

// CreateReferral stores a freshly generated code in PENDING status.
func (db *DB) CreateReferral(ctx context.Context, referrerID uuid.UUID, code string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO referrals (referrer_id, code, status)
		 VALUES ($1, $2, 'PENDING')`,
		referrerID, code)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create referral: %w", err)
	}
	return nil
}

// ListReferralsByReferrer returns a candidate's referrals, newest first,
// with the referred job's title joined in when set.
func (db *DB) ListReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]Referral, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT r.id, r.referrer_id, r.code, r.status, r.job_id,
		        COALESCE(j.title, ''), r.created_at, r.completed_at
		 FROM referrals r
		 LEFT JOIN jobs j ON j.id = r.job_id
		 WHERE r.referrer_id = $1
		 ORDER BY r.created_at DESC`,
		referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	defer rows.Close()

	var out []Referral
	for rows.Next() {
		var r Referral
		err := rows.Scan(&r.ID, &r.ReferrerID, &r.Code, &r.Status, &r.JobID,
			&r.JobTitle, &r.CreatedAt, &r.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RedeemReferral completes a pending referral matching code. The status
// guard makes redemption idempotent: a second call with the same code
// matches zero rows and is a no-op. Returns the number of rows updated.
func (db *DB) RedeemReferral(ctx context.Context, code string) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE referrals
		 SET status = 'COMPLETED', completed_at = NOW()
		 WHERE code = $1 AND status = 'PENDING'`,
		code)
	if err != nil {
		return 0, fmt.Errorf("failed to redeem referral: %w", err)
	}
	return tag.RowsAffected(), nil
}
