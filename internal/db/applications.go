package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `ap.id, ap.job_id, ap.candidate_id,
	COALESCE(ap.cover_letter, ''), COALESCE(ap.resume_path, ''),
	COALESCE(ap.referral_code, ''), ap.status, ap.rating,
	COALESCE(ap.notes, ''), ap.applied_at, ap.updated_at,
	COALESCE(c.name, ''), c.email, j.title, j.department, j.location`

const applicationJoins = ` FROM applications ap
	JOIN candidates c ON c.id = ap.candidate_id
	JOIN jobs j ON j.id = ap.job_id`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.ResumePath,
		&a.ReferralCode, &a.Status, &a.Rating, &a.Notes, &a.AppliedAt, &a.UpdatedAt,
		&a.CandidateName, &a.CandidateEmail, &a.JobTitle, &a.JobDepartment, &a.JobLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan application: %w", err)
	}
	return &a, nil
}

// CreateApplication inserts an application in APPLIED status. A second
// application for the same (job, candidate) pair fails with ErrDuplicate and
// leaves the original untouched.
func (db *DB) CreateApplication(ctx context.Context, jobID, candidateID uuid.UUID, coverLetter, resumePath, referralCode string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, candidate_id, cover_letter, resume_path, referral_code)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		 RETURNING id`,
		jobID, candidateID, coverLetter, resumePath, referralCode,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplication returns one application with candidate and job display
// fields joined in, or nil when absent.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+applicationJoins+` WHERE ap.id = $1`, id)
	return scanApplication(row)
}

// ListApplications returns all applications, newest first (the HR view).
func (db *DB) ListApplications(ctx context.Context) ([]Application, error) {
	return db.listApplications(ctx,
		`SELECT `+applicationColumns+applicationJoins+` ORDER BY ap.applied_at DESC`)
}

// ListApplicationsByCandidate returns one candidate's applications,
// newest first.
func (db *DB) ListApplicationsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error) {
	return db.listApplications(ctx,
		`SELECT `+applicationColumns+applicationJoins+
			` WHERE ap.candidate_id = $1 ORDER BY ap.applied_at DESC`,
		candidateID)
}

func (db *DB) listApplications(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// UpdateApplicationReview writes the HR review fields.
func (db *DB) UpdateApplicationReview(ctx context.Context, id uuid.UUID, status string, rating *int, notes string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications
		 SET status = $2, rating = $3, notes = NULLIF($4, ''), updated_at = NOW()
		 WHERE id = $1`,
		id, status, rating, notes)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
