package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, email, password_hash, COALESCE(name, ''),
	COALESCE(phone, ''), COALESCE(bio, ''), COALESCE(linkedin_url, ''),
	COALESCE(portfolio_url, ''), COALESCE(resume_path, ''), created_at, updated_at`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Name, &c.Phone, &c.Bio,
		&c.LinkedInURL, &c.PortfolioURL, &c.ResumePath, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan candidate: %w", err)
	}
	return &c, nil
}

// CreateCandidate inserts a new candidate account. A duplicate email fails
// with ErrDuplicate.
func (db *DB) CreateCandidate(ctx context.Context, email, passwordHash, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (email, password_hash, name)
		 VALUES ($1, $2, NULLIF($3, ''))
		 RETURNING id`,
		email, passwordHash, name,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidateByEmail returns a candidate by email, or nil when absent.
func (db *DB) GetCandidateByEmail(ctx context.Context, email string) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE email = $1`, email)
	return scanCandidate(row)
}

// GetCandidateByID returns a candidate by ID, or nil when absent.
func (db *DB) GetCandidateByID(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	return scanCandidate(row)
}

// UpdateCandidateProfile replaces the candidate's editable profile fields.
func (db *DB) UpdateCandidateProfile(ctx context.Context, id uuid.UUID, name, phone, bio, linkedInURL, portfolioURL string) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE candidates
		 SET name = NULLIF($2, ''), phone = NULLIF($3, ''), bio = NULLIF($4, ''),
		     linkedin_url = NULLIF($5, ''), portfolio_url = NULLIF($6, ''),
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+candidateColumns,
		id, name, phone, bio, linkedInURL, portfolioURL)
	return scanCandidate(row)
}

// SetCandidateResumePath records the uploaded resume's public path.
func (db *DB) SetCandidateResumePath(ctx context.Context, id uuid.UUID, path string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE candidates SET resume_path = $2, updated_at = NOW() WHERE id = $1`,
		id, path)
	if err != nil {
		return fmt.Errorf("failed to set resume path: %w", err)
	}
	return nil
}

// ListCandidates returns all candidates with their application counts,
// newest first. HR-only at the handler layer.
func (db *DB) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+`,
		        (SELECT COUNT(*) FROM applications a WHERE a.candidate_id = candidates.id)
		 FROM candidates
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		err := rows.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Name, &c.Phone, &c.Bio,
			&c.LinkedInURL, &c.PortfolioURL, &c.ResumePath, &c.CreatedAt, &c.UpdatedAt,
			&c.ApplicationCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
