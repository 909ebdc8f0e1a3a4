package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `j.id, j.title, j.department, j.location, j.type, j.description,
	j.requirements, j.benefits, j.min_salary, j.max_salary, j.status,
	j.closing_date, j.created_at, j.updated_at,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type,
		&j.Description, &j.Requirements, &j.Benefits, &j.MinSalary, &j.MaxSalary,
		&j.Status, &j.ClosingDate, &j.CreatedAt, &j.UpdatedAt, &j.ApplicationCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}
	return &j, nil
}

// CreateJob inserts a job posting and returns its ID.
func (db *DB) CreateJob(ctx context.Context, j *Job) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, department, location, type, description,
		                   requirements, benefits, min_salary, max_salary, status, closing_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		j.Title, j.Department, j.Location, j.Type, j.Description,
		j.Requirements, j.Benefits, j.MinSalary, j.MaxSalary, j.Status, j.ClosingDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob returns a job with its application count, or nil when absent.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id)
	return scanJob(row)
}

// ListJobs returns jobs newest first. When publishedOnly is set, draft and
// closed postings are filtered out (the non-HR view).
func (db *DB) ListJobs(ctx context.Context, publishedOnly bool) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j`
	if publishedOnly {
		query += ` WHERE j.status = 'PUBLISHED'`
	}
	query += ` ORDER BY j.created_at DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

// UpdateJob rewrites all mutable columns of a job. Callers merge partial
// updates into the fetched record first.
func (db *DB) UpdateJob(ctx context.Context, j *Job) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, department = $3, location = $4, type = $5, description = $6,
		     requirements = $7, benefits = $8, min_salary = $9, max_salary = $10,
		     status = $11, closing_date = $12, updated_at = NOW()
		 WHERE id = $1`,
		j.ID, j.Title, j.Department, j.Location, j.Type, j.Description,
		j.Requirements, j.Benefits, j.MinSalary, j.MaxSalary, j.Status, j.ClosingDate)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteJob removes a job posting and, through cascade, its applications.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
