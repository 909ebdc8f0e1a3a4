package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetHRAdminByEmail looks up an HR admin credential record. Returns nil
// when no record exists.
func (db *DB) GetHRAdminByEmail(ctx context.Context, email string) (*HRAdmin, error) {
	var a HRAdmin
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, name, created_at
		 FROM hr_admins WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hr admin: %w", err)
	}
	return &a, nil
}

// UpsertHRAdmin creates or refreshes an HR admin record. Used by seeding.
func (db *DB) UpsertHRAdmin(ctx context.Context, email, passwordHash, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO hr_admins (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE
		   SET password_hash = EXCLUDED.password_hash, name = EXCLUDED.name
		 RETURNING id`,
		email, passwordHash, name,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert hr admin: %w", err)
	}
	return id, nil
}
