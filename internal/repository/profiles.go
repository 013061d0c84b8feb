package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentora/rentora/internal/model"
)

// GetProfile retrieves a user profile by principal id. Returns nil when no
// profile exists.
func (r *PostgresRepository) GetProfile(ctx context.Context, id string) (*model.TenantProfile, error) {
	var profile model.TenantProfile
	query := `
		SELECT id, email, full_name, role, income, score, employment_type, preferences_json, created_at
		FROM profiles
		WHERE id = $1
	`

	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &StoreFault{Op: "get profile", Err: err}
	}
	return &profile, nil
}

// UpdateProfile persists tenant-editable profile fields. Profiles are never
// deleted; sign-up creates the row and only the owning tenant mutates it.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, profile *model.TenantProfile) error {
	query := `
		UPDATE profiles
		SET full_name = $2, income = $3, score = $4, employment_type = $5, preferences_json = $6
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.FullName,
		profile.Income,
		profile.Score,
		profile.EmploymentType,
		profile.Preferences,
	)
	if err != nil {
		return &StoreFault{Op: "update profile", Err: err}
	}
	return nil
}
