package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentora/rentora/internal/model"
)

const applicationColumns = "id, tenant_id, property_id, status, visit_scheduled_at, created_at"

// GetApplication retrieves a single application by id. Returns nil when it
// does not exist.
func (r *PostgresRepository) GetApplication(ctx context.Context, id int64) (*model.Application, error) {
	var application model.Application
	query := "SELECT " + applicationColumns + " FROM applications WHERE id = $1"

	if err := r.db.GetContext(ctx, &application, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &StoreFault{Op: "get application", Err: err}
	}
	return &application, nil
}

// UpdateApplicationStatus moves an application to a new review status and
// returns the updated row.
func (r *PostgresRepository) UpdateApplicationStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error) {
	var application model.Application
	query := "UPDATE applications SET status = $2 WHERE id = $1 RETURNING " + applicationColumns

	if err := r.db.GetContext(ctx, &application, query, id, string(status)); err != nil {
		return nil, &StoreFault{Op: "update application status", Err: err}
	}
	return &application, nil
}

// ListApplicationsByTenant returns a tenant's applications, newest first
func (r *PostgresRepository) ListApplicationsByTenant(ctx context.Context, tenantID string) ([]model.Application, error) {
	query := "SELECT " + applicationColumns + " FROM applications WHERE tenant_id = $1 ORDER BY created_at DESC"

	var applications []model.Application
	if err := r.db.SelectContext(ctx, &applications, query, tenantID); err != nil {
		return nil, &StoreFault{Op: "list tenant applications", Err: err}
	}
	return applications, nil
}
