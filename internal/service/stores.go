package service

import (
	"context"

	"github.com/rentora/rentora/internal/model"
)

// PropertyStore is the slice of the record store the search and eligibility
// paths read from. The store is treated as a black box returning rows or a
// fault; faults are propagated, not interpreted.
type PropertyStore interface {
	SearchProperties(ctx context.Context, query model.PropertyQuery) ([]model.Property, error)
	GetProperty(ctx context.Context, id int64) (*model.Property, error)
	ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]model.Property, error)
	ListActiveProperties(ctx context.Context) ([]model.Property, error)
}

// ProfileStore reads and updates tenant profiles keyed by principal id.
// Profiles are never deleted; sign-up creates the row and only the owning
// tenant mutates it.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*model.TenantProfile, error)
	UpdateProfile(ctx context.Context, profile *model.TenantProfile) error
}

// ChatStore persists one assistant transcript per user.
type ChatStore interface {
	LoadHistory(ctx context.Context, userID string) (model.ChatHistory, error)
	SaveHistory(ctx context.Context, userID string, history model.ChatHistory) error
}

// ApplicationStore reads and updates rental applications.
type ApplicationStore interface {
	GetApplication(ctx context.Context, id int64) (*model.Application, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error)
	ListApplicationsByTenant(ctx context.Context, tenantID string) ([]model.Application, error)
}
