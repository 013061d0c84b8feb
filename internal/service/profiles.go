package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
)

// ProfileService handles tenant profile reads and self-service updates
type ProfileService struct {
	profiles ProfileStore
	logger   *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		logger:   logger,
	}
}

// ProfileUpdate carries the tenant-editable fields of a profile. A nil field
// leaves the stored value untouched.
type ProfileUpdate struct {
	FullName       *string
	Income         *float64
	Score          *int
	EmploymentType *model.EmploymentType
	Preferences    *model.TenantPreferences
}

// UpdateOwnProfile applies a partial update to the caller's own profile. Only
// tenants may update, and only their own row; identity, email and role are not
// editable here.
func (s *ProfileService) UpdateOwnProfile(ctx context.Context, callerID string, callerRole model.UserRole, update ProfileUpdate) (*model.TenantProfile, error) {
	if callerRole != model.RoleTenant {
		return nil, &AuthorizationFault{Reason: "tenant role required"}
	}

	if update.Income != nil && *update.Income < 0 {
		return nil, &ValidationError{Field: "income", Reason: fmt.Sprintf("must be non-negative, got %v", *update.Income)}
	}
	if update.EmploymentType != nil && !update.EmploymentType.Valid() {
		return nil, &ValidationError{Field: "employment_type", Reason: fmt.Sprintf("unknown employment type %q", *update.EmploymentType)}
	}

	profile, err := s.profiles.GetProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &AuthorizationFault{Reason: "profile not found"}
	}

	if update.FullName != nil {
		profile.FullName = update.FullName
	}
	if update.Income != nil {
		profile.Income = update.Income
	}
	if update.Score != nil {
		profile.Score = update.Score
	}
	if update.EmploymentType != nil {
		profile.EmploymentType = update.EmploymentType
	}
	if update.Preferences != nil {
		profile.Preferences = *update.Preferences
	}

	if err := s.profiles.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", zap.String("user_id", callerID))
	return profile, nil
}
