package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
)

// ApplicationService handles rental application workflow logic
type ApplicationService struct {
	applications ApplicationStore
	properties   PropertyStore
	logger       *zap.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(applications ApplicationStore, properties PropertyStore, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		properties:   properties,
		logger:       logger,
	}
}

// UpdateStatus moves an application to a new review status. Only the landlord
// who owns the application's property may do this.
func (s *ApplicationService) UpdateStatus(ctx context.Context, callerID string, callerRole model.UserRole, applicationID int64, status model.ApplicationStatus) (*model.Application, error) {
	if callerRole != model.RoleLandlord {
		return nil, &AuthorizationFault{Reason: "landlord role required"}
	}
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	application, err := s.applications.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, fmt.Errorf("application %d not found", applicationID)
	}

	property, err := s.properties.GetProperty(ctx, application.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("property %d not found", application.PropertyID)
	}
	if property.LandlordID != callerID {
		return nil, &AuthorizationFault{Reason: "caller does not own this property"}
	}

	updated, err := s.applications.UpdateApplicationStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("application status updated",
		zap.Int64("application_id", applicationID),
		zap.String("status", string(status)),
		zap.String("landlord_id", callerID),
	)
	return updated, nil
}

// ListForTenant returns the caller's own applications, newest first.
func (s *ApplicationService) ListForTenant(ctx context.Context, callerID string, callerRole model.UserRole) ([]model.Application, error) {
	if callerRole != model.RoleTenant {
		return nil, &AuthorizationFault{Reason: "tenant role required"}
	}
	return s.applications.ListApplicationsByTenant(ctx, callerID)
}
