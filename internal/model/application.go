package model

import "time"

// ApplicationStatus is the review state of a rental application
type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationReviewing, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application links a tenant to a property they applied for.
type Application struct {
	ID               int64             `json:"id" db:"id"`
	TenantID         string            `json:"tenant_id" db:"tenant_id"`
	PropertyID       int64             `json:"property_id" db:"property_id"`
	Status           ApplicationStatus `json:"status" db:"status"`
	VisitScheduledAt *time.Time        `json:"visit_scheduled_at,omitempty" db:"visit_scheduled_at"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
}
