package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// UserRole identifies what a principal is allowed to do
type UserRole string

const (
	RoleTenant   UserRole = "tenant"
	RoleLandlord UserRole = "landlord"
	RoleAdmin    UserRole = "admin"
)

// EmploymentType is the declared employment situation of a tenant
type EmploymentType string

const (
	EmploymentFullTime     EmploymentType = "full_time"
	EmploymentPartTime     EmploymentType = "part_time"
	EmploymentContractor   EmploymentType = "contractor"
	EmploymentSelfEmployed EmploymentType = "self_employed"
	EmploymentUnemployed   EmploymentType = "unemployed"
	EmploymentStudent      EmploymentType = "student"
	EmploymentRetired      EmploymentType = "retired"
	EmploymentOther        EmploymentType = "other"
)

// EmploymentTypes lists every valid employment type, in declaration order.
var EmploymentTypes = []EmploymentType{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentContractor,
	EmploymentSelfEmployed,
	EmploymentUnemployed,
	EmploymentStudent,
	EmploymentRetired,
	EmploymentOther,
}

// Valid reports whether t is one of the known employment types.
func (t EmploymentType) Valid() bool {
	for _, known := range EmploymentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// TenantPreferences holds a tenant's declared living preferences.
// A false flag means "no need declared", not "forbidden".
type TenantPreferences struct {
	HasPets            bool     `json:"has_pets"`
	Smokes             bool     `json:"smokes"`
	NeedsParking       bool     `json:"needs_parking"`
	PreferredZoneNames []string `json:"preferred_zone_names,omitempty"`
}

// Value implements driver.Valuer interface
func (p TenantPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface
func (p *TenantPreferences) Scan(value interface{}) error {
	if value == nil {
		*p = TenantPreferences{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported preferences column type %T", value)
		}
		bytes = []byte(s)
	}
	return json.Unmarshal(bytes, p)
}

// TenantProfile represents a marketplace user profile.
// Income, score and employment type are nullable: nil means the tenant has not
// provided the value yet, and eligibility checks treat it as unknown.
type TenantProfile struct {
	ID             string            `json:"id" db:"id"`
	Email          string            `json:"email" db:"email"`
	FullName       *string           `json:"full_name,omitempty" db:"full_name"`
	Role           UserRole          `json:"role" db:"role"`
	Income         *float64          `json:"income,omitempty" db:"income"`
	Score          *int              `json:"score,omitempty" db:"score"`
	EmploymentType *EmploymentType   `json:"employment_type,omitempty" db:"employment_type"`
	Preferences    TenantPreferences `json:"preferences_json" db:"preferences_json"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}
