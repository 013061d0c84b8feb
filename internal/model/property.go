package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PropertyStatus is the lifecycle state of a listing
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyInactive PropertyStatus = "inactive"
)

// PropertyDetails describes the physical listing shown to tenants.
type PropertyDetails struct {
	Price      float64 `json:"price"`
	Bedrooms   int     `json:"bedrooms"`
	HasParking bool    `json:"has_parking"`
	Address    string  `json:"address"`
}

// Value implements driver.Valuer interface
func (d PropertyDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner interface
func (d *PropertyDetails) Scan(value interface{}) error {
	return scanJSON(value, d, "details")
}

// EmploymentPolicy is either the wildcard "any" or a non-empty set of allowed
// employment types. On the wire it serializes as the string "any" or a JSON
// array, matching the stored criteria shape.
type EmploymentPolicy struct {
	Any     bool
	Allowed []EmploymentType
}

// AnyEmployment is the wildcard policy that admits every employment type.
func AnyEmployment() EmploymentPolicy {
	return EmploymentPolicy{Any: true}
}

// AllowEmployment builds a policy restricted to the given types.
func AllowEmployment(types ...EmploymentType) EmploymentPolicy {
	return EmploymentPolicy{Allowed: types}
}

// Allows reports whether a tenant with the given declared employment type
// passes the policy. A wildcard policy admits everyone, including tenants who
// have not declared a type; a restricted policy requires a declared, listed type.
func (p EmploymentPolicy) Allows(t *EmploymentType) bool {
	if p.Any {
		return true
	}
	if t == nil {
		return false
	}
	for _, allowed := range p.Allowed {
		if *t == allowed {
			return true
		}
	}
	return false
}

// MarshalJSON implements json.Marshaler
func (p EmploymentPolicy) MarshalJSON() ([]byte, error) {
	if p.Any {
		return json.Marshal("any")
	}
	return json.Marshal(p.Allowed)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *EmploymentPolicy) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if s != "any" {
			return fmt.Errorf("unknown employment policy %q", s)
		}
		*p = EmploymentPolicy{Any: true}
		return nil
	}
	var types []EmploymentType
	if err := json.Unmarshal(trimmed, &types); err != nil {
		return err
	}
	*p = EmploymentPolicy{Allowed: types}
	return nil
}

// PropertyCriteria are the landlord's admission thresholds for applicants.
type PropertyCriteria struct {
	MinIncome              float64          `json:"min_income"`
	MinScore               int              `json:"min_score"`
	EmploymentTypesAllowed EmploymentPolicy `json:"employment_types_allowed"`
	PetsAllowed            bool             `json:"pets_allowed"`
	SmokingAllowed         bool             `json:"smoking_allowed"`
}

// Value implements driver.Valuer interface
func (c PropertyCriteria) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner interface
func (c *PropertyCriteria) Scan(value interface{}) error {
	return scanJSON(value, c, "criteria")
}

// Property represents a rental listing
type Property struct {
	ID         int64            `json:"id" db:"id"`
	LandlordID string           `json:"landlord_id" db:"landlord_id"`
	ZoneName   string           `json:"zone_name" db:"zone_name"`
	Details    PropertyDetails  `json:"details_json" db:"details_json"`
	Criteria   PropertyCriteria `json:"criteria_json" db:"criteria_json"`
	Status     PropertyStatus   `json:"status" db:"status"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

func scanJSON(value interface{}, target interface{}, what string) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("unsupported %s column type %T", what, value)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, target)
}
