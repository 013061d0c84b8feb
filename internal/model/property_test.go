package model

import (
	"encoding/json"
	"testing"
)

func TestEmploymentPolicy_JSON(t *testing.T) {
	tests := []struct {
		name   string
		policy EmploymentPolicy
		json   string
	}{
		{"wildcard", AnyEmployment(), `"any"`},
		{"restricted", AllowEmployment(EmploymentFullTime, EmploymentPartTime), `["full_time","part_time"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(tt.policy)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(encoded) != tt.json {
				t.Errorf("marshal = %s, want %s", encoded, tt.json)
			}

			var decoded EmploymentPolicy
			if err := json.Unmarshal([]byte(tt.json), &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if decoded.Any != tt.policy.Any || len(decoded.Allowed) != len(tt.policy.Allowed) {
				t.Errorf("unmarshal = %+v, want %+v", decoded, tt.policy)
			}
		})
	}
}

func TestEmploymentPolicy_UnmarshalRejectsUnknownString(t *testing.T) {
	var p EmploymentPolicy
	if err := json.Unmarshal([]byte(`"none"`), &p); err == nil {
		t.Error(`expected an error for a policy string other than "any"`)
	}
}

func TestEmploymentPolicy_Allows(t *testing.T) {
	fullTime := EmploymentFullTime
	student := EmploymentStudent

	tests := []struct {
		name   string
		policy EmploymentPolicy
		tenant *EmploymentType
		want   bool
	}{
		{"wildcard admits declared", AnyEmployment(), &fullTime, true},
		{"wildcard admits undeclared", AnyEmployment(), nil, true},
		{"restricted admits listed", AllowEmployment(EmploymentFullTime), &fullTime, true},
		{"restricted rejects unlisted", AllowEmployment(EmploymentFullTime), &student, false},
		{"restricted rejects undeclared", AllowEmployment(EmploymentFullTime), nil, false},
		{"empty set rejects everyone", AllowEmployment(), &fullTime, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Allows(tt.tenant); got != tt.want {
				t.Errorf("Allows = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertyCriteria_ScanRoundTrip(t *testing.T) {
	criteria := PropertyCriteria{
		MinIncome:              1200,
		MinScore:               650,
		EmploymentTypesAllowed: AllowEmployment(EmploymentFullTime),
		PetsAllowed:            true,
	}

	value, err := criteria.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var scanned PropertyCriteria
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if scanned.MinIncome != 1200 || scanned.MinScore != 650 || !scanned.PetsAllowed {
		t.Errorf("scanned = %+v, want the original thresholds", scanned)
	}
	if scanned.EmploymentTypesAllowed.Any || len(scanned.EmploymentTypesAllowed.Allowed) != 1 {
		t.Errorf("scanned policy = %+v, want the restricted set", scanned.EmploymentTypesAllowed)
	}
}
