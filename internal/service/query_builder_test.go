package service

import (
	"reflect"
	"testing"

	"github.com/rentora/rentora/internal/model"
)

func TestBuildSearchQuery_MergesFilterAndProfile(t *testing.T) {
	filter := &model.SearchFilter{
		MaxPrice: float64Ptr(800),
		Bedrooms: intPtr(2),
	}
	tenant := &model.TenantProfile{
		ID:     "tenant-1",
		Role:   model.RoleTenant,
		Income: float64Ptr(500),
		Score:  intPtr(600),
		Preferences: model.TenantPreferences{
			NeedsParking: true,
		},
	}

	query := BuildSearchQuery(filter, tenant, 10)

	want := []model.Predicate{
		{Field: model.FieldStatus, Op: model.OpEq, Value: "active"},
		{Field: model.FieldPrice, Op: model.OpLte, Value: 800.0},
		{Field: model.FieldBedrooms, Op: model.OpEq, Value: 2},
		{Field: model.FieldMinIncome, Op: model.OpLte, Value: 500.0},
		{Field: model.FieldMinScore, Op: model.OpLte, Value: 600},
		{Field: model.FieldHasParking, Op: model.OpEq, Value: true},
	}
	if !reflect.DeepEqual(query.Predicates, want) {
		t.Errorf("predicates = %+v, want %+v", query.Predicates, want)
	}
	if query.Limit != 10 {
		t.Errorf("limit = %d, want 10", query.Limit)
	}
}

func TestBuildSearchQuery_AlwaysMatchesActiveOnly(t *testing.T) {
	query := BuildSearchQuery(nil, nil, 10)

	want := []model.Predicate{
		{Field: model.FieldStatus, Op: model.OpEq, Value: "active"},
	}
	if !reflect.DeepEqual(query.Predicates, want) {
		t.Errorf("predicates = %+v, want status=active only", query.Predicates)
	}
}

func TestBuildSearchQuery_FilterEligibilityFieldsAddNothing(t *testing.T) {
	// What the user says about pets, smoking, employment or parking needs never
	// constrains the query; only the stored profile does.
	filter := &model.SearchFilter{
		HasPets:        boolPtr(true),
		Smokes:         boolPtr(true),
		EmploymentType: employmentPtr(model.EmploymentStudent),
		NeedsParking:   boolPtr(true),
	}

	query := BuildSearchQuery(filter, nil, 10)

	if len(query.Predicates) != 1 {
		t.Errorf("predicates = %+v, want status=active only", query.Predicates)
	}
}

func TestBuildSearchQuery_ProfileDrivenPredicates(t *testing.T) {
	tenant := &model.TenantProfile{
		ID:     "tenant-1",
		Income: float64Ptr(1200),
		Score:  intPtr(700),
		Preferences: model.TenantPreferences{
			HasPets: true,
			Smokes:  true,
		},
	}

	query := BuildSearchQuery(nil, tenant, 10)

	want := []model.Predicate{
		{Field: model.FieldStatus, Op: model.OpEq, Value: "active"},
		{Field: model.FieldMinIncome, Op: model.OpLte, Value: 1200.0},
		{Field: model.FieldMinScore, Op: model.OpLte, Value: 700},
		{Field: model.FieldPetsAllowed, Op: model.OpEq, Value: true},
		{Field: model.FieldSmokingAllowed, Op: model.OpEq, Value: true},
	}
	if !reflect.DeepEqual(query.Predicates, want) {
		t.Errorf("predicates = %+v, want %+v", query.Predicates, want)
	}
}

func TestBuildSearchQuery_UnknownIncomeAddsNoPredicate(t *testing.T) {
	tenant := &model.TenantProfile{ID: "tenant-1"}

	query := BuildSearchQuery(nil, tenant, 10)

	for _, p := range query.Predicates {
		if p.Field == model.FieldMinIncome || p.Field == model.FieldMinScore {
			t.Errorf("unexpected predicate %+v for tenant with unknown income/score", p)
		}
	}
}

func TestBuildSearchQuery_ZoneNameUsesSubstringMatch(t *testing.T) {
	filter := &model.SearchFilter{ZoneName: stringPtr("Norte")}

	query := BuildSearchQuery(filter, nil, 10)

	found := false
	for _, p := range query.Predicates {
		if p.Field == model.FieldZoneName {
			found = true
			if p.Op != model.OpContains {
				t.Errorf("zone_name op = %q, want %q", p.Op, model.OpContains)
			}
		}
	}
	if !found {
		t.Error("zone_name predicate missing")
	}
}

func TestBuildSearchQuery_EmptyZoneNameIgnored(t *testing.T) {
	filter := &model.SearchFilter{ZoneName: stringPtr("")}

	query := BuildSearchQuery(filter, nil, 10)

	for _, p := range query.Predicates {
		if p.Field == model.FieldZoneName {
			t.Errorf("unexpected zone_name predicate %+v for empty zone", p)
		}
	}
}

func TestBuildSearchQuery_FalseHasParkingIgnored(t *testing.T) {
	// has_parking=false means "no parking requirement", not "must lack parking".
	filter := &model.SearchFilter{HasParking: boolPtr(false)}

	query := BuildSearchQuery(filter, nil, 10)

	for _, p := range query.Predicates {
		if p.Field == model.FieldHasParking {
			t.Errorf("unexpected has_parking predicate %+v", p)
		}
	}
}

func TestBuildSearchQuery_DefaultsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit", 25, 25},
		{"zero", 0, DefaultResultLimit},
		{"negative", -1, DefaultResultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := BuildSearchQuery(nil, nil, tt.limit)
			if query.Limit != tt.want {
				t.Errorf("limit = %d, want %d", query.Limit, tt.want)
			}
		})
	}
}
