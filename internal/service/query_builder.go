package service

import "github.com/rentora/rentora/internal/model"

// DefaultResultLimit caps one search turn's result window when no limit is
// configured.
const DefaultResultLimit = 10

// BuildSearchQuery merges an extracted filter with the tenant's own profile
// into a conjunction of predicates against the property collection. The filter
// narrows the search to what the user asked for; the profile-derived
// predicates enforce eligibility server-side regardless of what the utterance
// mentioned. Only active listings are ever matched.
//
// The filter's has_pets/smokes/employment_type/needs_parking fields add no
// predicates: the tenant's stored profile, not the utterance, drives
// eligibility.
func BuildSearchQuery(filter *model.SearchFilter, tenant *model.TenantProfile, limit int) model.PropertyQuery {
	predicates := []model.Predicate{
		{Field: model.FieldStatus, Op: model.OpEq, Value: string(model.PropertyActive)},
	}

	if filter != nil {
		if filter.MaxPrice != nil {
			predicates = append(predicates, model.Predicate{Field: model.FieldPrice, Op: model.OpLte, Value: *filter.MaxPrice})
		}
		if filter.Bedrooms != nil {
			predicates = append(predicates, model.Predicate{Field: model.FieldBedrooms, Op: model.OpEq, Value: *filter.Bedrooms})
		}
		if filter.ZoneName != nil && *filter.ZoneName != "" {
			predicates = append(predicates, model.Predicate{Field: model.FieldZoneName, Op: model.OpContains, Value: *filter.ZoneName})
		}
		if filter.HasParking != nil && *filter.HasParking {
			predicates = append(predicates, model.Predicate{Field: model.FieldHasParking, Op: model.OpEq, Value: true})
		}
	}

	if tenant != nil {
		if tenant.Income != nil {
			predicates = append(predicates, model.Predicate{Field: model.FieldMinIncome, Op: model.OpLte, Value: *tenant.Income})
		}
		if tenant.Score != nil {
			predicates = append(predicates, model.Predicate{Field: model.FieldMinScore, Op: model.OpLte, Value: *tenant.Score})
		}
		if tenant.Preferences.HasPets {
			predicates = append(predicates, model.Predicate{Field: model.FieldPetsAllowed, Op: model.OpEq, Value: true})
		}
		if tenant.Preferences.Smokes {
			predicates = append(predicates, model.Predicate{Field: model.FieldSmokingAllowed, Op: model.OpEq, Value: true})
		}
		if tenant.Preferences.NeedsParking {
			predicates = append(predicates, model.Predicate{Field: model.FieldHasParking, Op: model.OpEq, Value: true})
		}
	}

	if limit <= 0 {
		limit = DefaultResultLimit
	}

	return model.PropertyQuery{Predicates: predicates, Limit: limit}
}
