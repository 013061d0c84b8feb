package service

import "github.com/rentora/rentora/internal/model"

// Evaluate applies a property's admission criteria to a tenant profile and
// returns the per-criterion breakdown. Pure and total: an unknown income or
// score fails that predicate rather than raising an error, and it is safe to
// call from concurrent requests.
//
// The pets, smoking and parking predicates are deliberately asymmetric: only a
// declared need binds. A tenant without pets passes the pets check no matter
// what the property's policy says, and the same shape applies to smoking and
// parking. Parking is the one cross-entity check, reading the property's
// details rather than its criteria.
func Evaluate(tenant *model.TenantProfile, criteria model.PropertyCriteria, details model.PropertyDetails) model.EligibilityVerdict {
	verdict := model.EligibilityVerdict{
		Income:     tenant.Income != nil && *tenant.Income >= criteria.MinIncome,
		Score:      tenant.Score != nil && *tenant.Score >= criteria.MinScore,
		Employment: criteria.EmploymentTypesAllowed.Allows(tenant.EmploymentType),
		Pets:       !tenant.Preferences.HasPets || criteria.PetsAllowed,
		Smoking:    !tenant.Preferences.Smokes || criteria.SmokingAllowed,
		Parking:    !tenant.Preferences.NeedsParking || details.HasParking,
	}
	verdict.Eligible = verdict.Income && verdict.Score && verdict.Employment &&
		verdict.Pets && verdict.Smoking && verdict.Parking
	return verdict
}
