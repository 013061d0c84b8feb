package model

// PredicateOp is a comparison operator in a property query
type PredicateOp string

const (
	OpEq       PredicateOp = "eq"
	OpLte      PredicateOp = "lte"
	OpGte      PredicateOp = "gte"
	OpContains PredicateOp = "contains" // case-insensitive substring
)

// Logical predicate fields understood by the property store. Dotted names
// address fields inside the details/criteria sub-objects.
const (
	FieldStatus         = "status"
	FieldZoneName       = "zone_name"
	FieldPrice          = "details.price"
	FieldBedrooms       = "details.bedrooms"
	FieldHasParking     = "details.has_parking"
	FieldMinIncome      = "criteria.min_income"
	FieldMinScore       = "criteria.min_score"
	FieldPetsAllowed    = "criteria.pets_allowed"
	FieldSmokingAllowed = "criteria.smoking_allowed"
)

// Predicate is a single constraint: <field> <op> <value>.
type Predicate struct {
	Field string      `json:"field"`
	Op    PredicateOp `json:"op"`
	Value interface{} `json:"value"`
}

// PropertyQuery is a conjunction of predicates with a bounded result window.
// Callers must not assume completeness of results beyond the limit.
type PropertyQuery struct {
	Predicates []Predicate `json:"predicates"`
	Limit      int         `json:"limit"`
}
