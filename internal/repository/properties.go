package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rentora/rentora/internal/model"
)

const propertyColumns = "id, landlord_id, zone_name, details_json, criteria_json, status, created_at"

// predicateColumns maps logical predicate fields to SQL expressions. Dotted
// fields address keys inside the JSONB sub-documents and cast the extracted
// text to a comparable type.
var predicateColumns = map[string]string{
	model.FieldStatus:         "status",
	model.FieldZoneName:       "zone_name",
	model.FieldPrice:          "(details_json->>'price')::numeric",
	model.FieldBedrooms:       "(details_json->>'bedrooms')::int",
	model.FieldHasParking:     "(details_json->>'has_parking')::boolean",
	model.FieldMinIncome:      "(criteria_json->>'min_income')::numeric",
	model.FieldMinScore:       "(criteria_json->>'min_score')::int",
	model.FieldPetsAllowed:    "(criteria_json->>'pets_allowed')::boolean",
	model.FieldSmokingAllowed: "(criteria_json->>'smoking_allowed')::boolean",
}

// SearchProperties executes a predicate-set query against the properties
// table. Unknown predicate fields are a caller defect, reported as a plain
// error rather than a StoreFault.
func (r *PostgresRepository) SearchProperties(ctx context.Context, query model.PropertyQuery) ([]model.Property, error) {
	whereClauses, args, err := buildPredicateClauses(query.Predicates)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM properties
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d
	`, propertyColumns, strings.Join(whereClauses, " AND "), len(args)+1)
	args = append(args, limit)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, selectQuery, args...); err != nil {
		return nil, &StoreFault{Op: "search properties", Err: err}
	}

	return properties, nil
}

// buildPredicateClauses translates a predicate conjunction into WHERE clauses
// with positional args.
func buildPredicateClauses(predicates []model.Predicate) ([]string, []interface{}, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	for _, p := range predicates {
		column, ok := predicateColumns[p.Field]
		if !ok {
			return nil, nil, fmt.Errorf("unknown predicate field %q", p.Field)
		}

		switch p.Op {
		case model.OpEq:
			whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", column, argIndex))
			args = append(args, p.Value)
		case model.OpLte:
			whereClauses = append(whereClauses, fmt.Sprintf("%s <= $%d", column, argIndex))
			args = append(args, p.Value)
		case model.OpGte:
			whereClauses = append(whereClauses, fmt.Sprintf("%s >= $%d", column, argIndex))
			args = append(args, p.Value)
		case model.OpContains:
			whereClauses = append(whereClauses, fmt.Sprintf("%s ILIKE $%d", column, argIndex))
			args = append(args, fmt.Sprintf("%%%v%%", p.Value))
		default:
			return nil, nil, fmt.Errorf("unknown predicate op %q", p.Op)
		}
		argIndex++
	}

	return whereClauses, args, nil
}

// GetProperty retrieves a single property by its ID
func (r *PostgresRepository) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	var property model.Property
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1", propertyColumns)

	if err := r.db.GetContext(ctx, &property, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &StoreFault{Op: "get property", Err: err}
	}
	return &property, nil
}

// ListPropertiesByLandlord returns every property owned by the landlord,
// regardless of status
func (r *PostgresRepository) ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]model.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE landlord_id = $1 ORDER BY created_at DESC", propertyColumns)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, landlordID); err != nil {
		return nil, &StoreFault{Op: "list landlord properties", Err: err}
	}
	return properties, nil
}

// ListActiveProperties returns every active listing
func (r *PostgresRepository) ListActiveProperties(ctx context.Context) ([]model.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE status = $1 ORDER BY created_at DESC", propertyColumns)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, string(model.PropertyActive)); err != nil {
		return nil, &StoreFault{Op: "list active properties", Err: err}
	}
	return properties, nil
}
