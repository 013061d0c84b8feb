package service

import (
	"fmt"
	"math"

	"github.com/rentora/rentora/internal/model"
)

// SearchFunctionName is the function the model is forced to call when
// extracting search filters.
const SearchFunctionName = "search_properties"

// Filter field names. These are the wire contract with the completion service:
// the function parameter schema and the validator must agree on them exactly.
const (
	fieldMaxPrice       = "max_price"
	fieldBedrooms       = "bedrooms"
	fieldZoneName       = "zone_name"
	fieldHasParking     = "has_parking"
	fieldHasPets        = "has_pets"
	fieldSmokes         = "smokes"
	fieldEmploymentType = "employment_type"
	fieldNeedsParking   = "needs_parking"
)

// SearchFunction returns the function descriptor whose parameter schema
// mirrors model.SearchFilter. All parameters are optional.
func SearchFunction() FunctionDefinition {
	employmentValues := make([]string, len(model.EmploymentTypes))
	for i, t := range model.EmploymentTypes {
		employmentValues[i] = string(t)
	}

	return FunctionDefinition{
		Name:        SearchFunctionName,
		Description: "Busca propiedades de alquiler basándose en los criterios del usuario extraídos del lenguaje natural",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				fieldMaxPrice: map[string]interface{}{
					"type":        "number",
					"description": "Precio máximo de alquiler mensual en dólares",
				},
				fieldBedrooms: map[string]interface{}{
					"type":        "number",
					"description": "Número de habitaciones deseadas",
				},
				fieldZoneName: map[string]interface{}{
					"type":        "string",
					"description": `Nombre de la zona o barrio (ej: "Providencia", "Centro", "Norte")`,
				},
				fieldHasParking: map[string]interface{}{
					"type":        "boolean",
					"description": "¿La propiedad debe tener estacionamiento?",
				},
				fieldHasPets: map[string]interface{}{
					"type":        "boolean",
					"description": "¿El usuario tiene mascotas?",
				},
				fieldSmokes: map[string]interface{}{
					"type":        "boolean",
					"description": "¿El usuario fuma?",
				},
				fieldEmploymentType: map[string]interface{}{
					"type":        "string",
					"enum":        employmentValues,
					"description": "Tipo de empleo del usuario",
				},
				fieldNeedsParking: map[string]interface{}{
					"type":        "boolean",
					"description": "¿El usuario necesita estacionamiento?",
				},
			},
			"required": []string{},
		},
	}
}

// ValidateFilter checks raw extracted data against the filter schema and
// returns a normalized SearchFilter. Each present field is independently type
// and range checked; unknown fields are ignored so a model emitting extra keys
// does not break extraction; missing or null fields stay unconstrained.
// Validation fails on the first violation and never coerces an invalid value
// into a default.
func ValidateFilter(raw map[string]interface{}) (*model.SearchFilter, error) {
	filter := &model.SearchFilter{}

	if v, ok := present(raw, fieldMaxPrice); ok {
		price, err := positiveNumber(fieldMaxPrice, v)
		if err != nil {
			return nil, err
		}
		filter.MaxPrice = &price
	}

	if v, ok := present(raw, fieldBedrooms); ok {
		bedrooms, err := positiveInteger(fieldBedrooms, v)
		if err != nil {
			return nil, err
		}
		filter.Bedrooms = &bedrooms
	}

	if v, ok := present(raw, fieldZoneName); ok {
		zone, err := stringValue(fieldZoneName, v)
		if err != nil {
			return nil, err
		}
		filter.ZoneName = &zone
	}

	if v, ok := present(raw, fieldHasParking); ok {
		b, err := boolValue(fieldHasParking, v)
		if err != nil {
			return nil, err
		}
		filter.HasParking = &b
	}

	if v, ok := present(raw, fieldHasPets); ok {
		b, err := boolValue(fieldHasPets, v)
		if err != nil {
			return nil, err
		}
		filter.HasPets = &b
	}

	if v, ok := present(raw, fieldSmokes); ok {
		b, err := boolValue(fieldSmokes, v)
		if err != nil {
			return nil, err
		}
		filter.Smokes = &b
	}

	if v, ok := present(raw, fieldEmploymentType); ok {
		s, err := stringValue(fieldEmploymentType, v)
		if err != nil {
			return nil, err
		}
		employment := model.EmploymentType(s)
		if !employment.Valid() {
			return nil, &ValidationError{Field: fieldEmploymentType, Reason: fmt.Sprintf("unknown employment type %q", s)}
		}
		filter.EmploymentType = &employment
	}

	if v, ok := present(raw, fieldNeedsParking); ok {
		b, err := boolValue(fieldNeedsParking, v)
		if err != nil {
			return nil, err
		}
		filter.NeedsParking = &b
	}

	return filter, nil
}

// present reports whether a field carries a usable value. JSON null counts as
// absent.
func present(raw map[string]interface{}, field string) (interface{}, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func positiveNumber(field string, v interface{}) (float64, error) {
	n, ok := numeric(v)
	if !ok {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("expected a number, got %T", v)}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("must be positive, got %v", n)}
	}
	return n, nil
}

func positiveInteger(field string, v interface{}) (int, error) {
	n, ok := numeric(v)
	if !ok {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("expected an integer, got %T", v)}
	}
	if n != math.Trunc(n) {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("expected an integer, got %v", n)}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("must be positive, got %v", n)}
	}
	return int(n), nil
}

func stringValue(field string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("expected a string, got %T", v)}
	}
	return s, nil
}

func boolValue(field string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &ValidationError{Field: field, Reason: fmt.Sprintf("expected a boolean, got %T", v)}
	}
	return b, nil
}

// numeric accepts the types json.Unmarshal may produce for numbers.
func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
