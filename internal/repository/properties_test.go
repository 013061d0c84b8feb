package repository

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rentora/rentora/internal/model"
)

func TestBuildPredicateClauses(t *testing.T) {
	predicates := []model.Predicate{
		{Field: model.FieldStatus, Op: model.OpEq, Value: "active"},
		{Field: model.FieldPrice, Op: model.OpLte, Value: 800.0},
		{Field: model.FieldBedrooms, Op: model.OpEq, Value: 2},
		{Field: model.FieldMinIncome, Op: model.OpLte, Value: 500.0},
		{Field: model.FieldHasParking, Op: model.OpEq, Value: true},
	}

	clauses, args, err := buildPredicateClauses(predicates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantClauses := []string{
		"1=1",
		"status = $1",
		"(details_json->>'price')::numeric <= $2",
		"(details_json->>'bedrooms')::int = $3",
		"(criteria_json->>'min_income')::numeric <= $4",
		"(details_json->>'has_parking')::boolean = $5",
	}
	if !reflect.DeepEqual(clauses, wantClauses) {
		t.Errorf("clauses = %v, want %v", clauses, wantClauses)
	}

	wantArgs := []interface{}{"active", 800.0, 2, 500.0, true}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestBuildPredicateClauses_ContainsWrapsPattern(t *testing.T) {
	clauses, args, err := buildPredicateClauses([]model.Predicate{
		{Field: model.FieldZoneName, Op: model.OpContains, Value: "Centro"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(clauses) != 2 || !strings.Contains(clauses[1], "ILIKE") {
		t.Errorf("clauses = %v, want a zone_name ILIKE clause", clauses)
	}
	if len(args) != 1 || args[0] != "%Centro%" {
		t.Errorf("args = %v, want the value wrapped in wildcards", args)
	}
}

func TestBuildPredicateClauses_EmptyConjunction(t *testing.T) {
	clauses, args, err := buildPredicateClauses(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(clauses, []string{"1=1"}) {
		t.Errorf("clauses = %v, want just the tautology", clauses)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildPredicateClauses_UnknownField(t *testing.T) {
	_, _, err := buildPredicateClauses([]model.Predicate{
		{Field: "details.pool", Op: model.OpEq, Value: true},
	})
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
	if !strings.Contains(err.Error(), "details.pool") {
		t.Errorf("error %q should name the offending field", err)
	}
}

func TestBuildPredicateClauses_UnknownOp(t *testing.T) {
	_, _, err := buildPredicateClauses([]model.Predicate{
		{Field: model.FieldStatus, Op: model.PredicateOp("between"), Value: "active"},
	})
	if err == nil {
		t.Fatal("expected an error for an unknown operator")
	}
}

func TestBuildPredicateClauses_ArgPositionsStaySequential(t *testing.T) {
	clauses, args, err := buildPredicateClauses([]model.Predicate{
		{Field: model.FieldStatus, Op: model.OpEq, Value: "active"},
		{Field: model.FieldZoneName, Op: model.OpContains, Value: "Norte"},
		{Field: model.FieldMinScore, Op: model.OpLte, Value: 700},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, clause := range clauses[1:] {
		placeholder := "$" + string(rune('1'+i))
		if !strings.Contains(clause, placeholder) {
			t.Errorf("clause %q should use placeholder %s", clause, placeholder)
		}
	}
	if len(args) != 3 {
		t.Errorf("args = %d, want 3", len(args))
	}
}
