package action

//go:generate mockgen -source=rule.go -destination=mock_rule.go -package=action

import (
	"context"
	"reflect"
)

// Rule represents a business precondition that must hold before an action runs.
type Rule interface {
	// IsSatisfied reports whether the precondition currently holds.
	// It must not mutate the action or its dependencies.
	IsSatisfied() bool

	// FailureMessage returns a human-readable explanation of the failure.
	// It must be safe to call regardless of the current satisfaction state.
	FailureMessage() string
}

// ContextRule is a Rule whose check may block or fail, e.g. a lookup in a store.
// When a rule implements ContextRule the engine calls Check instead of IsSatisfied.
type ContextRule interface {
	Rule

	// Check reports whether the precondition holds.
	// A non-nil error aborts evaluation and is returned to the caller unchanged.
	Check(ctx context.Context) (bool, error)
}

// RuleName returns the concrete type name of the rule, e.g. "orders.OrderIsConfirmed".
func RuleName(rule Rule) string {
	if rule == nil {
		return "<nil>"
	}
	return typeName(reflect.TypeOf(rule))
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// check evaluates a single rule.
func check(ctx context.Context, rule Rule) (bool, error) {
	if cr, ok := rule.(ContextRule); ok {
		return cr.Check(ctx)
	}
	return rule.IsSatisfied(), nil
}
