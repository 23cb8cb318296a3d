// Package action runs units of business logic gated by business rules.
//
// A concrete action embeds Rules, registers its rules while it is
// constructed and implements Handle. Perform evaluates every registered rule
// and only calls Handle when none of them fail:
//
//	type CancelOrder struct {
//		action.Rules
//		order *Order
//	}
//
//	func NewCancelOrder(order *Order) (*CancelOrder, error) {
//		a := &CancelOrder{order: order}
//		if err := action.RegisterBusinessRule(a, OrderIsNotDispatched{order}); err != nil {
//			return nil, err
//		}
//		return a, nil
//	}
//
//	func (a *CancelOrder) Handle(ctx context.Context) (*Order, error) { ... }
//
//	order, err := action.Do(NewCancelOrder(order))
package action

import (
	"context"
	"reflect"

	"github.com/rs/zerolog"
)

// Rules holds the business rules registered on an action.
// Embed it in an action to satisfy RuleHolder.
type Rules struct {
	rules   []Rule
	failing []Rule
}

// RuleHolder is implemented by types that embed Rules.
type RuleHolder interface {
	ruleSet() *Rules
}

// Action is a unit of business logic producing a T.
type Action[T any] interface {
	RuleHolder

	// Handle runs the domain logic. It is only called once every rule is satisfied.
	Handle(ctx context.Context) (T, error)
}

func (r *Rules) ruleSet() *Rules {
	return r
}

// BusinessRules returns the registered rules in registration order.
func (r *Rules) BusinessRules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// FailingRules returns the rules that failed the most recent evaluation.
func (r *Rules) FailingRules() []Rule {
	return append([]Rule(nil), r.failing...)
}

// HasBusinessRules reports whether any rule is registered.
func (r *Rules) HasBusinessRules() bool {
	return len(r.rules) > 0
}

func (r *Rules) isAlreadyDefined(rule Rule) bool {
	t := reflect.TypeOf(rule)
	for _, existing := range r.rules {
		if reflect.TypeOf(existing) == t {
			return true
		}
	}
	return false
}

// RegisterBusinessRule registers rule on the action.
// A rule whose concrete type is already registered is rejected with a *DuplicateRuleError.
func RegisterBusinessRule(a RuleHolder, rule Rule) error {
	if rule == nil {
		return ErrNilRule
	}

	r := a.ruleSet()
	if r.isAlreadyDefined(rule) {
		return &DuplicateRuleError{
			Action: typeName(reflect.TypeOf(a)),
			Rule:   RuleName(rule),
		}
	}

	r.rules = append(r.rules, rule)
	return nil
}

// RegisterBusinessRules registers rules one at a time, in order.
// It stops at the first rule that cannot be registered; rules registered
// before it stay registered.
func RegisterBusinessRules(a RuleHolder, rules ...Rule) error {
	for _, rule := range rules {
		if err := RegisterBusinessRule(a, rule); err != nil {
			return err
		}
	}
	return nil
}

// evaluate checks every registered rule without short-circuiting.
// Returns a *RulesNotSatisfiedError when at least one rule fails.
func (r *Rules) evaluate(ctx context.Context, actionName string) error {
	r.failing = nil

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("action", actionName).
		Int("rules", len(r.rules)).
		Msg("evaluating business rules")

	for _, rule := range r.rules {
		satisfied, err := check(ctx, rule)
		if err != nil {
			return err
		}
		if !satisfied {
			logger.Debug().
				Str("action", actionName).
				Str("rule", RuleName(rule)).
				Msg("business rule not satisfied")
			r.failing = append(r.failing, rule)
		}
	}

	if len(r.failing) > 0 {
		logger.Info().
			Str("action", actionName).
			Int("failing", len(r.failing)).
			Msg("action blocked by business rules")
		return &RulesNotSatisfiedError{FailingRules: append([]Rule(nil), r.failing...)}
	}

	return nil
}

// Perform evaluates the action's rules and runs its handler if all of them are satisfied.
// Errors returned by Handle or by a ContextRule are returned unchanged.
func Perform[T any](ctx context.Context, a Action[T]) (T, error) {
	r := a.ruleSet()
	if r.HasBusinessRules() {
		if err := r.evaluate(ctx, typeName(reflect.TypeOf(a))); err != nil {
			var zero T
			return zero, err
		}
	}

	return a.Handle(ctx)
}

// Do performs the action returned by a constructor, e.g. Do(NewReverseString("hello")).
// A non-nil constructor error is returned as is.
func Do[T any](a Action[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return Perform(context.Background(), a)
}
