package action

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNilRule           = errors.New("business rule cannot be nil")
	ErrDuplicateRule     = errors.New("business rule already defined")
	ErrRulesNotSatisfied = errors.New("business rules not satisfied")
)

// DuplicateRuleError is returned when a rule type is registered twice on one action.
type DuplicateRuleError struct {
	// Action is the type name of the action the rule was registered on.
	Action string
	// Rule is the type name of the colliding rule.
	Rule string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("business rule %s is already defined in action %s", e.Rule, e.Action)
}

// Is matches ErrDuplicateRule.
func (e *DuplicateRuleError) Is(target error) bool {
	return target == ErrDuplicateRule
}

// Violation pairs a failing rule with its failure message.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// RulesNotSatisfiedError carries every rule that failed during an evaluation,
// in registration order.
type RulesNotSatisfiedError struct {
	FailingRules []Rule
}

func (e *RulesNotSatisfiedError) Error() string {
	names := make([]string, 0, len(e.FailingRules))
	for _, rule := range e.FailingRules {
		names = append(names, RuleName(rule))
	}
	return fmt.Sprintf("business rules (%s) are not satisfied", strings.Join(names, ", "))
}

// Is matches ErrRulesNotSatisfied.
func (e *RulesNotSatisfiedError) Is(target error) bool {
	return target == ErrRulesNotSatisfied
}

// FailingRulesMessages returns the failure message of each failing rule, in order.
func (e *RulesNotSatisfiedError) FailingRulesMessages() []string {
	messages := make([]string, 0, len(e.FailingRules))
	for _, rule := range e.FailingRules {
		messages = append(messages, rule.FailureMessage())
	}
	return messages
}

// Violations returns the failing rules as name/message pairs, in order.
func (e *RulesNotSatisfiedError) Violations() []Violation {
	violations := make([]Violation, 0, len(e.FailingRules))
	for _, rule := range e.FailingRules {
		violations = append(violations, Violation{
			Rule:    RuleName(rule),
			Message: rule.FailureMessage(),
		})
	}
	return violations
}
