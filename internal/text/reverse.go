package text

import (
	"context"

	"github.com/michael-freling/business-actions/pkg/action"
)

// ReverseString reverses a string. It has no business rules.
type ReverseString struct {
	action.Rules
	input string
}

// NewReverseString creates the action for input.
func NewReverseString(input string) (*ReverseString, error) {
	return &ReverseString{input: input}, nil
}

// Handle returns the input with its runes in reverse order.
func (a *ReverseString) Handle(ctx context.Context) (string, error) {
	runes := []rune(a.input)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}
