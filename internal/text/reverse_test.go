package text

import (
	"context"
	"testing"

	"github.com/michael-freling/business-actions/pkg/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "reverses ascii", input: "hello", want: "olleh"},
		{name: "reverses digits", input: "0012345678", want: "8765432100"},
		{name: "keeps multibyte runes intact", input: "héllo, 世界", want: "界世 ,olléh"},
		{name: "empty string", input: "", want: ""},
		{name: "single rune", input: "a", want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewReverseString(tt.input)
			require.NoError(t, err)
			assert.False(t, a.HasBusinessRules())

			got, err := action.Perform(context.Background(), a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			viaDo, err := action.Do(NewReverseString(tt.input))
			require.NoError(t, err)
			assert.Equal(t, got, viaDo)
		})
	}
}
