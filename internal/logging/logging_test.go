package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
		wantErr   bool
	}{
		{name: "debug", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "upper case warn", level: "WARN", wantLevel: zerolog.WarnLevel},
		{name: "padded error", level: " error ", wantLevel: zerolog.ErrorLevel},
		{name: "empty defaults to info", level: "", wantLevel: zerolog.InfoLevel},
		{name: "unknown level", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got, err := New(&buf, tt.level)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, got.GetLevel())
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("action", "orders.CancelOrder").Msg("performed")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"action":"orders.CancelOrder"`)
	assert.Contains(t, buf.String(), `"message":"performed"`)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewConsole(&buf, "info")
	require.NoError(t, err)

	logger.Info().Str("rule", "orders.OrderIsConfirmed").Msg("blocked")

	assert.Contains(t, buf.String(), "blocked")
	assert.Contains(t, buf.String(), "rule=orders.OrderIsConfirmed")
}
