package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NotNil(t *testing.T) {
	require.NotNil(t, New("test", "debug", FormatJSON))
}

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "mcp", "info", FormatJSON)

	l.Component("watcher").Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "mcp", entry["role"])
	assert.Equal(t, "watcher", entry["component"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "cli", "warn", FormatJSON)

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "cli", "info", "Console")

	l.Info().Msg("readable")

	assert.Contains(t, buf.String(), "readable")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "console output should not be JSON")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "ctx", "info", FormatJSON)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx", entry["role"])
}

func TestFromContext_Empty(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
