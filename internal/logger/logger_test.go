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

// TestNew_NotNil verifies that New returns a non-nil *Logger.
func TestNew_NotNil(t *testing.T) {
	l := New("test")
	require.NotNil(t, l)
}

// TestNew_RoleField verifies that every log entry produced by a logger
// created with New contains the expected "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNew_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNew_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerFieldName verifies that the caller field is named "func".
func TestNew_CallerFieldName(t *testing.T) {
	New("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNew_GlobalLevelIsInfo verifies that New resets the global zerolog
// level to Info; the configuration resolver raises or lowers it later.
func TestNew_GlobalLevelIsInfo(t *testing.T) {
	New("level-role")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected zerolog.Level
		ok       bool
	}{
		{"trace", "trace", zerolog.TraceLevel, true},
		{"debug", "debug", zerolog.DebugLevel, true},
		{"info", "info", zerolog.InfoLevel, true},
		{"warn", "warn", zerolog.WarnLevel, true},
		{"error", "error", zerolog.ErrorLevel, true},
		{"fatal", "fatal", zerolog.FatalLevel, true},
		{"panic", "panic", zerolog.PanicLevel, true},
		{"mixed case", "DEBUG", zerolog.DebugLevel, true},
		{"surrounding space", " info ", zerolog.InfoLevel, true},
		{"unknown", "verbose", zerolog.NoLevel, false},
		{"empty", "", zerolog.NoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := ParseLevel(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func TestSetGlobalLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	SetGlobalLevel(zerolog.WarnLevel)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Equal(t, "warn", GlobalLevelName())
}
