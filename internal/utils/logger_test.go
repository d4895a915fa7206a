package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer, level string) *Logger {
	return NewLogger(LoggerOptions{Level: level, Format: "json", Output: buf})
}

func TestNewLogger(t *testing.T) {
	t.Run("zero options", func(t *testing.T) {
		logger := NewLogger(LoggerOptions{})
		require.NotNil(t, logger)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		newJSONLogger(&buf, "info").Info().Msg("test")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test", entry["message"])
		assert.Equal(t, "info", entry["level"])
		assert.Contains(t, entry, "time")
	})

	t.Run("pretty output to a buffer has no color", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Format: "pretty", Output: &buf})
		logger.Info().Msg("test")

		assert.Contains(t, buf.String(), "test")
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("verbose forces debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Level: "error", Format: "json", Output: &buf, Verbose: true})
		logger.Debug().Msg("debug test")
		assert.Contains(t, buf.String(), "debug test")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" WARN ", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logFunc   func(*Logger)
		shouldLog bool
	}{
		{"debug level logs debug", "debug", func(l *Logger) { l.Debug().Msg("debug") }, true},
		{"info level drops debug", "info", func(l *Logger) { l.Debug().Msg("debug") }, false},
		{"warn level drops info", "warn", func(l *Logger) { l.Info().Msg("info") }, false},
		{"error level logs error", "error", func(l *Logger) { l.Error().Msg("error") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newJSONLogger(&buf, tt.level))

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "info").
		WithComponent("writer").
		WithRoot("/srv/project").
		WithFile("src/main.go")

	logger.Info().Msg("field test")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "writer", entry["component"])
	assert.Equal(t, "/srv/project", entry["root"])
	assert.Equal(t, "src/main.go", entry["file"])
	assert.Equal(t, "field test", entry["message"])
}

func TestLoggerFields_DoNotLeakToParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newJSONLogger(&buf, "info")
	_ = parent.WithFile("a.go")

	parent.Info().Msg("plain")
	assert.NotContains(t, buf.String(), "a.go")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.Info().Msg("discarded")
	})
}
