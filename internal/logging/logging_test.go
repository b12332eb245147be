package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONLevelAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "warn", Format: FormatJSON}, &buf)
	l = ComponentLogger(l, "source")

	l.Info().Msg("hidden")
	l.Warn().Str("endpoint", "http://example").Msg("fetch failed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "source", entry["component"])
	assert.Equal(t, "fetch failed", entry["message"])
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "loud", Format: FormatJSON}, &buf)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("stderr", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Level: "info", Output: OutputStderr})
		assert.False(t, result.UsingFile)
		assert.False(t, result.FallbackUsed)
		assert.NoError(t, result.Close())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "countrylist.log")
		result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)

		result.Logger.Info().Msg("hello")
		require.NoError(t, result.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})

	t.Run("fallback", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		result := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "x.log")})
		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Format: FormatJSON}, &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")

	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "denied")
	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}
