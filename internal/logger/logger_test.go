package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("quarantine-server", WithOutput(&buf))

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "quarantine-server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctl", WithOutput(&buf), WithLevel("warn"))

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Equal(t, "warn", decodeEntry(t, &buf)["level"])
}

func TestNewLogger_UnknownLevelKeepsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctl", WithOutput(&buf), WithLevel("loud"))

	l.Debug().Msg("visible")
	assert.NotZero(t, buf.Len())
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Error().Msg("nothing") })
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent", WithOutput(&buf))

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("record_id", "r-1").Logger()

	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "record_id")

	buf.Reset()
	child.Info().Msg("child")
	assert.Equal(t, "r-1", decodeEntry(t, &buf)["record_id"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx", WithOutput(&buf))
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")
	assert.Equal(t, "ctx", decodeEntry(t, &buf)["role"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("req", WithOutput(&buf))
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")
	assert.Equal(t, "req", decodeEntry(t, &buf)["role"])
}
