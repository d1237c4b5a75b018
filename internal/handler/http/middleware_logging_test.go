package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger attaches a JSON logger writing to buf to the request.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_AccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"x"}`))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, requestWithLogger(http.MethodPost, "/api/quarantine", &buf))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "unmatched", entry["route"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 10, entry["size"])
	assert.Contains(t, entry, "duration")
}

func TestWithLogging_ServerErrorsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/x", &buf))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
}

func TestWithLogging_DoesNotLogBody(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plaintext-secret"))
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/x", &buf))

	assert.NotContains(t, buf.String(), "plaintext-secret")
}

func TestWithLogging_LogsRoutePatternNotToken(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{}

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/content/{token}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/api/content/eyJsecret-token", &buf))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/content/{token}", entry["route"])
	assert.NotContains(t, buf.String(), "eyJsecret-token")
}
