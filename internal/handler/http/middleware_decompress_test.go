package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

// echo writes back the request body and its Content-Encoding.
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("X-Seen-Encoding", r.Header.Get("Content-Encoding"))
	_, _ = w.Write(body)
})

func TestWithRequestDecompression(t *testing.T) {
	payload := []byte(`{"tier":"HIGH"}`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{name: "gzip", encoding: "gzip", body: gzipBytes(t, payload)},
		{name: "zstd", encoding: "zstd", body: zstdBytes(t, payload)},
		{name: "mixed case", encoding: "GZIP", body: gzipBytes(t, payload)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			req.Header.Set("Content-Encoding", tt.encoding)

			rr := httptest.NewRecorder()
			withRequestDecompression(echo).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, string(payload), rr.Body.String())
			assert.Empty(t, rr.Header().Get("X-Seen-Encoding"))
		})
	}
}

func TestWithRequestDecompression_PlainPassThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))

	rr := httptest.NewRecorder()
	withRequestDecompression(echo).ServeHTTP(rr, req)

	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithRequestDecompression_InvalidGzip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withRequestDecompression(echo).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithRequestDecompression_InvalidZstd(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not zstd")))
	req.Header.Set("Content-Encoding", "zstd")

	rr := httptest.NewRecorder()
	withRequestDecompression(echo).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWrappedReadCloser_ClosesOnce(t *testing.T) {
	calls := 0
	rc := &wrappedReadCloser{Reader: bytes.NewReader(nil), OnClose: func() { calls++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())
	assert.Equal(t, 1, calls)
}

type trackingBody struct {
	io.Reader
	closed int
}

func (b *trackingBody) Close() error {
	b.closed++
	return nil
}

func TestWithRequestDecompression_ReleasesBodyWhenHandlerDoesNotClose(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{name: "gzip", encoding: "gzip", body: gzipBytes(t, []byte("payload"))},
		{name: "zstd", encoding: "zstd", body: zstdBytes(t, []byte("payload"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := &trackingBody{Reader: bytes.NewReader(tt.body)}
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Body = original
			req.Header.Set("Content-Encoding", tt.encoding)

			readOnly := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.ReadAll(r.Body)
				w.WriteHeader(http.StatusNoContent)
			})

			rr := httptest.NewRecorder()
			withRequestDecompression(readOnly).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, 1, original.closed)
		})
	}
}

func TestWithRequestDecompression_LimitsDecompressedSize(t *testing.T) {
	limit := maxDecompressedBodySize
	maxDecompressedBodySize = 16
	t.Cleanup(func() { maxDecompressedBodySize = limit })

	payload := bytes.Repeat([]byte("a"), 1024)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withRequestDecompression(echo).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "request body too large")
}
