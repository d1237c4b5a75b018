package http

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// maxDecompressedBodySize caps the bytes a handler may read from a
// decompressed request body.
var maxDecompressedBodySize int64 = 32 << 20

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		return dec
	},
}

// withRequestDecompression transparently decompresses request bodies sent
// with "Content-Encoding: gzip" or "Content-Encoding: zstd". Response
// compression is left to chi's Compress middleware. Reading more than
// maxDecompressedBodySize decompressed bytes fails with *http.MaxBytesError.
func withRequestDecompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body == nil {
			next.ServeHTTP(w, req)
			return
		}

		encoding := strings.ToLower(req.Header.Get("Content-Encoding"))
		var (
			reader  io.Reader
			release func()
		)

		switch {
		case strings.Contains(encoding, "gzip"):
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			reader = gzipReader
			release = func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			}
		case strings.Contains(encoding, "zstd"):
			dec, ok := zstdDecoderPool.Get().(*zstd.Decoder)
			if !ok || dec == nil {
				http.Error(w, "zstd is unavailable", http.StatusInternalServerError)
				return
			}
			if err := dec.Reset(req.Body); err != nil {
				zstdDecoderPool.Put(dec)
				http.Error(w, "Invalid zstd data", http.StatusBadRequest)
				return
			}
			reader = dec
			release = func() {
				// drop the reference to the request body before pooling
				_ = dec.Reset(nil)
				zstdDecoderPool.Put(dec)
			}
		default:
			next.ServeHTTP(w, req)
			return
		}

		body := req.Body
		wrapped := &wrappedReadCloser{
			Reader: http.MaxBytesReader(w, io.NopCloser(reader), maxDecompressedBodySize),
			OnClose: func() {
				release()
				body.Close()
			},
		}
		// handlers are not required to close the body; the decoder goes back
		// to its pool only after Close
		defer wrapped.Close()

		req.Body = wrapped
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

// wrappedReadCloser runs OnClose once on the first Close.
type wrappedReadCloser struct {
	io.Reader
	OnClose func()
	once    sync.Once
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.once.Do(w.OnClose)
	}
	return nil
}
