package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/utils"
	"github.com/MKhiriev/quarantine-vault/models"
)

const contentHashHeader = "X-Content-SHA256"

// contentIntegrity verifies the optional X-Content-SHA256 header of a
// quarantine submission against the hex SHA-256 of the decoded content.
// Requests without the header pass unchecked. Malformed bodies are left
// for the handler to reject.
func (h *Handler) contentIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := strings.ToLower(strings.TrimSpace(r.Header.Get(contentHashHeader)))
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.contentIntegrity").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.StoreContentRequest
		if err = json.Unmarshal(body, &req); err != nil {
			next.ServeHTTP(w, r)
			return
		}
		content, err := base64.StdEncoding.DecodeString(req.ContentBase64)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if actual := utils.ContentHash(content); actual != expected {
			log.Warn().Str("func", "*Handler.contentIntegrity").
				Str("expected", expected).
				Str("actual", actual).
				Msg("content hashes are not equal")
			http.Error(w, ErrContentHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
