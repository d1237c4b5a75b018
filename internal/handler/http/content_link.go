package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
)

// serveContentLink serves the ciphertext blob behind a link signed by the
// fs object backend. The response is not decrypted.
func (h *Handler) serveContentLink(w http.ResponseWriter, r *http.Request) {
	if !h.services.ContentLinkService.Enabled() {
		http.NotFound(w, r)
		return
	}

	blob, err := h.services.ContentLinkService.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, err, "error resolving content link")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(blob); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.serveContentLink").Msg("writing blob failed")
	}
}
