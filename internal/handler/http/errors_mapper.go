package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/quarantine-vault/internal/crypto"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/service"
	"github.com/MKhiriev/quarantine-vault/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order: more specific errors come before the
// errors they wrap.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidContentBase64, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{ErrContentHashMismatch, http.StatusBadRequest},

	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrRecordNotFound, http.StatusNotFound},
	{service.ErrContentUnavailable, http.StatusGone},
	{service.ErrLinksNotServedLocally, http.StatusNotFound},
	{service.ErrInvalidLinkToken, http.StatusForbidden},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrKeyRecordNotFound, http.StatusInternalServerError},
	{store.ErrRecordAlreadyExists, http.StatusConflict},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable},
	{store.ErrObjectNotFound, http.StatusNotFound},
	{store.ErrInvalidObjectKey, http.StatusInternalServerError},
	{store.ErrObjectStorage, http.StatusBadGateway},

	{crypto.ErrDecryptionFailed, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
