package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/utils"
	"github.com/MKhiriev/quarantine-vault/models"
)

func (h *Handler) store(w http.ResponseWriter, r *http.Request) {
	var req models.StoreContentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid store request")
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		writeError(w, r, ErrInvalidContentBase64, "invalid store request")
		return
	}

	id, err := h.services.QuarantineService.Store(r.Context(), content, req.QuarantineRequest)
	clear(content)
	if err != nil {
		writeError(w, r, err, "error quarantining content")
		return
	}

	utils.WriteJSON(w, models.StoreResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRecordFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "invalid list request")
		return
	}

	records, err := h.services.QuarantineService.ListRecords(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "error listing records")
		return
	}
	if records == nil {
		records = []models.QuarantineRecord{}
	}

	utils.WriteJSON(w, models.RecordListResponse{Records: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) getMetadata(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, found, err := h.services.QuarantineService.GetMetadata(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error loading record")
		return
	}
	if !found {
		http.Error(w, "quarantine record not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var update models.StatusUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid status update")
		return
	}
	update.ID = chi.URLParam(r, "id")

	// an authenticated caller is the reviewer unless one is named explicitly
	if update.ReviewedBy == nil {
		if actor, ok := utils.GetActorFromContext(r.Context()); ok {
			update.ReviewedBy = &actor
		}
	}

	if err := h.services.QuarantineService.UpdateStatus(r.Context(), update); err != nil {
		writeError(w, r, err, "error updating status")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) signedLink(w http.ResponseWriter, r *http.Request) {
	var req models.SignedLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "invalid link request")
		return
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	link, err := h.services.QuarantineService.SignedContentURL(r.Context(), chi.URLParam(r, "id"), ttl)
	if err != nil {
		writeError(w, r, err, "error signing content link")
		return
	}

	utils.WriteJSON(w, link, http.StatusOK)
}

func (h *Handler) retrieveContent(w http.ResponseWriter, r *http.Request) {
	content, record, err := h.services.QuarantineService.RetrieveContent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error retrieving content")
		return
	}

	contentType := "application/octet-stream"
	if record.ContentType != nil && *record.ContentType != "" {
		contentType = *record.ContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(contentHashHeader, record.ContentHash)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(content); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.retrieveContent").Msg("writing content failed")
	}
	clear(content)
}

func (h *Handler) sweep(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.QuarantineService.SweepExpired(r.Context(), time.Now())
	if err != nil {
		writeError(w, r, err, "expiry sweep failed")
		return
	}

	utils.WriteJSON(w, models.SweepResponse{Expired: count}, http.StatusOK)
}

// decodeJSON decodes a single JSON object from the request body, rejecting
// fields the target does not declare.
func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// parseRecordFilter reads status (repeatable or comma separated), tier,
// expires_before (RFC 3339), limit and offset.
func parseRecordFilter(query url.Values) (models.RecordFilter, error) {
	var filter models.RecordFilter

	for _, value := range query["status"] {
		for _, status := range strings.Split(value, ",") {
			if status = strings.TrimSpace(status); status != "" {
				filter.Statuses = append(filter.Statuses, models.QuarantineStatus(strings.ToUpper(status)))
			}
		}
	}

	filter.Tier = query.Get("tier")

	if raw := query.Get("expires_before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.RecordFilter{}, fmt.Errorf("%w: expires_before: %w", ErrInvalidQueryParam, err)
		}
		filter.ExpiresBefore = &t
	}

	var err error
	if filter.Limit, err = parseUintParam(query, "limit"); err != nil {
		return models.RecordFilter{}, err
	}
	if filter.Offset, err = parseUintParam(query, "offset"); err != nil {
		return models.RecordFilter{}, err
	}

	return filter, nil
}

func parseUintParam(query url.Values, name string) (uint64, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParam, name, err)
	}
	return v, nil
}
