package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/quarantine-vault/internal/utils"
	"github.com/MKhiriev/quarantine-vault/models"
)

// getServerVersion answers with plain text unless the caller accepts JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		utils.WriteJSON(w, models.VersionResponse{Version: serverVersion}, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
