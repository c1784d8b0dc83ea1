package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// getServerVersion answers GET /api/version/ with the running version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, version, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version response")
	}
}
