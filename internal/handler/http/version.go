package http

import (
	"net/http"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/utils"
	"github.com/MKhiriev/go-budget-vault/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}

// health answers 200 while the database answers pings and 503 otherwise.
// The connectivity monitor of the sync client polls it.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	version := h.services.AppInfoService.GetAppVersion(ctx).Version

	if err := h.services.ChangeLogService.Ping(ctx); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("database ping failed")
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable", Version: version}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Version: version}, http.StatusOK)
}
