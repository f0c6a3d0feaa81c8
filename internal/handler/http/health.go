package http

import (
	"net/http"

	"github.com/MKhiriev/freight-calculator/internal/app"
	"github.com/MKhiriev/freight-calculator/internal/utils"
	"github.com/MKhiriev/freight-calculator/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.HealthResponse{
		Success: true,
		Message: app.MsgHealthy,
		Sandbox: h.services.AppInfoService.IsSandbox(ctx),
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}, http.StatusOK)
}
