package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/company-records-api/internal/config"
	"github.com/company-records-api/internal/dto"
)

// HealthHandler отвечает на служебные запросы
type HealthHandler struct {
	responder
	app config.AppConfig
}

func NewHealthHandler(app config.AppConfig, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		app:       app,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.PongResponse{Pong: true})
}

func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.VersionResponse{
		App:     h.app.Name,
		Env:     h.app.Env,
		Version: h.app.Version,
	})
}
