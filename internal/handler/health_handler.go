package handler

import (
	"encoding/json"
	"net/http"

	"cineai/internal/service"
)

type HealthHandler struct {
	svc *service.Engine
}

func NewHealthHandler(s *service.Engine) *HealthHandler {
	return &HealthHandler{svc: s}
}

// @Summary Healthcheck
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Health())
}
