package handlers

import (
	"net/http"
	"time"

	"github.com/kervincort225/vyntra/internal/service"
)

type HealthHandler struct {
	service   *service.LeadService
	startTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(svc *service.LeadService) *HealthHandler {
	return &HealthHandler{
		service:   svc,
		startTime: time.Now(),
	}
}

// Handle reports process liveness and which lead store is active. The mock
// store is a deliberate fallback, so running on it is still "healthy".
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)
	if h.service.UsingRemoteStore() {
		deps["leads_store"] = "supabase"
	} else {
		deps["leads_store"] = "mock"
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Version:      "1.0.0",
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
