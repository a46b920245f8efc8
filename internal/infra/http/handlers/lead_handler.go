package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kervincort225/vyntra/internal/entity"
	custommw "github.com/kervincort225/vyntra/internal/infra/http/middleware"
	"github.com/kervincort225/vyntra/internal/service"
	"github.com/kervincort225/vyntra/internal/usecase"
)

type LeadHandler struct {
	service     *service.LeadService
	rateLimiter *RateLimiter
}

func NewLeadHandler(svc *service.LeadService) *LeadHandler {
	return &LeadHandler{
		service:     svc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP on the public capture endpoint
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Create handles the public lead capture endpoint used by the contact form
// and the chat widget.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondJSON(w, http.StatusTooManyRequests, errorResponse{"Too many requests. Please try again later."})
		return
	}

	var input entity.CreateLeadDTO
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{"Invalid JSON"})
		return
	}

	if input.Name == "" || input.Email == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{"Name and email are required"})
		return
	}

	lead, err := h.service.CreateLead(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			custommw.RecordLeadValidationFailure()
			respondJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
			return
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse{"Failed to create lead"})
		return
	}

	custommw.RecordLeadCaptured(string(lead.Source), string(lead.Priority))
	respondJSON(w, http.StatusCreated, lead)
}

// List returns all leads newest-first, optionally filtered by ?status=.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		leads []entity.Lead
		err   error
	)

	if status := r.URL.Query().Get("status"); status != "" {
		leads, err = h.service.GetLeadsByStatus(r.Context(), entity.LeadStatus(status))
	} else {
		leads, err = h.service.GetAllLeads(r.Context())
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorResponse{"Failed to fetch leads"})
		return
	}

	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.service.GetLeadByID(r.Context(), id)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorResponse{"Failed to fetch lead"})
		return
	}
	if lead == nil {
		respondJSON(w, http.StatusNotFound, errorResponse{"Lead not found"})
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch entity.UpdateLeadDTO
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{"Invalid JSON"})
		return
	}

	lead, err := h.service.UpdateLead(r.Context(), id, patch)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorResponse{"Failed to update lead"})
		return
	}
	if lead == nil {
		respondJSON(w, http.StatusNotFound, errorResponse{"Lead not found"})
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.service.DeleteLead(r.Context(), id)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorResponse{"Failed to delete lead"})
		return
	}
	if !deleted {
		respondJSON(w, http.StatusNotFound, errorResponse{"Lead not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.GetLeadMetrics(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorResponse{"Failed to fetch metrics"})
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
