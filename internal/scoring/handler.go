package scoring

import (
	"encoding/json"
	"net/http"

	"github.com/salespulse/leadscore/internal/leads"
	"github.com/salespulse/leadscore/pkg/logging"
)

// Handler wires HTTP requests to the scoring service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a scoring handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ScoreLead handles POST /leads/score.
func (h *Handler) ScoreLead(w http.ResponseWriter, r *http.Request) {
	var lead leads.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.logger.Error("failed to decode lead payload", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := lead.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.ScoreLead(r.Context(), lead)
	if err != nil {
		h.logger.Error("failed to score lead", "error", err, "company", lead.Company)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.logger.Info("lead scored",
		"company", lead.Company,
		"score", result.Score,
		"category", result.Category,
	)

	h.writeJSON(w, http.StatusOK, result)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
