package handlers

import (
	"encoding/json"
	"net/http"

	"dj-backend/internal/services"
)

type StatsHandler struct {
	Service *services.LedgerService
}

func NewStatsHandler(s *services.LedgerService) *StatsHandler {
	return &StatsHandler{Service: s}
}

// Get serves the public marketing counters (events run, happy clients,
// crew size). No auth.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
