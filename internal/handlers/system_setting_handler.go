package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"dj-backend/internal/models"
	"dj-backend/internal/services"
)

type SystemSettingHandler struct {
	Service *services.SettingService
}

func NewSystemSettingHandler(s *services.SettingService) *SystemSettingHandler {
	return &SystemSettingHandler{Service: s}
}

func (h *SystemSettingHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.ListSettings(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if settings == nil {
		settings = []*models.SystemSetting{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

func (h *SystemSettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	setting, err := h.Service.GetSetting(r.Context(), key)
	if err != nil {
		http.Error(w, "Setting not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(setting)
}

func (h *SystemSettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req models.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	setting, err := h.Service.UpdateSetting(r.Context(), key, req.SettingValue)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(setting)
}
