package handlers

import (
	"encoding/json"
	"net/http"

	"dj-backend/internal/services"
)

type AdminHandler struct {
	Cleanup *services.CleanupService
	Backup  *services.BackupService
}

func NewAdminHandler(cleanup *services.CleanupService, backup *services.BackupService) *AdminHandler {
	return &AdminHandler{Cleanup: cleanup, Backup: backup}
}

// RunCleanup wipes all business data (admin accounts and settings survive).
// A confirmation phrase is required; this is not an operation to fat-finger.
func (h *AdminHandler) RunCleanup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm string `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Confirm != "DELETE ALL DATA" {
		http.Error(w, `Confirmation required: send {"confirm": "DELETE ALL DATA"}`, http.StatusBadRequest)
		return
	}

	result, err := h.Cleanup.Run(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// RunBackup takes a snapshot on demand
func (h *AdminHandler) RunBackup(w http.ResponseWriter, r *http.Request) {
	key, err := h.Backup.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"backup_key": key})
}

// ListBackups lists stored snapshots, newest first
func (h *AdminHandler) ListBackups(w http.ResponseWriter, r *http.Request) {
	keys, err := h.Backup.ListBackups(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"backups": keys})
}
