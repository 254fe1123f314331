package handlers

import (
	"encoding/json"
	"net/http"

	"dj-backend/internal/models"
	"dj-backend/internal/services"
)

type PackageHandler struct {
	Service *services.PackageService
}

func NewPackageHandler(s *services.PackageService) *PackageHandler {
	return &PackageHandler{Service: s}
}

// List is public: the marketing page shows the package catalog
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.Service.ListPackages(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if packages == nil {
		packages = []*models.EventPackage{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(packages)
}

func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.Service.CreatePackage(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid package id", http.StatusBadRequest)
		return
	}

	var req models.UpdateEventPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.Service.UpdatePackage(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid package id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeletePackage(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Package deleted"})
}
