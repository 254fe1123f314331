package handlers

import (
	"encoding/json"
	"net/http"

	"dj-backend/internal/middleware"
	"dj-backend/internal/models"
	"dj-backend/internal/services"
)

type ProductRequestHandler struct {
	Service *services.ProductRequestService
}

func NewProductRequestHandler(s *services.ProductRequestService) *ProductRequestHandler {
	return &ProductRequestHandler{Service: s}
}

// List returns all requests for admins, own requests for crew
func (h *ProductRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	crewID := 0
	if role == models.RoleCrew {
		crewID, _ = middleware.GetUserIDFromContext(r.Context())
	}

	requests, err := h.Service.ListRequests(r.Context(), crewID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if requests == nil {
		requests = []*models.ProductRequest{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// Create files a new equipment request for the calling crew member
func (h *ProductRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	crewID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateProductRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	request, err := h.Service.CreateRequest(r.Context(), crewID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(request)
}

// Decide approves or rejects a request (admin only)
func (h *ProductRequestHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid request id", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	request, err := h.Service.Decide(r.Context(), id, req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(request)
}

func (h *ProductRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid request id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRequest(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Request deleted"})
}
