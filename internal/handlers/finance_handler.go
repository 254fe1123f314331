package handlers

import (
	"encoding/json"
	"net/http"

	"dj-backend/internal/models"
	"dj-backend/internal/services"
)

type FinanceHandler struct {
	Service *services.FinanceService
}

func NewFinanceHandler(s *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{Service: s}
}

// List returns finance records, optionally filtered with ?type=INCOME|EXPENSE
func (h *FinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	recordType := models.FinanceRecordType(r.URL.Query().Get("type"))
	records, err := h.Service.ListRecords(r.Context(), recordType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*models.FinanceRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *FinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFinanceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.Service.CreateRecord(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (h *FinanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid record id", http.StatusBadRequest)
		return
	}

	var req models.UpdateFinanceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.Service.UpdateRecord(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *FinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid record id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRecord(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Record deleted"})
}

// EventPnL returns the per-event profit & loss report
func (h *FinanceHandler) EventPnL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	pnl, err := h.Service.EventPnL(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pnl)
}

// EventExpense records an expense against a booking with event context
// baked into the description
func (h *FinanceHandler) EventExpense(w http.ResponseWriter, r *http.Request) {
	var req models.EventExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.Service.CreateEventExpense(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// CrewPayout writes a Salary expense for a crew member
func (h *FinanceHandler) CrewPayout(w http.ResponseWriter, r *http.Request) {
	var req models.CrewPayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	record, err := h.Service.CrewPayout(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}
