package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"dj-backend/internal/services"
	"dj-backend/internal/timeutil"
)

type LedgerHandler struct {
	Service *services.LedgerService
	Reports *services.ReportService
}

func NewLedgerHandler(s *services.LedgerService, reports *services.ReportService) *LedgerHandler {
	return &LedgerHandler{Service: s, Reports: reports}
}

// Get returns the aggregated customer ledger with headline stats
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.BuildLedger(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ExportCSV downloads the ledger as a spreadsheet
func (h *LedgerHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Reports.GenerateLedgerCSV(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("ledger_%s.csv", timeutil.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}
