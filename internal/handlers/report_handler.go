package handlers

import (
	"fmt"
	"net/http"

	"dj-backend/internal/services"
	"dj-backend/internal/timeutil"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// Invoice downloads a PDF invoice for one booking
func (h *ReportHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	data, err := h.Service.GenerateInvoicePDF(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%d.pdf"`, id))
	w.Write(data)
}

// FinanceCSV downloads the flat finance record list
func (h *ReportHandler) FinanceCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.GenerateFinanceCSV(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("finance_%s.csv", timeutil.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}
