package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
	"dj-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders invoices and data exports.
type ReportService struct {
	BookingRepo  *repositories.BookingRepository
	FinanceRepo  *repositories.FinanceRepository
	Ledger       *LedgerService
	BusinessName string
}

func NewReportService(bookingRepo *repositories.BookingRepository, financeRepo *repositories.FinanceRepository, ledger *LedgerService, businessName string) *ReportService {
	return &ReportService{
		BookingRepo:  bookingRepo,
		FinanceRepo:  financeRepo,
		Ledger:       ledger,
		BusinessName: businessName,
	}
}

// GenerateInvoicePDF renders a printable invoice for one booking, including
// any payments recorded against it.
func (s *ReportService) GenerateInvoicePDF(ctx context.Context, bookingID int) ([]byte, error) {
	b, err := s.BookingRepo.Get(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	payments, err := s.FinanceRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		payments = []*models.FinanceRecord{}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - Invoice", s.BusinessName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Invoice #%d | Generated: %s", b.ID, timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Customer Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", b.CustomerName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", b.CustomerPhone), "RB", 1, "L", false, 0, "")
	if b.CustomerEmail != "" {
		pdf.CellFormat(190, 7, fmt.Sprintf("Email: %s", b.CustomerEmail), "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Event Details
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Event Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Event: %s", b.EventType), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", timeutil.FormatIST(b.Date, "02-Jan-2006")), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Location: %s", b.Location), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Package: %s", b.DJPackage), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("Status: %s", b.Status), "LRB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Financial Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Financial Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Total: Rs. %.2f", b.Amount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Advance: Rs. %.2f", b.AdvanceAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Received: Rs. %.2f", b.ReceivedAmount), "1", 1, "C", false, 0, "")

	// Balance - highlight if outstanding
	if b.BalanceAmount > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	balanceText := fmt.Sprintf("Balance Due: Rs. %.2f", b.BalanceAmount)
	if b.BalanceAmount <= 0 {
		balanceText = "FULLY PAID"
	}
	pdf.CellFormat(190, 10, balanceText, "1", 1, "C", true, 0, "")

	// Linked payments and expenses
	if len(payments) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, "Linked Records", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(30, 7, "Type", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 7, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 7, "Amount", "1", 0, "C", true, 0, "")
		pdf.CellFormat(90, 7, "Description", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, p := range payments {
			description := p.Description
			if len(description) > 48 {
				description = description[:45] + "..."
			}
			pdf.CellFormat(30, 6, string(p.Type), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 6, p.Date.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 6, fmt.Sprintf("Rs. %.2f", p.Amount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(90, 6, description, "1", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateLedgerCSV exports the customer ledger for spreadsheets.
func (s *ReportService) GenerateLedgerCSV(ctx context.Context) ([]byte, error) {
	resp, err := s.Ledger.BuildLedger(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"#", "Customer", "Phone", "Bookings",
		"Total Amount", "Advance", "Received", "Balance", "Status",
	})

	for i, row := range resp.Customers {
		status := "PAID"
		if row.TotalBalance > 0 {
			status = "DUE"
		}
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			row.CustomerName,
			row.Phone,
			fmt.Sprintf("%d", row.BookingCount),
			fmt.Sprintf("%.2f", row.TotalAmount),
			fmt.Sprintf("%.2f", row.TotalAdvance),
			fmt.Sprintf("%.2f", row.TotalReceived),
			fmt.Sprintf("%.2f", row.TotalBalance),
			status,
		})
	}

	w.Write([]string{""})
	w.Write([]string{"Total Value", fmt.Sprintf("%.2f", resp.Stats.TotalValue)})
	w.Write([]string{"Total Collected", fmt.Sprintf("%.2f", resp.Stats.TotalCollected)})
	w.Write([]string{"Total Receivable", fmt.Sprintf("%.2f", resp.Stats.TotalReceivable)})

	w.Flush()
	return buf.Bytes(), nil
}

// GenerateFinanceCSV exports the flat finance record list.
func (s *ReportService) GenerateFinanceCSV(ctx context.Context) ([]byte, error) {
	records, err := s.FinanceRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Type", "Category", "Date", "Amount", "Description", "Booking"})

	for i, r := range records {
		booking := ""
		if r.RelatedBookingID != nil {
			booking = fmt.Sprintf("%d", *r.RelatedBookingID)
		}
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			string(r.Type),
			r.Category,
			r.Date.Format("02-Jan-2006"),
			fmt.Sprintf("%.2f", r.Amount),
			r.Description,
			booking,
		})
	}

	w.Flush()
	return buf.Bytes(), nil
}
