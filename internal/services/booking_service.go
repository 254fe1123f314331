package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"dj-backend/internal/cache"
	"dj-backend/internal/ledger"
	"dj-backend/internal/models"
	"dj-backend/internal/timeutil"
	"dj-backend/internal/whatsapp"
)

// BookingStore is the persistence surface the booking service needs.
// *repositories.BookingRepository satisfies it.
type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	Get(ctx context.Context, id int) (*models.Booking, error)
	List(ctx context.Context, customerID *int) ([]*models.Booking, error)
	ListForCrew(ctx context.Context, crewID int) ([]*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	Delete(ctx context.Context, id int) error
	CountByStatus(ctx context.Context, status models.BookingStatus) (int, error)
	MarkPaid(ctx context.Context, b *models.Booking, record *models.FinanceRecord) error
}

// PaymentLinker builds a payment link for an outstanding balance.
// The link is fire-and-forget: nothing here verifies that it was paid.
type PaymentLinker interface {
	PaymentLink(ctx context.Context, b *models.Booking) (url string, provider string)
}

type BookingService struct {
	Store    BookingStore
	Payments PaymentLinker
	WhatsApp *whatsapp.Service
}

func NewBookingService(store BookingStore, payments PaymentLinker, wa *whatsapp.Service) *BookingService {
	return &BookingService{Store: store, Payments: payments, WhatsApp: wa}
}

func parseBookingDate(value string) (time.Time, error) {
	if value == "" {
		return timeutil.StartOfDay(timeutil.Now()), nil
	}
	return timeutil.ParseInIST(timeutil.DateLayout, value)
}

// CreateBooking handles both customer self-service requests and admin manual
// entry. Status always starts PENDING; the balance is computed through the
// shared calculator before the row is written.
func (s *BookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if req.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	date, err := parseBookingDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	b := &models.Booking{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		CustomerID:     req.CustomerID,
		EventType:      req.EventType,
		Date:           date,
		Location:       req.Location,
		DJPackage:      req.DJPackage,
		Notes:          req.Notes,
		Status:         models.StatusPending,
		Amount:         req.Amount,
		AdvanceAmount:  req.AdvanceAmount,
		ReceivedAmount: req.ReceivedAmount,
	}
	b.BalanceAmount = ledger.Balance(b.Amount, b.AdvanceAmount, b.ReceivedAmount)

	if err := s.Store.Create(ctx, b); err != nil {
		return nil, err
	}
	cache.InvalidatePendingCount(ctx)
	return b, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	return s.Store.Get(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context, customerID *int) ([]*models.Booking, error) {
	return s.Store.List(ctx, customerID)
}

func (s *BookingService) ListForCrew(ctx context.Context, crewID int) ([]*models.Booking, error) {
	return s.Store.ListForCrew(ctx, crewID)
}

// UpdateBooking applies a partial edit. The balance is always recomputed from
// whatever the financial fields end up as, and the payment-requested flag is
// cleared once nothing is owed. Status writes are unrestricted here; admin
// fiat is the historical behavior, and ChangeStatus offers the strict graph.
func (s *BookingService) UpdateBooking(ctx context.Context, id int, req *models.UpdateBookingRequest) (*models.Booking, error) {
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		b.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		b.CustomerPhone = *req.CustomerPhone
	}
	if req.CustomerEmail != nil {
		b.CustomerEmail = *req.CustomerEmail
	}
	if req.EventType != nil {
		b.EventType = *req.EventType
	}
	if req.Date != nil {
		date, err := parseBookingDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, err)
		}
		b.Date = date
	}
	if req.Location != nil {
		b.Location = *req.Location
	}
	if req.DJPackage != nil {
		b.DJPackage = *req.DJPackage
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("unknown status %q", *req.Status)
		}
		b.Status = status
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.AdvanceAmount != nil {
		b.AdvanceAmount = *req.AdvanceAmount
	}
	if req.ReceivedAmount != nil {
		b.ReceivedAmount = *req.ReceivedAmount
	}
	if req.PaymentRequested != nil {
		b.PaymentRequested = *req.PaymentRequested
	}

	b.BalanceAmount = ledger.Balance(b.Amount, b.AdvanceAmount, b.ReceivedAmount)
	if b.BalanceAmount <= 0 {
		b.PaymentRequested = false
	}

	if err := s.Store.Update(ctx, b); err != nil {
		return nil, err
	}
	cache.InvalidatePendingCount(ctx)
	return b, nil
}

// ChangeStatus moves a booking's status. With enforce set, the intended
// lifecycle graph is checked; without it the write goes through regardless,
// mirroring the admin-override behavior.
func (s *BookingService) ChangeStatus(ctx context.Context, id int, to models.BookingStatus, enforce bool) (*models.Booking, error) {
	if !to.IsValid() {
		return nil, fmt.Errorf("unknown status %q", to)
	}
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if enforce && !models.ValidTransition(b.Status, to) {
		return nil, fmt.Errorf("transition %s -> %s not allowed", b.Status, to)
	}

	b.Status = to
	if err := s.Store.Update(ctx, b); err != nil {
		return nil, err
	}
	cache.InvalidatePendingCount(ctx)
	return b, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int) error {
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidatePendingCount(ctx)
	return nil
}

// AssignCrew replaces the crew list. Check-in entries for removed crew are
// dropped so the map never references someone no longer on the event.
func (s *BookingService) AssignCrew(ctx context.Context, id int, crewIDs []int) (*models.Booking, error) {
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	b.CrewAssigned = crewIDs
	if b.CheckInTimes != nil {
		keep := make(map[int]bool, len(crewIDs))
		for _, cid := range crewIDs {
			keep[cid] = true
		}
		for cid := range b.CheckInTimes {
			if !keep[cid] {
				delete(b.CheckInTimes, cid)
			}
		}
	}

	if err := s.Store.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// CheckIn records a crew member's arrival. Crew can only write their own
// check-in, and only on bookings they are assigned to.
func (s *BookingService) CheckIn(ctx context.Context, id, crewID int, arrival string) (*models.Booking, error) {
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assigned := false
	for _, cid := range b.CrewAssigned {
		if cid == crewID {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, fmt.Errorf("crew member %d is not assigned to booking %d", crewID, id)
	}

	if arrival == "" {
		arrival = timeutil.FormatIST(timeutil.Now(), timeutil.DisplayLayout)
	}
	if b.CheckInTimes == nil {
		b.CheckInTimes = map[int]string{}
	}
	b.CheckInTimes[crewID] = arrival

	if err := s.Store.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarkPaidResult is what the mark-as-paid composite produced.
type MarkPaidResult struct {
	Booking       *models.Booking       `json:"booking"`
	FinanceRecord *models.FinanceRecord `json:"finance_record"`
}

// MarkAsPaid clears an outstanding balance: received absorbs the balance,
// balance drops to zero, status becomes CONFIRMED, the payment-requested
// flag clears, and a matching INCOME record is written, all in one tx.
// If the store fails the caller gets a retryable error, never a silent
// half-applied state.
func (s *BookingService) MarkAsPaid(ctx context.Context, id int) (*MarkPaidResult, error) {
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cleared := b.BalanceAmount
	if cleared <= 0 {
		return nil, fmt.Errorf("booking %d has no balance due", id)
	}

	b.ReceivedAmount += cleared
	b.BalanceAmount = 0
	b.Status = models.StatusConfirmed
	b.PaymentRequested = false

	bookingID := b.ID
	record := &models.FinanceRecord{
		Type:             models.FinanceIncome,
		Amount:           cleared,
		Category:         models.CategoryBookingPayment,
		Date:             timeutil.Now(),
		Description:      fmt.Sprintf("Balance payment received for %s (%s)", b.CustomerName, b.EventType),
		RelatedBookingID: &bookingID,
	}

	if err := s.Store.MarkPaid(ctx, b, record); err != nil {
		log.Printf("[Booking] mark-paid failed for booking %d amount %.2f: %v (retry safe, nothing persisted)", id, cleared, err)
		return nil, fmt.Errorf("mark as paid: %w", err)
	}

	cache.InvalidatePendingCount(ctx)
	return &MarkPaidResult{Booking: b, FinanceRecord: record}, nil
}

// PaymentRequestResult carries the deep links the admin forwards to the
// customer. Delivery and payment confirmation happen outside the system.
type PaymentRequestResult struct {
	Booking      *models.Booking `json:"booking"`
	PaymentURL   string          `json:"payment_url,omitempty"`
	Provider     string          `json:"provider,omitempty"`
	WhatsAppLink string          `json:"whatsapp_link,omitempty"`
}

// RequestPayment flags the booking and hands back payment + reminder links.
func (s *BookingService) RequestPayment(ctx context.Context, id int) (*PaymentRequestResult, error) {
	b, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.BalanceAmount <= 0 {
		return nil, fmt.Errorf("booking %d has no balance due", id)
	}

	b.PaymentRequested = true
	if err := s.Store.Update(ctx, b); err != nil {
		return nil, err
	}

	result := &PaymentRequestResult{Booking: b}
	if s.Payments != nil {
		result.PaymentURL, result.Provider = s.Payments.PaymentLink(ctx, b)
	}
	if s.WhatsApp != nil {
		result.WhatsAppLink = s.WhatsApp.PaymentReminderLink(b)
	}
	return result, nil
}

// PendingCount serves the dashboards' poll for new booking requests,
// cached briefly in Redis to keep the polling cheap.
func (s *BookingService) PendingCount(ctx context.Context) (int, error) {
	if count, ok := cache.GetPendingCount(ctx); ok {
		return count, nil
	}
	count, err := s.Store.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return 0, err
	}
	cache.SetPendingCount(ctx, count)
	return count, nil
}
