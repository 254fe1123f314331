package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dj-backend/internal/cache"
	"dj-backend/internal/ledger"
	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
	"dj-backend/internal/timeutil"
)

type FinanceService struct {
	Repo        *repositories.FinanceRepository
	BookingRepo *repositories.BookingRepository
	UserRepo    *repositories.UserRepository
}

func NewFinanceService(repo *repositories.FinanceRepository, bookingRepo *repositories.BookingRepository, userRepo *repositories.UserRepository) *FinanceService {
	return &FinanceService{Repo: repo, BookingRepo: bookingRepo, UserRepo: userRepo}
}

func parseRecordDate(value string) (time.Time, error) {
	if value == "" {
		return timeutil.Now(), nil
	}
	return timeutil.ParseInIST(timeutil.DateLayout, value)
}

// CreateRecord adds a manual ledger entry.
func (s *FinanceService) CreateRecord(ctx context.Context, req *models.CreateFinanceRecordRequest) (*models.FinanceRecord, error) {
	if req.Type != models.FinanceIncome && req.Type != models.FinanceExpense {
		return nil, fmt.Errorf("type must be INCOME or EXPENSE")
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	date, err := parseRecordDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	record := &models.FinanceRecord{
		Type:             req.Type,
		Amount:           req.Amount,
		Category:         req.Category,
		Date:             date,
		Description:      req.Description,
		RelatedBookingID: req.RelatedBookingID,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	cache.InvalidateFinanceCaches(ctx)
	return record, nil
}

func (s *FinanceService) GetRecord(ctx context.Context, id int) (*models.FinanceRecord, error) {
	return s.Repo.Get(ctx, id)
}

func (s *FinanceService) ListRecords(ctx context.Context, recordType models.FinanceRecordType) ([]*models.FinanceRecord, error) {
	return s.Repo.List(ctx, recordType)
}

func (s *FinanceService) UpdateRecord(ctx context.Context, id int, req *models.UpdateFinanceRecordRequest) (*models.FinanceRecord, error) {
	record, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if *req.Type != models.FinanceIncome && *req.Type != models.FinanceExpense {
			return nil, fmt.Errorf("type must be INCOME or EXPENSE")
		}
		record.Type = *req.Type
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, fmt.Errorf("amount cannot be negative")
		}
		record.Amount = *req.Amount
	}
	if req.Category != nil {
		record.Category = *req.Category
	}
	if req.Date != nil {
		date, err := parseRecordDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, err)
		}
		record.Date = date
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.RelatedBookingID != nil {
		record.RelatedBookingID = req.RelatedBookingID
	}

	if err := s.Repo.Update(ctx, record); err != nil {
		return nil, err
	}
	cache.InvalidateFinanceCaches(ctx)
	return record, nil
}

func (s *FinanceService) DeleteRecord(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateFinanceCaches(ctx)
	return nil
}

// EventPnL computes the profit/loss report for one booking.
func (s *FinanceService) EventPnL(ctx context.Context, bookingID int) (*ledger.PnL, error) {
	booking, err := s.BookingRepo.Get(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking %d not found", bookingID)
	}
	records, err := s.Repo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	pnl := ledger.EventPnL(booking, records)
	return &pnl, nil
}

// CreateEventExpense records an expense against a booking with the event
// context baked into the description, so the flat finance list reads well
// without a join.
func (s *FinanceService) CreateEventExpense(ctx context.Context, req *models.EventExpenseRequest) (*models.FinanceRecord, error) {
	if req.Amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	booking, err := s.BookingRepo.Get(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("booking %d not found", req.BookingID)
	}

	tag := fmt.Sprintf("[%s @ %s on %s]", booking.EventType, booking.Location,
		timeutil.FormatIST(booking.Date, timeutil.DateLayout))
	description := strings.TrimSpace(tag + " " + req.Description)

	bookingID := booking.ID
	record := &models.FinanceRecord{
		Type:             models.FinanceExpense,
		Amount:           req.Amount,
		Category:         req.Category,
		Date:             timeutil.Now(),
		Description:      description,
		RelatedBookingID: &bookingID,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	cache.InvalidateFinanceCaches(ctx)
	return record, nil
}

// CrewPayout writes a Salary EXPENSE for a crew member. A zero amount pays
// the stored monthly salary.
func (s *FinanceService) CrewPayout(ctx context.Context, req *models.CrewPayoutRequest) (*models.FinanceRecord, error) {
	crew, err := s.UserRepo.Get(ctx, req.CrewID)
	if err != nil {
		return nil, fmt.Errorf("crew member %d not found", req.CrewID)
	}
	if crew.Role != models.RoleCrew {
		return nil, fmt.Errorf("user %d is not a crew member", req.CrewID)
	}

	amount := req.Amount
	if amount == 0 {
		amount = crew.Salary
	}
	if amount <= 0 {
		return nil, fmt.Errorf("no payout amount given and no salary on file for %s", crew.Name)
	}

	description := fmt.Sprintf("Salary payout for %s", crew.Name)
	if req.Notes != "" {
		description += " - " + req.Notes
	}

	record := &models.FinanceRecord{
		Type:        models.FinanceExpense,
		Amount:      amount,
		Category:    models.CategorySalary,
		Date:        timeutil.Now(),
		Description: description,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	cache.InvalidateFinanceCaches(ctx)
	return record, nil
}
