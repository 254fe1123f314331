package services

import (
	"context"
	"encoding/json"
	"time"

	"dj-backend/internal/cache"
	"dj-backend/internal/ledger"
	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
)

// LedgerService builds the customer balance ledger from the source-of-truth
// booking rows. Nothing here writes; the ledger is always derivable.
type LedgerService struct {
	UserRepo    *repositories.UserRepository
	BookingRepo *repositories.BookingRepository
}

func NewLedgerService(userRepo *repositories.UserRepository, bookingRepo *repositories.BookingRepository) *LedgerService {
	return &LedgerService{UserRepo: userRepo, BookingRepo: bookingRepo}
}

// LedgerResponse is the full ledger view the finance dashboard renders.
type LedgerResponse struct {
	Customers []*ledger.CustomerRow `json:"customers"`
	Stats     ledger.Stats          `json:"stats"`
}

// BuildLedger aggregates every booking into per-customer rows. Registered
// customers appear even with zero bookings; guests are grouped by name.
// The result is cached briefly since the finance page re-fetches on focus.
func (s *LedgerService) BuildLedger(ctx context.Context) (*LedgerResponse, error) {
	if data, ok := cache.GetCached(ctx, cache.LedgerKey); ok {
		resp := &LedgerResponse{}
		if err := json.Unmarshal(data, resp); err == nil {
			return resp, nil
		}
	}

	customers, err := s.UserRepo.List(ctx, models.RoleCustomer)
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	rows := ledger.Aggregate(customers, bookings)
	resp := &LedgerResponse{
		Customers: rows,
		Stats:     ledger.Totals(rows),
	}

	if data, err := json.Marshal(resp); err == nil {
		cache.SetCached(ctx, cache.LedgerKey, data, 30*time.Second)
	}
	return resp, nil
}

// PublicStats is the marketing-page counters block. No auth required.
type PublicStats struct {
	EventsRun    int `json:"events_run"`
	HappyClients int `json:"happy_clients"`
	CrewMembers  int `json:"crew_members"`
}

// Stats counts completed events, distinct customers and crew size.
func (s *LedgerService) Stats(ctx context.Context) (*PublicStats, error) {
	if data, ok := cache.GetCached(ctx, cache.StatsKey); ok {
		stats := &PublicStats{}
		if err := json.Unmarshal(data, stats); err == nil {
			return stats, nil
		}
	}

	eventsRun, err := s.BookingRepo.CountByStatus(ctx, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	happyClients, err := s.BookingRepo.CountDistinctCustomers(ctx)
	if err != nil {
		return nil, err
	}
	crewMembers, err := s.UserRepo.CountByRole(ctx, models.RoleCrew)
	if err != nil {
		return nil, err
	}

	stats := &PublicStats{
		EventsRun:    eventsRun,
		HappyClients: happyClients,
		CrewMembers:  crewMembers,
	}
	if data, err := json.Marshal(stats); err == nil {
		cache.SetCached(ctx, cache.StatsKey, data, 5*time.Minute)
	}
	return stats, nil
}
