package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dj-backend/internal/models"
	"dj-backend/internal/whatsapp"
)

// fakeBookingStore is an in-memory BookingStore for service tests.
type fakeBookingStore struct {
	bookings map[int]*models.Booking
	nextID   int

	markPaidErr     error
	markPaidRecords []*models.FinanceRecord
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[int]*models.Booking{}, nextID: 1}
}

func (f *fakeBookingStore) Create(ctx context.Context, b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingStore) Get(ctx context.Context, id int) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %d not found", id)
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingStore) List(ctx context.Context, customerID *int) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if customerID != nil && (b.CustomerID == nil || *b.CustomerID != *customerID) {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBookingStore) ListForCrew(ctx context.Context, crewID int) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		for _, cid := range b.CrewAssigned {
			if cid == crewID {
				copied := *b
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingStore) Update(ctx context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return fmt.Errorf("booking %d not found", b.ID)
	}
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingStore) Delete(ctx context.Context, id int) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking %d not found", id)
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingStore) CountByStatus(ctx context.Context, status models.BookingStatus) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingStore) MarkPaid(ctx context.Context, b *models.Booking, record *models.FinanceRecord) error {
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	if err := f.Update(ctx, b); err != nil {
		return err
	}
	f.markPaidRecords = append(f.markPaidRecords, record)
	return nil
}

// fakeLinker returns a canned payment link.
type fakeLinker struct {
	url, provider string
}

func (f *fakeLinker) PaymentLink(ctx context.Context, b *models.Booking) (string, string) {
	return f.url, f.provider
}

func newTestService(store *fakeBookingStore) *BookingService {
	wa := whatsapp.NewService("Vetri DJ Sounds", "91")
	return NewBookingService(store, &fakeLinker{url: "https://pay.test/abc", provider: "razorpay"}, wa)
}

func createBooking(t *testing.T, s *BookingService, amount, advance, received float64) *models.Booking {
	t.Helper()
	b, err := s.CreateBooking(context.Background(), &models.CreateBookingRequest{
		CustomerName:   "Arun Kumar",
		CustomerPhone:  "9876543210",
		EventType:      "Wedding",
		Date:           "2026-03-15",
		Amount:         amount,
		AdvanceAmount:  advance,
		ReceivedAmount: received,
	})
	require.NoError(t, err)
	return b
}

func TestCreateBookingComputesBalance(t *testing.T) {
	s := newTestService(newFakeBookingStore())

	b := createBooking(t, s, 20000, 5000, 0)

	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, 15000.0, b.BalanceAmount)
}

func TestCreateBookingRequiresCustomerName(t *testing.T) {
	s := newTestService(newFakeBookingStore())

	_, err := s.CreateBooking(context.Background(), &models.CreateBookingRequest{Amount: 5000})
	assert.Error(t, err)
}

func TestMarkAsPaidClearsBalance(t *testing.T) {
	store := newFakeBookingStore()
	s := newTestService(store)
	b := createBooking(t, s, 20000, 5000, 0)

	result, err := s.MarkAsPaid(context.Background(), b.ID)
	require.NoError(t, err)

	assert.Equal(t, 15000.0, result.Booking.ReceivedAmount)
	assert.Equal(t, 0.0, result.Booking.BalanceAmount)
	assert.Equal(t, models.StatusConfirmed, result.Booking.Status)
	assert.False(t, result.Booking.PaymentRequested)

	require.Len(t, store.markPaidRecords, 1)
	record := store.markPaidRecords[0]
	assert.Equal(t, models.FinanceIncome, record.Type)
	assert.Equal(t, 15000.0, record.Amount)
	assert.Equal(t, models.CategoryBookingPayment, record.Category)
	require.NotNil(t, record.RelatedBookingID)
	assert.Equal(t, b.ID, *record.RelatedBookingID)
}

func TestMarkAsPaidRejectsZeroBalance(t *testing.T) {
	store := newFakeBookingStore()
	s := newTestService(store)
	b := createBooking(t, s, 20000, 5000, 15000)

	_, err := s.MarkAsPaid(context.Background(), b.ID)
	assert.Error(t, err)
	assert.Empty(t, store.markPaidRecords)
}

func TestMarkAsPaidStoreFailureLeavesBookingUntouched(t *testing.T) {
	store := newFakeBookingStore()
	s := newTestService(store)
	b := createBooking(t, s, 20000, 5000, 0)
	store.markPaidErr = fmt.Errorf("connection reset")

	_, err := s.MarkAsPaid(context.Background(), b.ID)
	require.Error(t, err)

	after, err := s.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, after.BalanceAmount)
	assert.Equal(t, 0.0, after.ReceivedAmount)
	assert.Equal(t, models.StatusPending, after.Status)
}

func TestUpdateBookingRecomputesBalanceAndClearsRequestFlag(t *testing.T) {
	store := newFakeBookingStore()
	s := newTestService(store)
	b := createBooking(t, s, 20000, 5000, 0)

	requested := true
	_, err := s.UpdateBooking(context.Background(), b.ID, &models.UpdateBookingRequest{PaymentRequested: &requested})
	require.NoError(t, err)

	received := 15000.0
	updated, err := s.UpdateBooking(context.Background(), b.ID, &models.UpdateBookingRequest{ReceivedAmount: &received})
	require.NoError(t, err)

	assert.Equal(t, 0.0, updated.BalanceAmount)
	assert.False(t, updated.PaymentRequested, "flag should clear once nothing is owed")
}

func TestUpdateBookingRejectsUnknownStatus(t *testing.T) {
	s := newTestService(newFakeBookingStore())
	b := createBooking(t, s, 10000, 0, 0)

	bad := "SHIPPED"
	_, err := s.UpdateBooking(context.Background(), b.ID, &models.UpdateBookingRequest{Status: &bad})
	assert.Error(t, err)
}

func TestChangeStatusEnforcement(t *testing.T) {
	s := newTestService(newFakeBookingStore())
	b := createBooking(t, s, 10000, 0, 0)

	// PENDING -> COMPLETED skips CONFIRMED, so strict mode refuses it
	_, err := s.ChangeStatus(context.Background(), b.ID, models.StatusCompleted, true)
	assert.Error(t, err)

	// without enforcement the same write goes through
	updated, err := s.ChangeStatus(context.Background(), b.ID, models.StatusCompleted, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
}

func TestRequestPaymentReturnsLinks(t *testing.T) {
	s := newTestService(newFakeBookingStore())
	b := createBooking(t, s, 20000, 5000, 0)

	result, err := s.RequestPayment(context.Background(), b.ID)
	require.NoError(t, err)

	assert.True(t, result.Booking.PaymentRequested)
	assert.Equal(t, "https://pay.test/abc", result.PaymentURL)
	assert.Equal(t, "razorpay", result.Provider)
	assert.Contains(t, result.WhatsAppLink, "wa.me/919876543210")
}

func TestRequestPaymentRejectsSettledBooking(t *testing.T) {
	s := newTestService(newFakeBookingStore())
	b := createBooking(t, s, 20000, 20000, 0)

	_, err := s.RequestPayment(context.Background(), b.ID)
	assert.Error(t, err)
}

func TestAssignCrewPrunesStaleCheckIns(t *testing.T) {
	store := newFakeBookingStore()
	s := newTestService(store)
	b := createBooking(t, s, 10000, 0, 0)

	_, err := s.AssignCrew(context.Background(), b.ID, []int{7, 8})
	require.NoError(t, err)
	_, err = s.CheckIn(context.Background(), b.ID, 7, "6:45 PM")
	require.NoError(t, err)
	_, err = s.CheckIn(context.Background(), b.ID, 8, "7:10 PM")
	require.NoError(t, err)

	updated, err := s.AssignCrew(context.Background(), b.ID, []int{8, 9})
	require.NoError(t, err)

	assert.Equal(t, []int{8, 9}, updated.CrewAssigned)
	assert.NotContains(t, updated.CheckInTimes, 7)
	assert.Equal(t, "7:10 PM", updated.CheckInTimes[8])
}

func TestCheckInRejectsUnassignedCrew(t *testing.T) {
	s := newTestService(newFakeBookingStore())
	b := createBooking(t, s, 10000, 0, 0)

	_, err := s.CheckIn(context.Background(), b.ID, 42, "8:00 PM")
	assert.Error(t, err)
}

func TestPendingCount(t *testing.T) {
	store := newFakeBookingStore()
	s := newTestService(store)
	createBooking(t, s, 10000, 0, 0)
	b := createBooking(t, s, 12000, 0, 0)
	_, err := s.ChangeStatus(context.Background(), b.ID, models.StatusConfirmed, true)
	require.NoError(t, err)

	count, err := s.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
