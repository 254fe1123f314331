package ledger

import (
	"testing"

	"dj-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func expense(bookingID *int, amount float64) *models.FinanceRecord {
	return &models.FinanceRecord{Type: models.FinanceExpense, Amount: amount, RelatedBookingID: bookingID}
}

func TestEventPnL(t *testing.T) {
	b := &models.Booking{ID: 7, Amount: 10000}
	records := []*models.FinanceRecord{
		expense(intPtr(7), 2000),
		expense(intPtr(7), 1500),
		expense(intPtr(8), 5000), // different booking
		expense(nil, 999),        // unlinked
		{Type: models.FinanceIncome, Amount: 3000, RelatedBookingID: intPtr(7)}, // income is supplementary
	}

	p := EventPnL(b, records)
	assert.Equal(t, 10000.0, p.Revenue)
	assert.Equal(t, 3500.0, p.Expense)
	assert.Equal(t, 6500.0, p.Profit)
	assert.Equal(t, 65.0, p.ProfitMargin)
	assert.Equal(t, "A", p.Grade)
}

func TestEventPnLZeroRevenue(t *testing.T) {
	b := &models.Booking{ID: 1, Amount: 0}
	p := EventPnL(b, []*models.FinanceRecord{expense(intPtr(1), 500)})

	assert.Equal(t, 0.0, p.Revenue)
	assert.Equal(t, 500.0, p.Expense)
	assert.Equal(t, -500.0, p.Profit)
	assert.Equal(t, 0.0, p.ProfitMargin) // no divide by zero
}

func TestEventPnLNoLinkedRecords(t *testing.T) {
	b := &models.Booking{ID: 3, Amount: 8000}
	p := EventPnL(b, nil)

	assert.Equal(t, 8000.0, p.Revenue)
	assert.Equal(t, 0.0, p.Expense)
	assert.Equal(t, 8000.0, p.Profit)
	assert.Equal(t, 100.0, p.ProfitMargin)
	assert.Equal(t, "A+", p.Grade)
}

func TestGradeBandsAreMonotonic(t *testing.T) {
	tests := []struct {
		margin float64
		want   string
	}{
		{100, "A+"},
		{70.01, "A+"},
		{70, "A"},
		{50.5, "A"},
		{50, "B"},
		{30.5, "B"},
		{30, "C"},
		{0, "C"},
		{-20, "C"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.margin), "margin %v", tt.margin)
	}
}
