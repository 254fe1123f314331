package ledger

import (
	"testing"

	"dj-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func booking(name string, customerID *int, amount, advance, received float64) *models.Booking {
	return &models.Booking{
		CustomerName:   name,
		CustomerID:     customerID,
		Amount:         amount,
		AdvanceAmount:  advance,
		ReceivedAmount: received,
		BalanceAmount:  Balance(amount, advance, received),
	}
}

func customer(id int, name, phone string) *models.User {
	return &models.User{ID: id, Name: name, Phone: phone, Role: models.RoleCustomer}
}

func TestAggregateGroupsGuestsByExactName(t *testing.T) {
	bookings := []*models.Booking{
		booking("Guest X", nil, 10000, 2000, 0),
		booking("Guest X", nil, 5000, 0, 1000),
		booking("Guest X", intPtr(1), 8000, 0, 0),
	}

	rows := Aggregate(nil, bookings)
	require.Len(t, rows, 2)

	guest := rows[0]
	assert.Nil(t, guest.CustomerID)
	assert.Equal(t, "Guest X", guest.CustomerName)
	assert.Equal(t, 2, guest.BookingCount)
	assert.Equal(t, 15000.0, guest.TotalAmount)
	assert.Equal(t, 2000.0, guest.TotalAdvance)
	assert.Equal(t, 1000.0, guest.TotalReceived)
	assert.Equal(t, 12000.0, guest.TotalBalance)

	linked := rows[1]
	require.NotNil(t, linked.CustomerID)
	assert.Equal(t, 1, *linked.CustomerID)
	assert.Equal(t, 1, linked.BookingCount)
}

func TestAggregateSeedsRegisteredCustomersFirst(t *testing.T) {
	customers := []*models.User{
		customer(1, "Anand", "+91 90000 00001"),
		customer(2, "Bhavna", "+91 90000 00002"),
		{ID: 3, Name: "Crew Guy", Role: models.RoleCrew}, // ignored
	}
	bookings := []*models.Booking{
		booking("Walk-in", nil, 7000, 0, 0),
		booking("Bhavna", intPtr(2), 12000, 6000, 0),
	}

	rows := Aggregate(customers, bookings)
	require.Len(t, rows, 3)

	// Registered accounts first in given order, then first-seen guests.
	assert.Equal(t, "Anand", rows[0].CustomerName)
	assert.Equal(t, 0, rows[0].BookingCount)
	assert.Equal(t, 0.0, rows[0].TotalAmount)

	assert.Equal(t, "Bhavna", rows[1].CustomerName)
	assert.Equal(t, 1, rows[1].BookingCount)
	assert.Equal(t, 12000.0, rows[1].TotalAmount)

	assert.Equal(t, "Walk-in", rows[2].CustomerName)
	assert.Equal(t, "+91 90000 00001", rows[0].Phone)
}

func TestAggregateConservesTotals(t *testing.T) {
	bookings := []*models.Booking{
		booking("A", nil, 100, 0, 0),
		booking("B", intPtr(9), 250.5, 10, 5),
		booking("A", nil, 49.5, 0, 0),
		booking("C", intPtr(4), 0, 0, 0),
	}

	var want float64
	for _, b := range bookings {
		want += b.Amount
	}

	rows := Aggregate([]*models.User{customer(9, "B", "")}, bookings)
	var got float64
	for _, row := range rows {
		got += row.TotalAmount
	}
	assert.Equal(t, want, got)
}

func TestAggregateIsIdempotentAndPure(t *testing.T) {
	customers := []*models.User{customer(1, "Anand", "123")}
	bookings := []*models.Booking{
		booking("Anand", intPtr(1), 9000, 3000, 0),
		booking("Guest", nil, 4000, 0, 0),
	}

	first := Aggregate(customers, bookings)
	second := Aggregate(customers, bookings)
	assert.Equal(t, first, second)

	// Inputs untouched.
	assert.Equal(t, 9000.0, bookings[0].Amount)
	assert.Equal(t, 6000.0, bookings[0].BalanceAmount)
}

func TestAggregateEmptyInput(t *testing.T) {
	rows := Aggregate(nil, nil)
	assert.Empty(t, rows)

	stats := Totals(rows)
	assert.Equal(t, 0.0, stats.TotalReceivable)
	assert.Equal(t, 0.0, stats.TotalCollected)
	assert.Equal(t, 0.0, stats.TotalValue)
}

func TestTotals(t *testing.T) {
	rows := Aggregate(nil, []*models.Booking{
		booking("A", nil, 20000, 5000, 5000),
		booking("B", nil, 10000, 0, 12000), // overpaid
	})

	stats := Totals(rows)
	assert.Equal(t, 8000.0, stats.TotalReceivable) // 10000 + (-2000)
	assert.Equal(t, 22000.0, stats.TotalCollected)
	assert.Equal(t, 30000.0, stats.TotalValue)
}

func TestAggregateSurvivesNilEntries(t *testing.T) {
	rows := Aggregate([]*models.User{nil}, []*models.Booking{nil, booking("A", nil, 10, 0, 0)})
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].BookingCount)
}
