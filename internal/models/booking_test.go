package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusCompleted, StatusCancelled}, // voiding a wrongly-closed event
		{StatusPending, StatusPending},     // no-op rewrite
		{StatusCancelled, StatusCancelled},
	}
	for _, tt := range allowed {
		assert.True(t, ValidTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	denied := []struct{ from, to BookingStatus }{
		{StatusPending, StatusCompleted},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusCompleted},
		{StatusCompleted, StatusConfirmed},
		{StatusCompleted, StatusPending},
		{StatusConfirmed, StatusPending},
	}
	for _, tt := range denied {
		assert.False(t, ValidTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("DRAFT").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestCustomerRefKey(t *testing.T) {
	id := 42
	registered := CustomerRef{ID: &id, Name: "Anand"}
	guest := CustomerRef{Name: "Anand"}

	assert.True(t, registered.Registered())
	assert.False(t, guest.Registered())
	assert.Equal(t, "user:42", registered.Key())
	assert.Equal(t, "guest:Anand", guest.Key())
	assert.NotEqual(t, registered.Key(), guest.Key())

	// A guest whose typed name looks like an id namespace still cannot
	// collide with a real account key.
	weird := CustomerRef{Name: "user:42"}
	assert.Equal(t, "guest:user:42", weird.Key())
}

func TestBookingCustomerRef(t *testing.T) {
	id := 7
	linked := &Booking{CustomerID: &id, CustomerName: "Bhavna"}
	assert.Equal(t, "user:7", linked.CustomerRef().Key())

	guest := &Booking{CustomerName: "Walk-in"}
	assert.Equal(t, "guest:Walk-in", guest.CustomerRef().Key())
}
