package whatsapp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dj-backend/internal/models"
)

func testBooking() *models.Booking {
	return &models.Booking{
		ID:            5,
		CustomerName:  "Priya",
		CustomerPhone: "98765 43210",
		EventType:     "Reception",
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Location:      "Chennai",
		Amount:        30000,
		AdvanceAmount: 10000,
		BalanceAmount: 20000,
	}
}

func TestNormalizePhone(t *testing.T) {
	s := NewService("Vetri DJ Sounds", "91")

	tests := []struct {
		in, want string
	}{
		{"9876543210", "919876543210"},
		{"98765 43210", "919876543210"},
		{"+91 98765-43210", "919876543210"},
		{"919876543210", "919876543210"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.normalizePhone(tt.in))
	}
}

func TestPaymentReminderLink(t *testing.T) {
	s := NewService("Vetri DJ Sounds", "91")

	link := s.PaymentReminderLink(testBooking())

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")
	assert.Contains(t, msg, "Priya")
	assert.Contains(t, msg, "Vetri DJ Sounds")
	assert.Contains(t, msg, "Balance due: Rs. 20000")
	assert.Contains(t, msg, "15 Mar 2026")
}

func TestBookingConfirmationLink(t *testing.T) {
	s := NewService("Vetri DJ Sounds", "91")

	u, err := url.Parse(s.BookingConfirmationLink(testBooking()))
	require.NoError(t, err)
	msg := u.Query().Get("text")
	assert.Contains(t, msg, "Reception")
	assert.Contains(t, msg, "Chennai")
	assert.Contains(t, msg, "Advance: Rs. 10000")
}

func TestDefaultCountryCode(t *testing.T) {
	s := NewService("Vetri DJ Sounds", "")
	assert.Equal(t, "91", s.CountryCode)
}
