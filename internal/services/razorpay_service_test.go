package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dj-backend/internal/config"
	"dj-backend/internal/models"
)

func TestPaymentLinkFallsBackToUPI(t *testing.T) {
	cfg := &config.Config{}
	cfg.Business.Name = "Vetri DJ Sounds"
	cfg.Business.UPIAddress = "vetridj@upi"
	s := NewRazorpayService(cfg)

	link, provider := s.PaymentLink(context.Background(), &models.Booking{ID: 9, BalanceAmount: 1500})

	assert.Equal(t, "upi", provider)
	assert.True(t, strings.HasPrefix(link, "upi://pay?"), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "vetridj@upi", q.Get("pa"))
	assert.Equal(t, "Vetri DJ Sounds", q.Get("pn"))
	assert.Equal(t, "1500.00", q.Get("am"))
	assert.Equal(t, "INR", q.Get("cu"))
}

func TestPaymentLinkUnconfigured(t *testing.T) {
	s := NewRazorpayService(&config.Config{})

	link, provider := s.PaymentLink(context.Background(), &models.Booking{ID: 9, BalanceAmount: 1500})

	assert.Empty(t, link)
	assert.Empty(t, provider)
}
