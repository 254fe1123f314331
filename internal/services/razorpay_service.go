package services

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"dj-backend/internal/config"
	"dj-backend/internal/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService creates hosted payment links when API keys are configured
// and falls back to a upi:// deep link otherwise. Either way the link is
// handed to the admin to forward; the ledger is only updated through
// mark-as-paid.
type RazorpayService struct {
	client       *razorpay.Client
	upiAddress   string
	businessName string
}

func NewRazorpayService(cfg *config.Config) *RazorpayService {
	s := &RazorpayService{
		upiAddress:   cfg.Business.UPIAddress,
		businessName: cfg.Business.Name,
	}
	if cfg.Razorpay.KeyID != "" && cfg.Razorpay.KeySecret != "" {
		s.client = razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	}
	return s
}

// PaymentLink returns a link for the booking's outstanding balance and the
// provider that produced it ("razorpay" or "upi"). Empty strings mean no
// payment channel is configured.
func (s *RazorpayService) PaymentLink(ctx context.Context, b *models.Booking) (string, string) {
	if s.client != nil {
		if link := s.razorpayLink(b); link != "" {
			return link, "razorpay"
		}
	}
	if s.upiAddress != "" {
		return s.upiLink(b), "upi"
	}
	return "", ""
}

func (s *RazorpayService) razorpayLink(b *models.Booking) string {
	// Razorpay wants paise
	data := map[string]interface{}{
		"amount":      int64(b.BalanceAmount * 100),
		"currency":    "INR",
		"description": fmt.Sprintf("Balance for %s on %s", b.EventType, b.Date.Format("02 Jan 2006")),
		"customer": map[string]interface{}{
			"name":    b.CustomerName,
			"contact": b.CustomerPhone,
			"email":   b.CustomerEmail,
		},
		"notes": map[string]interface{}{
			"booking_id": fmt.Sprintf("%d", b.ID),
		},
	}

	link, err := s.client.PaymentLink.Create(data, nil)
	if err != nil {
		log.Printf("[Razorpay] payment link for booking %d failed: %v", b.ID, err)
		return ""
	}
	shortURL, _ := link["short_url"].(string)
	return shortURL
}

func (s *RazorpayService) upiLink(b *models.Booking) string {
	q := url.Values{}
	q.Set("pa", s.upiAddress)
	q.Set("pn", s.businessName)
	q.Set("am", fmt.Sprintf("%.2f", b.BalanceAmount))
	q.Set("cu", "INR")
	q.Set("tn", fmt.Sprintf("Booking %d balance", b.ID))
	return "upi://pay?" + q.Encode()
}
