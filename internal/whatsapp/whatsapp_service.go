package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"dj-backend/internal/models"
	"dj-backend/internal/timeutil"
)

// Service builds wa.me deep links with prefilled messages. Opening the link
// is up to the admin; no WhatsApp API credentials are involved.
type Service struct {
	BusinessName string
	CountryCode  string
}

func NewService(businessName, countryCode string) *Service {
	if countryCode == "" {
		countryCode = "91"
	}
	return &Service{BusinessName: businessName, CountryCode: countryCode}
}

// normalizePhone strips formatting and prefixes the country code when the
// number looks local. wa.me wants digits only, no plus sign.
func (s *Service) normalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()
	if len(n) == 10 {
		return s.CountryCode + n
	}
	return n
}

func (s *Service) link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.normalizePhone(phone), url.QueryEscape(message))
}

// PaymentReminderLink prefills the balance-due reminder for a booking.
func (s *Service) PaymentReminderLink(b *models.Booking) string {
	msg := fmt.Sprintf(
		"Hi %s! This is a payment reminder from %s for your %s on %s.\n\nTotal: Rs. %.0f\nBalance due: Rs. %.0f\n\nPlease complete the payment at your earliest convenience. Thank you!",
		b.CustomerName, s.BusinessName, b.EventType,
		timeutil.FormatIST(b.Date, "02 Jan 2006"),
		b.Amount, b.BalanceAmount,
	)
	return s.link(b.CustomerPhone, msg)
}

// ReceiptLink prefills a payment-received confirmation.
func (s *Service) ReceiptLink(b *models.Booking, amount float64) string {
	msg := fmt.Sprintf(
		"Hi %s! We have received your payment of Rs. %.0f for the %s on %s. Your booking is confirmed.\n\nThank you for choosing %s!",
		b.CustomerName, amount, b.EventType,
		timeutil.FormatIST(b.Date, "02 Jan 2006"),
		s.BusinessName,
	)
	return s.link(b.CustomerPhone, msg)
}

// BookingConfirmationLink prefills the confirmation sent after a request is
// accepted.
func (s *Service) BookingConfirmationLink(b *models.Booking) string {
	msg := fmt.Sprintf(
		"Hi %s! Your %s booking with %s on %s at %s is confirmed.\n\nTotal: Rs. %.0f\nAdvance: Rs. %.0f\nBalance: Rs. %.0f\n\nSee you at the event!",
		b.CustomerName, b.EventType, s.BusinessName,
		timeutil.FormatIST(b.Date, "02 Jan 2006"),
		b.Location, b.Amount, b.AdvanceAmount, b.BalanceAmount,
	)
	return s.link(b.CustomerPhone, msg)
}
