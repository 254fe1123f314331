package models

import "time"

// CustomerOTP is a one-time login code for a customer phone number.
// Delivery is simulated: the mock SMS provider prints the code.
type CustomerOTP struct {
	ID        int       `json:"id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestOTPRequest asks for a login code to be "sent" to a phone.
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest exchanges a code for a session token.
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}
