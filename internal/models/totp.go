package models

import "time"

// UserTOTP stores a TOTP secret for optional admin 2FA.
type UserTOTP struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Secret    string    `json:"-"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// TOTPSetupResponse carries the provisioning URI for authenticator apps.
type TOTPSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
}

// TOTPVerifyRequest verifies a 6-digit code.
type TOTPVerifyRequest struct {
	Code string `json:"code"`
}
