package sms

import "log"

// Provider delivers one-time codes to customers. The real gateway sits
// behind this interface; development and tests use the mock.
type Provider interface {
	SendOTP(phone, code string) error
}

// MockProvider logs the code instead of sending it. Useful until an SMS
// gateway account is provisioned.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) SendOTP(phone, code string) error {
	log.Printf("[SMS] (mock) OTP for %s: %s", phone, code)
	return nil
}
