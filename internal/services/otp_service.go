package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"dj-backend/internal/auth"
	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
	"dj-backend/internal/sms"
	"dj-backend/internal/timeutil"
)

const (
	otpLength      = 6
	otpTTL         = 5 * time.Minute
	otpMaxAttempts = 3
)

// OTPService handles phone-based customer login. A verified code logs the
// customer in, creating the account on first use.
type OTPService struct {
	Repo       *repositories.OTPRepository
	UserRepo   *repositories.UserRepository
	JWTManager *auth.JWTManager
	SMS        sms.Provider
}

func NewOTPService(repo *repositories.OTPRepository, userRepo *repositories.UserRepository, jwtManager *auth.JWTManager, provider sms.Provider) *OTPService {
	return &OTPService{Repo: repo, UserRepo: userRepo, JWTManager: jwtManager, SMS: provider}
}

// generateCode returns a 6-digit code using crypto/rand. math/rand would be
// guessable for a login credential.
func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n), nil
}

// RequestOTP generates and "sends" a login code.
func (s *OTPService) RequestOTP(ctx context.Context, phone string) error {
	if len(phone) < 10 {
		return fmt.Errorf("invalid phone number")
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	otp := &models.CustomerOTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: timeutil.Now().Add(otpTTL),
	}
	if err := s.Repo.Create(ctx, otp); err != nil {
		return err
	}
	return s.SMS.SendOTP(phone, code)
}

// VerifyOTP exchanges a valid code for a session. Unknown phones get a
// fresh CUSTOMER account so a booking request can follow immediately.
func (s *OTPService) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error) {
	otp, err := s.Repo.GetLatest(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("no active code for this number, request a new one")
	}

	if timeutil.Now().After(otp.ExpiresAt) {
		return nil, fmt.Errorf("code expired, request a new one")
	}
	if otp.Attempts >= otpMaxAttempts {
		return nil, fmt.Errorf("too many attempts, request a new code")
	}

	if otp.Code != req.Code {
		if err := s.Repo.IncrementAttempts(ctx, otp.ID); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("incorrect code")
	}

	if err := s.Repo.MarkUsed(ctx, otp.ID); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		user = &models.User{
			Name:       "Customer " + req.Phone,
			Phone:      req.Phone,
			Role:       models.RoleCustomer,
			JoinedDate: timeutil.Now(),
			IsActive:   true,
		}
		if err := s.UserRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create customer account: %w", err)
		}
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is suspended")
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
