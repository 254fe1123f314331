package services

import (
	"context"
	"fmt"

	"dj-backend/internal/models"
	"dj-backend/internal/repositories"

	"github.com/pquerna/otp/totp"
)

// TOTPService manages optional authenticator-app 2FA for admin accounts.
type TOTPService struct {
	Repo     *repositories.TOTPRepository
	UserRepo *repositories.UserRepository
	Issuer   string
}

func NewTOTPService(repo *repositories.TOTPRepository, userRepo *repositories.UserRepository, issuer string) *TOTPService {
	return &TOTPService{Repo: repo, UserRepo: userRepo, Issuer: issuer}
}

// Setup generates a fresh secret, stored disabled until the first code
// verifies. Re-running setup replaces any previous secret.
func (s *TOTPService) Setup(ctx context.Context, userID int) (*models.TOTPSetupResponse, error) {
	user, err := s.UserRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("generate TOTP secret: %w", err)
	}

	if err := s.Repo.Upsert(ctx, userID, key.Secret()); err != nil {
		return nil, err
	}

	return &models.TOTPSetupResponse{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
	}, nil
}

// Enable verifies the first code from the authenticator app and switches
// 2FA on for the account.
func (s *TOTPService) Enable(ctx context.Context, userID int, code string) error {
	record, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("run setup first")
	}
	if !totp.Validate(code, record.Secret) {
		return fmt.Errorf("invalid code")
	}
	return s.Repo.SetEnabled(ctx, userID, true)
}

// Verify checks a login-time code for an account with 2FA enabled.
func (s *TOTPService) Verify(ctx context.Context, userID int, code string) error {
	record, err := s.Repo.Get(ctx, userID)
	if err != nil || !record.Enabled {
		return fmt.Errorf("2FA not enabled for this account")
	}
	if !totp.Validate(code, record.Secret) {
		return fmt.Errorf("invalid code")
	}
	return nil
}

// Enabled reports whether the account requires a second factor at login.
func (s *TOTPService) Enabled(ctx context.Context, userID int) bool {
	record, err := s.Repo.Get(ctx, userID)
	return err == nil && record.Enabled
}

// Disable removes 2FA from the account.
func (s *TOTPService) Disable(ctx context.Context, userID int) error {
	return s.Repo.Delete(ctx, userID)
}
