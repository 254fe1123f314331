package repositories

import (
	"context"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OTPRepository struct {
	DB *pgxpool.Pool
}

func NewOTPRepository(db *pgxpool.Pool) *OTPRepository {
	return &OTPRepository{DB: db}
}

func (r *OTPRepository) Create(ctx context.Context, otp *models.CustomerOTP) error {
	query := `
		INSERT INTO customer_otps (phone, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(ctx, query, otp.Phone, otp.Code, otp.ExpiresAt).
		Scan(&otp.ID, &otp.CreatedAt)
}

// GetLatest returns the most recent unused OTP for a phone number.
func (r *OTPRepository) GetLatest(ctx context.Context, phone string) (*models.CustomerOTP, error) {
	otp := &models.CustomerOTP{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, phone, code, expires_at, attempts, used, created_at
		FROM customer_otps
		WHERE phone = $1 AND used = FALSE
		ORDER BY created_at DESC
		LIMIT 1`, phone,
	).Scan(&otp.ID, &otp.Phone, &otp.Code, &otp.ExpiresAt, &otp.Attempts, &otp.Used, &otp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return otp, nil
}

func (r *OTPRepository) IncrementAttempts(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `UPDATE customer_otps SET attempts = attempts + 1 WHERE id = $1`, id)
	return err
}

func (r *OTPRepository) MarkUsed(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `UPDATE customer_otps SET used = TRUE WHERE id = $1`, id)
	return err
}
