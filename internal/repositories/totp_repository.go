package repositories

import (
	"context"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TOTPRepository struct {
	DB *pgxpool.Pool
}

func NewTOTPRepository(db *pgxpool.Pool) *TOTPRepository {
	return &TOTPRepository{DB: db}
}

// Upsert stores a fresh secret for a user, disabled until verified.
func (r *TOTPRepository) Upsert(ctx context.Context, userID int, secret string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO user_totp (user_id, secret, enabled)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id) DO UPDATE SET secret = $2, enabled = FALSE`,
		userID, secret)
	return err
}

func (r *TOTPRepository) Get(ctx context.Context, userID int) (*models.UserTOTP, error) {
	t := &models.UserTOTP{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, user_id, secret, enabled, created_at FROM user_totp WHERE user_id = $1`,
		userID,
	).Scan(&t.ID, &t.UserID, &t.Secret, &t.Enabled, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TOTPRepository) SetEnabled(ctx context.Context, userID int, enabled bool) error {
	_, err := r.DB.Exec(ctx, `UPDATE user_totp SET enabled = $1 WHERE user_id = $2`, enabled, userID)
	return err
}

func (r *TOTPRepository) Delete(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM user_totp WHERE user_id = $1`, userID)
	return err
}
