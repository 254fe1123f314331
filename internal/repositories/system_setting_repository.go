package repositories

import (
	"context"

	"dj-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SystemSettingRepository struct {
	DB *pgxpool.Pool
}

func NewSystemSettingRepository(db *pgxpool.Pool) *SystemSettingRepository {
	return &SystemSettingRepository{DB: db}
}

func (r *SystemSettingRepository) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	s := &models.SystemSetting{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, setting_key, setting_value, description, updated_at FROM system_settings WHERE setting_key = $1`,
		key,
	).Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SystemSettingRepository) List(ctx context.Context) ([]*models.SystemSetting, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, setting_key, setting_value, description, updated_at FROM system_settings ORDER BY setting_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.SystemSetting
	for rows.Next() {
		s := &models.SystemSetting{}
		if err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Upsert writes a setting, creating it on first use.
func (r *SystemSettingRepository) Upsert(ctx context.Context, key, value string) (*models.SystemSetting, error) {
	s := &models.SystemSetting{}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO system_settings (setting_key, setting_value)
		VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE SET setting_value = $2, updated_at = NOW()
		RETURNING id, setting_key, setting_value, description, updated_at`,
		key, value,
	).Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
