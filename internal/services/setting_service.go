package services

import (
	"context"
	"fmt"

	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
)

type SettingService struct {
	Repo *repositories.SystemSettingRepository
}

func NewSettingService(repo *repositories.SystemSettingRepository) *SettingService {
	return &SettingService{Repo: repo}
}

func (s *SettingService) ListSettings(ctx context.Context) ([]*models.SystemSetting, error) {
	return s.Repo.List(ctx)
}

func (s *SettingService) GetSetting(ctx context.Context, key string) (*models.SystemSetting, error) {
	return s.Repo.Get(ctx, key)
}

func (s *SettingService) UpdateSetting(ctx context.Context, key, value string) (*models.SystemSetting, error) {
	if key == "" {
		return nil, fmt.Errorf("setting key is required")
	}
	return s.Repo.Upsert(ctx, key, value)
}
