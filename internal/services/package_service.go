package services

import (
	"context"
	"fmt"

	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
)

type PackageService struct {
	Repo *repositories.PackageRepository
}

func NewPackageService(repo *repositories.PackageRepository) *PackageService {
	return &PackageService{Repo: repo}
}

func (s *PackageService) CreatePackage(ctx context.Context, req *models.CreateEventPackageRequest) (*models.EventPackage, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	p := &models.EventPackage{
		Name:      req.Name,
		Price:     req.Price,
		Features:  req.Features,
		IsPopular: req.IsPopular,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PackageService) GetPackage(ctx context.Context, id int) (*models.EventPackage, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PackageService) ListPackages(ctx context.Context) ([]*models.EventPackage, error) {
	return s.Repo.List(ctx)
}

func (s *PackageService) UpdatePackage(ctx context.Context, id int, req *models.UpdateEventPackageRequest) (*models.EventPackage, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		p.Price = *req.Price
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.IsPopular != nil {
		p.IsPopular = *req.IsPopular
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PackageService) DeletePackage(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
