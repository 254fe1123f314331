package services

import (
	"context"
	"fmt"

	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
)

type ProductRequestService struct {
	Repo *repositories.ProductRequestRepository
}

func NewProductRequestService(repo *repositories.ProductRequestRepository) *ProductRequestService {
	return &ProductRequestService{Repo: repo}
}

// CreateRequest files a crew equipment request, always starting PENDING.
func (s *ProductRequestService) CreateRequest(ctx context.Context, crewID int, req *models.CreateProductRequestRequest) (*models.ProductRequest, error) {
	if req.ProductName == "" {
		return nil, fmt.Errorf("product name is required")
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	request := &models.ProductRequest{
		CrewID:       crewID,
		ProductName:  req.ProductName,
		Requirements: req.Requirements,
		Quantity:     quantity,
		Status:       models.RequestPending,
	}
	if err := s.Repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *ProductRequestService) ListRequests(ctx context.Context, crewID int) ([]*models.ProductRequest, error) {
	return s.Repo.List(ctx, crewID)
}

// Decide approves or rejects a request.
func (s *ProductRequestService) Decide(ctx context.Context, id int, status string) (*models.ProductRequest, error) {
	if status != models.RequestApproved && status != models.RequestRejected {
		return nil, fmt.Errorf("status must be APPROVED or REJECTED")
	}
	if err := s.Repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *ProductRequestService) DeleteRequest(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
