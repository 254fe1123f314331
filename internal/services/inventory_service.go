package services

import (
	"context"
	"fmt"

	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
)

type InventoryService struct {
	Repo *repositories.InventoryRepository
}

func NewInventoryService(repo *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{Repo: repo}
}

func (s *InventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if req.Quantity < 0 || req.TotalQuantity < 0 {
		return nil, fmt.Errorf("quantities cannot be negative")
	}

	status := req.Status
	if status == "" {
		status = models.InventoryAvailable
	}
	totalQty := req.TotalQuantity
	if totalQty == 0 {
		totalQty = req.Quantity
	}

	item := &models.InventoryItem{
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		TotalQuantity: totalQty,
		Status:        status,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id int) (*models.InventoryItem, error) {
	return s.Repo.Get(ctx, id)
}

func (s *InventoryService) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	return s.Repo.List(ctx)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("quantity cannot be negative")
		}
		item.Quantity = *req.Quantity
	}
	if req.TotalQuantity != nil {
		if *req.TotalQuantity < 0 {
			return nil, fmt.Errorf("total quantity cannot be negative")
		}
		item.TotalQuantity = *req.TotalQuantity
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
