package models

import "time"

// Inventory item statuses
const (
	InventoryAvailable   = "AVAILABLE"
	InventoryInUse       = "IN_USE"
	InventoryMaintenance = "MAINTENANCE"
)

type InventoryItem struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"` // Sound, Lighting, Cables...
	Quantity      int       `json:"quantity"` // currently available
	TotalQuantity int       `json:"total_quantity"`
	Status        string    `json:"status"`
	LastChecked   time.Time `json:"last_checked"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateInventoryItemRequest represents the request body for creating an item
type CreateInventoryItemRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	TotalQuantity int    `json:"total_quantity"`
	Status        string `json:"status"`
}

// UpdateInventoryItemRequest represents the request body for updating an item
type UpdateInventoryItemRequest struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Quantity      *int    `json:"quantity"`
	TotalQuantity *int    `json:"total_quantity"`
	Status        *string `json:"status"`
}
