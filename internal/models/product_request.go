package models

import "time"

// Product request statuses
const (
	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestRejected = "REJECTED"
)

// ProductRequest is a crew member asking admin for new equipment.
type ProductRequest struct {
	ID           int       `json:"id"`
	CrewID       int       `json:"crew_id"`
	CrewName     string    `json:"crew_name"`
	ProductName  string    `json:"product_name"`
	Requirements string    `json:"requirements"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateProductRequestRequest represents the request body for a crew request
type CreateProductRequestRequest struct {
	ProductName  string `json:"product_name"`
	Requirements string `json:"requirements"`
	Quantity     int    `json:"quantity"`
}
