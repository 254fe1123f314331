package models

import "time"

// EventPackage is an admin-managed catalog entry shown to customers.
type EventPackage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Features  []string  `json:"features"`
	IsPopular bool      `json:"is_popular"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEventPackageRequest represents the request body for creating a package
type CreateEventPackageRequest struct {
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Features  []string `json:"features"`
	IsPopular bool     `json:"is_popular"`
}

// UpdateEventPackageRequest represents the request body for updating a package
type UpdateEventPackageRequest struct {
	Name      *string   `json:"name"`
	Price     *float64  `json:"price"`
	Features  *[]string `json:"features"`
	IsPopular *bool     `json:"is_popular"`
}
