package models

import "time"

// User roles. Stored uppercase to match the dashboard clients.
const (
	RoleAdmin    = "ADMIN"
	RoleCrew     = "CREW"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // optional for phone-only customers
	Phone        string    `json:"phone"`
	WhatsApp     string    `json:"whatsapp"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	Pincode      string    `json:"pincode"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	JoinedDate   time.Time `json:"joined_date"`
	Salary       float64   `json:"salary,omitempty"` // crew only
	Avatar       string    `json:"avatar,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // defaults to CUSTOMER; ADMIN cannot be self-assigned
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateUserRequest represents the request body for creating a user (admin)
type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	Phone    string  `json:"phone"`
	WhatsApp string  `json:"whatsapp"`
	Pincode  string  `json:"pincode"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Salary   float64 `json:"salary"`
	Avatar   string  `json:"avatar"`
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"` // Optional
	Role     string  `json:"role"`
	Phone    string  `json:"phone"`
	WhatsApp string  `json:"whatsapp"`
	Pincode  string  `json:"pincode"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Salary   float64 `json:"salary"`
	Avatar   string  `json:"avatar"`
}
