package models

import (
	"fmt"
	"time"
)

// BookingStatus is a plain enum. Admins may set any value directly;
// ValidTransition is the opt-in guard for callers that want the
// intended lifecycle graph.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// IsValid reports whether s is one of the four known statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions is the intended lifecycle. COMPLETED -> CANCELLED is allowed:
// admins use it to void a wrongly-closed event.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusCancelled},
	StatusCancelled: {},
}

// ValidTransition reports whether from -> to follows the intended lifecycle.
// Setting the same status again is always fine. Callers that mirror the
// historical admin-override behavior simply skip this check.
func ValidTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking is one event engagement with a customer.
type Booking struct {
	ID            int    `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	// CustomerID links to a User with role CUSTOMER; nil for guest bookings.
	CustomerID *int `json:"customer_id,omitempty"`

	EventType string    `json:"event_type"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	DJPackage string    `json:"dj_package"`
	Notes     string    `json:"notes"`

	Status BookingStatus `json:"status"`

	Amount         float64 `json:"amount"`
	AdvanceAmount  float64 `json:"advance_amount"`
	ReceivedAmount float64 `json:"received_amount"`
	// BalanceAmount is denormalized and recomputed on every save.
	// Negative means overpayment; it is stored as-is, never clamped.
	BalanceAmount float64 `json:"balance_amount"`

	CrewAssigned []int `json:"crew_assigned"`
	// CheckInTimes maps crew user id to a free-text arrival string.
	CheckInTimes map[int]string `json:"check_in_times"`

	PaymentRequested bool `json:"payment_requested"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerRef is the tagged union identifying who a booking belongs to:
// a registered account, or a guest known only by the typed name.
type CustomerRef struct {
	ID   *int
	Name string
}

// Registered reports whether the booking is linked to an account.
func (r CustomerRef) Registered() bool {
	return r.ID != nil
}

// Key returns the normalized ledger grouping key. The two namespaces keep
// an account id from ever colliding with a guest name; identical guest
// names merge by design, a typo makes a new row.
func (r CustomerRef) Key() string {
	if r.ID != nil {
		return fmt.Sprintf("user:%d", *r.ID)
	}
	return "guest:" + r.Name
}

// CustomerRef returns the booking's customer identity.
func (b *Booking) CustomerRef() CustomerRef {
	return CustomerRef{ID: b.CustomerID, Name: b.CustomerName}
}

// CreateBookingRequest represents the request body for creating a booking
type CreateBookingRequest struct {
	CustomerName   string  `json:"customer_name"`
	CustomerPhone  string  `json:"customer_phone"`
	CustomerEmail  string  `json:"customer_email"`
	CustomerID     *int    `json:"customer_id"`
	EventType      string  `json:"event_type"`
	Date           string  `json:"date"` // YYYY-MM-DD
	Location       string  `json:"location"`
	DJPackage      string  `json:"dj_package"`
	Notes          string  `json:"notes"`
	Amount         float64 `json:"amount"`
	AdvanceAmount  float64 `json:"advance_amount"`
	ReceivedAmount float64 `json:"received_amount"`
}

// UpdateBookingRequest represents the request body for updating a booking.
// Pointer fields distinguish "not sent" from zero values so partial edits
// from the dashboards do not wipe fields.
type UpdateBookingRequest struct {
	CustomerName     *string  `json:"customer_name"`
	CustomerPhone    *string  `json:"customer_phone"`
	CustomerEmail    *string  `json:"customer_email"`
	EventType        *string  `json:"event_type"`
	Date             *string  `json:"date"`
	Location         *string  `json:"location"`
	DJPackage        *string  `json:"dj_package"`
	Notes            *string  `json:"notes"`
	Status           *string  `json:"status"`
	Amount           *float64 `json:"amount"`
	AdvanceAmount    *float64 `json:"advance_amount"`
	ReceivedAmount   *float64 `json:"received_amount"`
	PaymentRequested *bool    `json:"payment_requested"`
}

// ChangeStatusRequest moves a booking through its lifecycle. Strict turns
// on the transition guard; by default any status can be set directly.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Strict bool   `json:"strict"`
}

// AssignCrewRequest sets the full crew list for a booking.
type AssignCrewRequest struct {
	CrewIDs []int `json:"crew_ids"`
}

// CheckInRequest records a crew member's arrival at the event.
type CheckInRequest struct {
	ArrivalTime string `json:"arrival_time"` // free text, e.g. "6:45 PM"
}
