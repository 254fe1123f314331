package models

import "time"

// FinanceRecordType represents the direction of a finance record
type FinanceRecordType string

const (
	FinanceIncome  FinanceRecordType = "INCOME"
	FinanceExpense FinanceRecordType = "EXPENSE"
)

// Categories the system itself writes. Admin-entered categories are free text.
const (
	CategoryBookingPayment = "Booking Payment" // auto INCOME when a balance is cleared
	CategorySalary         = "Salary"          // auto EXPENSE on crew payout
)

// FinanceRecord is a point-in-time ledger entry. Nothing ties its amount
// back to a booking field after creation.
type FinanceRecord struct {
	ID          int               `json:"id"`
	Type        FinanceRecordType `json:"type"`
	Amount      float64           `json:"amount"`
	Category    string            `json:"category"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	// RelatedBookingID links the record to a booking for event-level P&L.
	// It may dangle if the booking is later deleted; such records stay in
	// the flat list but drop out of per-booking P&L.
	RelatedBookingID *int      `json:"related_booking_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateFinanceRecordRequest represents the request body for a manual entry
type CreateFinanceRecordRequest struct {
	Type             FinanceRecordType `json:"type"`
	Amount           float64           `json:"amount"`
	Category         string            `json:"category"`
	Date             string            `json:"date"` // YYYY-MM-DD
	Description      string            `json:"description"`
	RelatedBookingID *int              `json:"related_booking_id"`
}

// UpdateFinanceRecordRequest represents the request body for editing an entry
type UpdateFinanceRecordRequest struct {
	Type             *FinanceRecordType `json:"type"`
	Amount           *float64           `json:"amount"`
	Category         *string            `json:"category"`
	Date             *string            `json:"date"`
	Description      *string            `json:"description"`
	RelatedBookingID *int               `json:"related_booking_id"`
}

// EventExpenseRequest is the "expense calculator" helper: the description
// gets tagged with the event context of the booking it belongs to.
type EventExpenseRequest struct {
	BookingID   int     `json:"booking_id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CrewPayoutRequest records a salary payout for a crew member.
type CrewPayoutRequest struct {
	CrewID int     `json:"crew_id"`
	Amount float64 `json:"amount"` // 0 means pay the stored monthly salary
	Notes  string  `json:"notes"`
}
