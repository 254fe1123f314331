package ledger

import "dj-backend/internal/models"

// CustomerRow is one customer's aggregated financial summary across all
// their bookings.
type CustomerRow struct {
	// CustomerID is nil for guest rows (bookings never linked to an account).
	CustomerID    *int    `json:"customer_id,omitempty"`
	CustomerName  string  `json:"customer_name"`
	Phone         string  `json:"phone"`
	TotalAmount   float64 `json:"total_amount"`
	TotalAdvance  float64 `json:"total_advance"`
	TotalReceived float64 `json:"total_received"`
	TotalBalance  float64 `json:"total_balance"`
	BookingCount  int     `json:"booking_count"`
}

// Stats are the headline numbers over a set of ledger rows.
type Stats struct {
	TotalReceivable float64 `json:"total_receivable"`
	TotalCollected  float64 `json:"total_collected"`
	TotalValue      float64 `json:"total_value"`
}

// Aggregate produces one row per distinct customer identity.
//
// Registered customers (role CUSTOMER) are seeded first with zeroed totals,
// so an account with no bookings still appears. Bookings are then folded in,
// keyed by models.CustomerRef: linked bookings group under the account id,
// guest bookings under the exact typed name. Two guests with the identical
// name merge; a typo makes a separate row. That asymmetry is documented
// behavior, not something to fix here.
//
// Output order is insertion order: registered customers in the order given,
// then guests in order of first appearance. Sorting is the caller's concern.
// Inputs are never mutated and missing numeric fields count as zero, so the
// pass is idempotent and cannot fail halfway.
func Aggregate(customers []*models.User, bookings []*models.Booking) []*CustomerRow {
	index := make(map[string]*CustomerRow, len(customers))
	rows := make([]*CustomerRow, 0, len(customers))

	for _, c := range customers {
		if c == nil || c.Role != models.RoleCustomer {
			continue
		}
		id := c.ID
		ref := models.CustomerRef{ID: &id, Name: c.Name}
		if _, ok := index[ref.Key()]; ok {
			continue
		}
		row := &CustomerRow{CustomerID: &id, CustomerName: c.Name, Phone: c.Phone}
		index[ref.Key()] = row
		rows = append(rows, row)
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		ref := b.CustomerRef()
		row, ok := index[ref.Key()]
		if !ok {
			row = &CustomerRow{
				CustomerID:   copyID(b.CustomerID),
				CustomerName: b.CustomerName,
				Phone:        b.CustomerPhone,
			}
			index[ref.Key()] = row
			rows = append(rows, row)
		}
		row.TotalAmount += sanitize(b.Amount)
		row.TotalAdvance += sanitize(b.AdvanceAmount)
		row.TotalReceived += sanitize(b.ReceivedAmount)
		row.TotalBalance += sanitize(b.BalanceAmount)
		row.BookingCount++
	}

	return rows
}

// Totals sums the headline stats over ledger rows. Collected counts both
// advances and later payments.
func Totals(rows []*CustomerRow) Stats {
	var s Stats
	for _, row := range rows {
		s.TotalReceivable += row.TotalBalance
		s.TotalCollected += row.TotalReceived + row.TotalAdvance
		s.TotalValue += row.TotalAmount
	}
	return s
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
