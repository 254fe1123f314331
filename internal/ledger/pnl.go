package ledger

import "dj-backend/internal/models"

// PnL is the profit and loss picture for a single booking.
type PnL struct {
	BookingID    int     `json:"booking_id"`
	Revenue      float64 `json:"revenue"`
	Expense      float64 `json:"expense"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
	Grade        string  `json:"grade"`
}

// EventPnL computes revenue, expense, profit and margin for one booking.
//
// Revenue is the booking's own amount, not the sum of linked INCOME records
// (those are supplementary entries). Expense sums EXPENSE records whose
// related booking id matches. Computed on demand every time: finance records
// change independently of the booking, so caching here would go stale.
func EventPnL(b *models.Booking, records []*models.FinanceRecord) PnL {
	p := PnL{BookingID: b.ID, Revenue: sanitize(b.Amount)}

	for _, r := range records {
		if r == nil || r.Type != models.FinanceExpense || r.RelatedBookingID == nil {
			continue
		}
		if *r.RelatedBookingID != b.ID {
			continue
		}
		p.Expense += sanitize(r.Amount)
	}

	p.Profit = p.Revenue - p.Expense
	if p.Revenue > 0 {
		p.ProfitMargin = (p.Profit / p.Revenue) * 100
	}
	p.Grade = Grade(p.ProfitMargin)
	return p
}

// Grade buckets a profit margin into the display tiers used on the event
// report card: >70 A+, >50 A, >30 B, else C.
func Grade(margin float64) string {
	switch {
	case margin > 70:
		return "A+"
	case margin > 50:
		return "A"
	case margin > 30:
		return "B"
	default:
		return "C"
	}
}
