// Package ledger holds the pure financial computations: outstanding
// balance, the per-customer ledger aggregation, and per-event P&L.
// Everything here is side-effect free; services and handlers both call
// into this package so every caller agrees on the same numbers.
package ledger

import "math"

// Balance returns total - (advance + received). Negative output means
// overpayment and is preserved, never clamped. NaN/Inf inputs (possible
// after decoding hand-edited JSON) are coerced to 0, matching the
// tolerant behavior the dashboards rely on.
func Balance(total, advance, received float64) float64 {
	return sanitize(total) - (sanitize(advance) + sanitize(received))
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
