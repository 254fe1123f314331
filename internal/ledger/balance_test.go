package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		name                      string
		total, advance, received  float64
		want                      float64
	}{
		{"typical booking", 20000, 5000, 0, 15000},
		{"fully paid", 20000, 5000, 15000, 0},
		{"overpayment stays negative", 10000, 5000, 7000, -2000},
		{"all zero", 0, 0, 0, 0},
		{"no advance", 12000, 0, 4000, 8000},
		{"fractional rupees", 100.50, 50.25, 0, 50.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Balance(tt.total, tt.advance, tt.received))
		})
	}
}

func TestBalanceCoercesInvalidInput(t *testing.T) {
	assert.Equal(t, 5000.0, Balance(5000, math.NaN(), 0))
	assert.Equal(t, -3000.0, Balance(math.Inf(1), 3000, 0))
	assert.Equal(t, 1000.0, Balance(1000, 0, math.Inf(-1)))
}
