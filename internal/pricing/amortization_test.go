package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizedMonthlyPayment_StandardLoan(t *testing.T) {
	payment, ok := AmortizedMonthlyPayment(10000, 16.98, 60)

	require.True(t, ok)
	r := 16.98 / 100 / 12
	want := 10000 * r / (1 - math.Pow(1+r, -60))
	assert.Equal(t, want, payment)
	assert.InDelta(t, 248.42, CurrencyRound(payment), 1e-9)
}

func TestAmortizedMonthlyPayment_ZeroRateDividesEvenly(t *testing.T) {
	payment, ok := AmortizedMonthlyPayment(1200, 0, 12)

	require.True(t, ok)
	assert.Equal(t, 100.0, payment)

	negative, ok := AmortizedMonthlyPayment(1200, -3, 12)
	require.True(t, ok)
	assert.Equal(t, 100.0, negative)
}

func TestAmortizedMonthlyPayment_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		rate  float64
		term  int
	}{
		{name: "zero total", total: 0, rate: 5, term: 12},
		{name: "negative total", total: -10, rate: 5, term: 12},
		{name: "zero term", total: 1000, rate: 5, term: 0},
		{name: "negative term", total: 1000, rate: 0, term: -6},
		{name: "degenerate denominator", total: 1000, rate: 1e-300, term: 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := AmortizedMonthlyPayment(tc.total, tc.rate, tc.term)
			assert.False(t, ok)
		})
	}
}
