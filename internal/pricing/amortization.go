package pricing

import "math"

// AmortizedMonthlyPayment returns the level monthly payment of a fixed-rate
// loan. ok is false when no payment is computable: a non-positive total or
// term, or a rate/term pair whose denominator is exactly zero.
func AmortizedMonthlyPayment(total, annualRatePercent float64, termMonths int) (payment float64, ok bool) {
	if total <= 0 || termMonths <= 0 {
		return 0, false
	}

	n := float64(termMonths)
	if annualRatePercent <= 0 {
		return total / n, true
	}

	monthlyRate := annualRatePercent / 100.0 / 12.0
	denominator := 1 - math.Pow(1+monthlyRate, -n)
	if denominator == 0 {
		return 0, false
	}

	return total * monthlyRate / denominator, true
}
