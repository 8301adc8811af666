package pricing

import "slices"

// DefaultTermMonths is used for unlisted terms and as the settings default.
const DefaultTermMonths = 60

// termRates maps finance terms in months to the lender's APR.
var termRates = map[int]float64{
	24: 10.77,
	36: 13.78,
	48: 15.80,
	60: 16.98,
}

// AvailableTerms returns the financeable terms in ascending order.
func AvailableTerms() []int {
	terms := make([]int, 0, len(termRates))
	for term := range termRates {
		terms = append(terms, term)
	}
	slices.Sort(terms)
	return terms
}

// RateForTerm returns the annual rate for termMonths, falling back to the
// 60-month rate.
func RateForTerm(termMonths int) float64 {
	if rate, ok := termRates[termMonths]; ok {
		return rate
	}
	return termRates[DefaultTermMonths]
}

// IsAvailableTerm reports whether termMonths is a listed term.
func IsAvailableTerm(termMonths int) bool {
	_, ok := termRates[termMonths]
	return ok
}
