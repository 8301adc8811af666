package pricing

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencyRound rounds x to cents, half away from zero, using the shortest
// decimal representation of x so 1.005 rounds to 1.01.
func CurrencyRound(x float64) float64 {
	rounded, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return rounded
}

// FormatCurrency renders a dollar amount such as "$12,345.60" or "-$5.00".
func FormatCurrency(value float64) string {
	rounded := CurrencyRound(value)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", rounded)
}

// FormatTonnage renders whole tonnages as "3 Ton" and fractional ones as "2.50 Ton".
func FormatTonnage(value float64) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("%d Ton", int64(value))
	}
	return fmt.Sprintf("%.2f Ton", value)
}

// FormatMonths renders a finance term, e.g. "60 months".
func FormatMonths(termMonths int) string {
	if termMonths == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", termMonths)
}
