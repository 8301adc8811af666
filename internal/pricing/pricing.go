package pricing

// CreditCardFeePercent is the surcharge added when the customer pays by card.
const CreditCardFeePercent = 3.5

// PaymentOption is the way the customer settles the proposal.
type PaymentOption string

const (
	PaymentCashCheckZelle PaymentOption = "cash_check_zelle"
	PaymentCreditCard     PaymentOption = "credit_card"
	PaymentFinance        PaymentOption = "finance"
)

// PaymentOptions lists the supported options in display order.
func PaymentOptions() []PaymentOption {
	return []PaymentOption{PaymentCashCheckZelle, PaymentCreditCard, PaymentFinance}
}

// ParsePaymentOption maps a stored value to a PaymentOption. Unknown values
// fall back to cash/check/Zelle.
func ParsePaymentOption(raw string) PaymentOption {
	switch PaymentOption(raw) {
	case PaymentCreditCard:
		return PaymentCreditCard
	case PaymentFinance:
		return PaymentFinance
	default:
		return PaymentCashCheckZelle
	}
}

// DisplayName returns the customer-facing label.
func (p PaymentOption) DisplayName() string {
	switch p {
	case PaymentCreditCard:
		return "Credit Card (3.5% Fee)"
	case PaymentFinance:
		return "Finance"
	default:
		return "Cash/Check/Zelle Transfer"
	}
}

// Config holds the payment parameters supplied by the settings provider.
type Config struct {
	PaymentOption        PaymentOption
	FinanceMarkupPercent float64
	FinanceTermMonths    int
}

// Breakdown contains the intermediate values of the payment calculation.
type Breakdown struct {
	GrandTotal        float64
	CreditCardFee     float64
	FinanceMarkup     float64
	TotalWithMarkup   float64
	RatePercent       float64
	TermMonths        int
	MonthlyPayment    float64
	HasMonthlyPayment bool
	FinancedTotal     float64
}

// Totals contains the customer-visible roll-up.
type Totals struct {
	Total        float64
	CashDiscount float64
}

// Result groups the full payment output for one payment option.
type Result struct {
	PaymentOption PaymentOption
	Breakdown     Breakdown
	Totals        Totals
}

// Calculate derives the customer-visible total for grandTotal under cfg.
func Calculate(grandTotal float64, cfg Config) Result {
	option := ParsePaymentOption(string(cfg.PaymentOption))

	creditCardFee := grandTotal * (CreditCardFeePercent / 100.0)
	totalWithMarkup := grandTotal * (1.0 + cfg.FinanceMarkupPercent/100.0)
	rate := RateForTerm(cfg.FinanceTermMonths)

	monthly, ok := AmortizedMonthlyPayment(totalWithMarkup, rate, cfg.FinanceTermMonths)
	financedTotal := totalWithMarkup
	if ok {
		financedTotal = monthly * float64(cfg.FinanceTermMonths)
	}

	breakdown := Breakdown{
		GrandTotal:        grandTotal,
		CreditCardFee:     creditCardFee,
		FinanceMarkup:     totalWithMarkup - grandTotal,
		TotalWithMarkup:   totalWithMarkup,
		RatePercent:       rate,
		TermMonths:        cfg.FinanceTermMonths,
		MonthlyPayment:    monthly,
		HasMonthlyPayment: ok,
		FinancedTotal:     financedTotal,
	}

	var totals Totals
	switch option {
	case PaymentCreditCard:
		totals = Totals{Total: grandTotal * (1.0 + CreditCardFeePercent/100.0), CashDiscount: creditCardFee}
	case PaymentFinance:
		totals = Totals{Total: financedTotal, CashDiscount: max(0, financedTotal-grandTotal)}
	default:
		// The markup is shown to cash customers as what they avoid paying.
		totals = Totals{Total: grandTotal, CashDiscount: totalWithMarkup - grandTotal}
	}

	return Result{
		PaymentOption: option,
		Breakdown:     breakdown,
		Totals:        totals,
	}
}

// FinancingPlanText renders the "N months – $X/month" line; an em dash stands
// in for the amount when no payment is computable.
func (r Result) FinancingPlanText() string {
	amount := "—"
	if r.Breakdown.HasMonthlyPayment {
		amount = FormatCurrency(r.Breakdown.MonthlyPayment)
	}
	return FormatMonths(r.Breakdown.TermMonths) + " – " + amount + "/month"
}
