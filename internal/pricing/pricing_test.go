package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const financeMonthly10k60 = 248.41823131402353

func TestCalculate_CashCheckZelleLeavesTotalUnchanged(t *testing.T) {
	result := Calculate(10000, Config{PaymentOption: PaymentCashCheckZelle, FinanceTermMonths: 60})

	assert.Equal(t, PaymentCashCheckZelle, result.PaymentOption)
	assert.InDelta(t, 10000, result.Totals.Total, 1e-9)
	assert.InDelta(t, 0, result.Totals.CashDiscount, 1e-9)
}

func TestCalculate_CashShowsMarkupAsDiscount(t *testing.T) {
	result := Calculate(10000, Config{PaymentOption: PaymentCashCheckZelle, FinanceMarkupPercent: 8, FinanceTermMonths: 60})

	assert.InDelta(t, 10000, result.Totals.Total, 1e-9)
	assert.InDelta(t, 800, result.Totals.CashDiscount, 1e-9)
	assert.InDelta(t, 10800, result.Breakdown.TotalWithMarkup, 1e-9)
}

func TestCalculate_CreditCardAddsFee(t *testing.T) {
	result := Calculate(10000, Config{PaymentOption: PaymentCreditCard})

	assert.InDelta(t, 10350, result.Totals.Total, 1e-9)
	assert.InDelta(t, 350, result.Breakdown.CreditCardFee, 1e-9)
	assert.InDelta(t, 350, result.Totals.CashDiscount, 1e-9)
}

func TestCalculate_CreditCardTotalIsSurchargedGrandTotal(t *testing.T) {
	for _, grandTotal := range []float64{0.1, 1234.57, 98765.43} {
		result := Calculate(grandTotal, Config{PaymentOption: PaymentCreditCard})
		assert.Equal(t, grandTotal*(1+CreditCardFeePercent/100), result.Totals.Total)
	}
}

func TestCalculate_FinanceUsesAmortizedTotal(t *testing.T) {
	result := Calculate(10000, Config{PaymentOption: PaymentFinance, FinanceTermMonths: 60})

	require.True(t, result.Breakdown.HasMonthlyPayment)
	assert.InDelta(t, 16.98, result.Breakdown.RatePercent, 1e-9)
	assert.InDelta(t, financeMonthly10k60, result.Breakdown.MonthlyPayment, 1e-9)
	assert.InDelta(t, financeMonthly10k60*60, result.Totals.Total, 1e-6)
	assert.InDelta(t, 14905.09, CurrencyRound(result.Totals.Total), 1e-9)
	assert.InDelta(t, result.Totals.Total-10000, result.Totals.CashDiscount, 1e-9)
}

func TestCalculate_FinanceAppliesMarkupBeforeAmortizing(t *testing.T) {
	withMarkup := Calculate(10000, Config{PaymentOption: PaymentFinance, FinanceMarkupPercent: 10, FinanceTermMonths: 24})
	plain := Calculate(11000, Config{PaymentOption: PaymentFinance, FinanceTermMonths: 24})

	assert.InDelta(t, 11000, withMarkup.Breakdown.TotalWithMarkup, 1e-9)
	assert.InDelta(t, plain.Breakdown.MonthlyPayment, withMarkup.Breakdown.MonthlyPayment, 1e-9)
	assert.InDelta(t, 10.77, withMarkup.Breakdown.RatePercent, 1e-9)
}

func TestCalculate_FinanceFallsBackWithoutPayment(t *testing.T) {
	zero := Calculate(0, Config{PaymentOption: PaymentFinance, FinanceTermMonths: 60})
	assert.False(t, zero.Breakdown.HasMonthlyPayment)
	assert.InDelta(t, 0, zero.Totals.Total, 1e-9)
	assert.InDelta(t, 0, zero.Totals.CashDiscount, 1e-9)

	noTerm := Calculate(5000, Config{PaymentOption: PaymentFinance, FinanceMarkupPercent: 10, FinanceTermMonths: 0})
	assert.False(t, noTerm.Breakdown.HasMonthlyPayment)
	assert.InDelta(t, 5500, noTerm.Totals.Total, 1e-9)
	assert.InDelta(t, 500, noTerm.Totals.CashDiscount, 1e-9)
}

func TestCalculate_UnknownOptionIsCash(t *testing.T) {
	result := Calculate(1234.5, Config{PaymentOption: "wire"})

	assert.Equal(t, PaymentCashCheckZelle, result.PaymentOption)
	assert.InDelta(t, 1234.5, result.Totals.Total, 1e-9)
}

func TestFinancingPlanText(t *testing.T) {
	result := Calculate(10000, Config{PaymentOption: PaymentFinance, FinanceTermMonths: 60})
	assert.Equal(t, "60 months – $248.42/month", result.FinancingPlanText())

	none := Calculate(0, Config{PaymentOption: PaymentFinance, FinanceTermMonths: 36})
	assert.Equal(t, "36 months – —/month", none.FinancingPlanText())
}

func TestParsePaymentOption(t *testing.T) {
	assert.Equal(t, PaymentCreditCard, ParsePaymentOption("credit_card"))
	assert.Equal(t, PaymentFinance, ParsePaymentOption("finance"))
	assert.Equal(t, PaymentCashCheckZelle, ParsePaymentOption("cash_check_zelle"))
	assert.Equal(t, PaymentCashCheckZelle, ParsePaymentOption(""))
	assert.Equal(t, "Credit Card (3.5% Fee)", PaymentCreditCard.DisplayName())
	assert.Len(t, PaymentOptions(), 3)
}
