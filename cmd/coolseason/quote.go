package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/pricing"
	"github.com/Simplici0/coolseason/internal/settings"
)

func quoteCmd(a *app) *cobra.Command {
	var (
		amount string
		flags  paymentFlags
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a grand total under the payment settings",
		Long: `Price a grand total for the configured payment option. --payment, --markup
and --term override the stored settings for this quote only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			grandTotal, err := parseNonNegativeFloat(amount, "amount")
			if err != nil {
				return err
			}

			_, provider, err := a.settingsProvider()
			if err != nil {
				return err
			}
			payment, err := settings.LoadPayment(cmd.Context(), provider)
			if err != nil {
				return err
			}
			if payment, err = flags.apply(cmd, payment); err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), pricing.Calculate(grandTotal, payment.Config()))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "grand total to price")
	_ = cmd.MarkFlagRequired("amount")
	flags.register(cmd)

	return cmd
}

func printResult(out io.Writer, r pricing.Result) {
	b := r.Breakdown

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Payment option:\t%s\n", r.PaymentOption.DisplayName())
	fmt.Fprintf(w, "Grand total:\t%s\n", pricing.FormatCurrency(b.GrandTotal))
	switch r.PaymentOption {
	case pricing.PaymentCreditCard:
		fmt.Fprintf(w, "Card fee:\t%s\n", pricing.FormatCurrency(b.CreditCardFee))
	case pricing.PaymentFinance:
		fmt.Fprintf(w, "Total with markup:\t%s\n", pricing.FormatCurrency(b.TotalWithMarkup))
		fmt.Fprintf(w, "Rate:\t%.2f%% APR\n", b.RatePercent)
		fmt.Fprintf(w, "Plan:\t%s\n", r.FinancingPlanText())
		fmt.Fprintf(w, "Financed total:\t%s\n", pricing.FormatCurrency(b.FinancedTotal))
	}
	fmt.Fprintf(w, "Total:\t%s\n", pricing.FormatCurrency(r.Totals.Total))
	fmt.Fprintf(w, "Cash discount:\t%s\n", pricing.FormatCurrency(r.Totals.CashDiscount))
	_ = w.Flush()
}
