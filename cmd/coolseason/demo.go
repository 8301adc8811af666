package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/coolseason/internal/catalog"
	"github.com/Simplici0/coolseason/internal/estimate"
	"github.com/Simplici0/coolseason/internal/pricing"
	"github.com/Simplici0/coolseason/internal/seed"
	"github.com/Simplici0/coolseason/internal/settings"
)

func demoCmd(a *app) *cobra.Command {
	var (
		customer  string
		number    string
		tier      string
		equipment string
		tonnage   string
		flags     paymentFlags
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build, sign and approve a sample proposal",
		Long: `Build a proposal from the template catalog: add the matching system
template and every enabled add-on, accept one tier for the whole proposal,
sign, approve and print the summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			selectedTier, err := parseTier(tier)
			if err != nil {
				return err
			}
			eq, err := parseEquipmentType(equipment)
			if err != nil {
				return err
			}
			tons, err := parsePositiveFloat(tonnage, "tonnage")
			if err != nil {
				return err
			}

			conn, err := a.database()
			if err != nil {
				return err
			}
			if _, err := seed.Run(ctx, conn); err != nil {
				return err
			}
			store := catalog.NewStore(conn)

			_, provider, err := a.settingsProvider()
			if err != nil {
				return err
			}
			payment, err := settings.LoadPayment(ctx, provider)
			if err != nil {
				return err
			}
			if payment, err = flags.apply(cmd, payment); err != nil {
				return err
			}

			e := estimate.New()
			e.Number = number
			e.CustomerName = customer

			sys, err := e.AddSystemFromTemplate(ctx, store, tons, eq)
			if err != nil {
				return fmt.Errorf("add %s %s system: %w", pricing.FormatTonnage(tons), eq, err)
			}

			templates, err := store.ListAddOnTemplates(ctx, true)
			if err != nil {
				return err
			}
			for _, tmpl := range templates {
				if _, err := e.AddAddOn(tmpl, sys.ID); err != nil {
					return err
				}
			}

			if err := e.AcceptProposal(selectedTier); err != nil {
				return err
			}
			printTierComparison(cmd.OutOrStdout(), e)

			if err := e.UpdateSignature([]byte("signed:" + customer)); err != nil {
				return err
			}
			if err := e.Approve(); err != nil {
				return err
			}
			slog.Info("demo proposal approved", "estimate_id", e.ID, "tier", selectedTier, "grand_total", e.GrandTotal)

			printSummary(cmd.OutOrStdout(), e.Summarize(payment.Config()))
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "Jordan Rivera", "customer name")
	cmd.Flags().StringVar(&number, "number", "", "estimate number")
	cmd.Flags().StringVar(&tier, "tier", string(estimate.TierBetter), "tier accepted for every system")
	cmd.Flags().StringVar(&equipment, "equipment", string(estimate.EquipmentACFurnace), "equipment type")
	cmd.Flags().StringVar(&tonnage, "tonnage", "3", "system tonnage")
	flags.register(cmd)

	return cmd
}

func printTierComparison(out io.Writer, e *estimate.Estimate) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIER\tTOTAL")
	for _, tier := range estimate.Tiers() {
		fmt.Fprintf(w, "%s\t%s\n", tier, pricing.FormatCurrency(e.TierGrandTotal(tier)))
	}
	_ = w.Flush()
	fmt.Fprintln(out)
}

func printSummary(out io.Writer, s estimate.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Estimate:\t%s\n", s.Number)
	fmt.Fprintf(w, "Customer:\t%s\n", s.CustomerName)
	fmt.Fprintf(w, "Status:\t%s\n", s.Status)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SYSTEM\tEQUIPMENT\tCAPACITY\tTIER\tPRICE")
	for _, line := range s.Systems {
		tier := "-"
		if line.Selected {
			tier = string(line.Tier)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", line.Name, line.EquipmentType, line.Capacity, tier, line.Price)
	}
	fmt.Fprintln(w)

	if len(s.AddOns) > 0 {
		fmt.Fprintln(w, "ADD-ON\tQTY\tUNIT\tTOTAL")
		for _, line := range s.AddOns {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", line.Name, line.Quantity, line.UnitPrice, line.LineTotal)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Systems subtotal:\t%s\n", s.SystemsSubtotal)
	fmt.Fprintf(w, "Add-ons subtotal:\t%s\n", s.AddOnsSubtotal)
	fmt.Fprintf(w, "Grand total:\t%s\n", s.GrandTotal)
	fmt.Fprintf(w, "Payment:\t%s\n", s.PaymentLabel)
	if s.FinancingPlan != "" {
		fmt.Fprintf(w, "Plan:\t%s\n", s.FinancingPlan)
	}
	fmt.Fprintf(w, "Total due:\t%s\n", s.PaymentTotal)
	if s.SignedAt != nil {
		fmt.Fprintf(w, "Signed:\t%s\n", s.SignedAt.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}
